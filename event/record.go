package event

import (
	"fmt"

	"github.com/revelaction/pragbank/tree"
)

// Header names of the corpus CSV file, in file order.
const (
	ColFile            = "File"
	ColSentenceId      = "sentId"
	ColSentence        = "Sentence"
	ColSentenceParse   = "SentenceParse"
	ColEventId         = "eId"
	ColEventInstanceId = "eiId"
	ColEventText       = "eText"
	ColNormalization   = "Normalization"
	ColFactValues      = "FactValues"
	ColPragValues      = "PragValues"
	ColTrainTest       = "TrainTest"
)

// Columns is the header row of the corpus CSV file.
var Columns = []string{
	ColFile, ColSentenceId, ColSentence, ColSentenceParse,
	ColEventId, ColEventInstanceId, ColEventText, ColNormalization,
	ColFactValues, ColPragValues, ColTrainTest,
}

// Record is the unparsed form of an Event: one string per column.
type Record struct {
	File            string
	SentenceId      string
	Sentence        string
	SentenceParse   string
	EventId         string
	EventInstanceId string
	EventText       string
	Normalization   string
	FactValues      string
	PragValues      string
	TrainTest       string
}

// Index maps header names to column positions.
type Index struct {
	cols  map[string]int
	width int
}

// NewIndex builds the column index of header. Every name of Columns must be
// present.
func NewIndex(header []string) (Index, error) {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[name] = i
	}

	for _, name := range Columns {
		if _, ok := cols[name]; !ok {
			return Index{}, fmt.Errorf("%w: %q", ErrMissingColumn, name)
		}
	}

	return Index{cols: cols, width: len(header)}, nil
}

// Record picks the named columns out of row.
func (idx Index) Record(row []string) (Record, error) {
	if len(row) != idx.width {
		return Record{}, fmt.Errorf("%w: row has %d columns, header has %d", ErrMalformed, len(row), idx.width)
	}

	col := func(name string) string { return row[idx.cols[name]] }

	return Record{
		File:            col(ColFile),
		SentenceId:      col(ColSentenceId),
		Sentence:        col(ColSentence),
		SentenceParse:   col(ColSentenceParse),
		EventId:         col(ColEventId),
		EventInstanceId: col(ColEventInstanceId),
		EventText:       col(ColEventText),
		Normalization:   col(ColNormalization),
		FactValues:      col(ColFactValues),
		PragValues:      col(ColPragValues),
		TrainTest:       col(ColTrainTest),
	}, nil
}

// FromRow builds an Event from a CSV row and the header row.
func FromRow(header, row []string) (Event, error) {
	idx, err := NewIndex(header)
	if err != nil {
		return Event{}, err
	}

	rec, err := idx.Record(row)
	if err != nil {
		return Event{}, err
	}

	return FromRecord(rec)
}

// FromRecord parses the structured columns of rec.
func FromRecord(rec Record) (Event, error) {
	parse, err := tree.Parse(rec.SentenceParse)
	if err != nil {
		return Event{}, fmt.Errorf("%w: SentenceParse: %w", ErrMalformed, err)
	}

	fv, err := ParseFactValues(rec.FactValues)
	if err != nil {
		return Event{}, err
	}

	pv, err := ParsePragValues(rec.PragValues)
	if err != nil {
		return Event{}, err
	}

	split, err := ParseSplit(rec.TrainTest)
	if err != nil {
		return Event{}, err
	}

	return Event{
		File:            rec.File,
		SentenceId:      rec.SentenceId,
		Sentence:        rec.Sentence,
		SentenceParse:   parse,
		EventId:         rec.EventId,
		EventInstanceId: rec.EventInstanceId,
		EventText:       rec.EventText,
		Normalization:   rec.Normalization,
		FactValues:      fv,
		PragValues:      pv,
		TrainTest:       split,
	}, nil
}

// Record returns the unparsed form of e. Value strings are re-serialized
// with sorted keys.
func (e Event) Record() Record {
	var parse string
	if e.SentenceParse != nil {
		parse = e.SentenceParse.String()
	}

	return Record{
		File:            e.File,
		SentenceId:      e.SentenceId,
		Sentence:        e.Sentence,
		SentenceParse:   parse,
		EventId:         e.EventId,
		EventInstanceId: e.EventInstanceId,
		EventText:       e.EventText,
		Normalization:   e.Normalization,
		FactValues:      FormatFactValues(e.FactValues),
		PragValues:      FormatPragValues(e.PragValues),
		TrainTest:       string(e.TrainTest),
	}
}

// Row returns rec in the order of Columns.
func (rec Record) Row() []string {
	return []string{
		rec.File, rec.SentenceId, rec.Sentence, rec.SentenceParse,
		rec.EventId, rec.EventInstanceId, rec.EventText, rec.Normalization,
		rec.FactValues, rec.PragValues, rec.TrainTest,
	}
}
