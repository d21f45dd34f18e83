// Package corpus reads the FactBank/PragBank CSV file into events.
package corpus

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/revelaction/pragbank/event"
)

// DefaultFile is the name of the corpus file distributed with PragBank.
const DefaultFile = "fb-semprag.csv"

// Reader loads the events of a corpus file.
type Reader struct {
	Path string

	// Progress, if set, is called after each event is built.
	Progress func(current, total int)
}

func NewReader(path string) *Reader {
	return &Reader{Path: path}
}

// Events returns all events of the file, in file order.
func (r *Reader) Events() ([]event.Event, error) {
	f, err := os.Open(r.Path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	events, err := Read(f, r.Progress)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", r.Path, err)
	}

	return events, nil
}

// EventsFor returns the events of a split.
func (r *Reader) EventsFor(split event.Split) ([]event.Event, error) {
	events, err := r.Events()
	if err != nil {
		return nil, err
	}
	return Filter(events, split), nil
}

func (r *Reader) TrainEvents() ([]event.Event, error) {
	return r.EventsFor(event.Train)
}

func (r *Reader) TestEvents() ([]event.Event, error) {
	return r.EventsFor(event.Test)
}

// Load reads all events of the file at path.
func Load(path string) ([]event.Event, error) {
	return NewReader(path).Events()
}

type line struct {
	num int
	row []string
}

// Read parses a corpus CSV stream. The first row is the header. Any
// malformed row aborts the read.
func Read(rd io.Reader, progress func(current, total int)) ([]event.Event, error) {
	cr := csv.NewReader(rd)
	// column counts are checked against the header below
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("no header row")
		}
		return nil, err
	}

	idx, err := event.NewIndex(header)
	if err != nil {
		return nil, fmt.Errorf("header: %w", err)
	}

	var lines []line
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		num, _ := cr.FieldPos(0)
		lines = append(lines, line{num: num, row: row})
	}

	events := make([]event.Event, 0, len(lines))
	for i, l := range lines {
		rec, err := idx.Record(l.row)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", l.num, err)
		}

		e, err := event.FromRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", l.num, err)
		}

		events = append(events, e)
		if progress != nil {
			progress(i+1, len(lines))
		}
	}

	return events, nil
}

// Filter returns the events of events that belong to split, keeping order.
func Filter(events []event.Event, split event.Split) []event.Event {
	var filtered []event.Event
	for _, e := range events {
		if e.TrainTest == split {
			filtered = append(filtered, e)
		}
	}
	return filtered
}
