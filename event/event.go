// Package event holds the annotated event model of the FactBank/PragBank
// corpus: one Event per row of the corpus CSV file.
package event

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/revelaction/pragbank/lemma"
	"github.com/revelaction/pragbank/tree"
)

// Author is the FactValues source of the sentence's own author.
const Author = "AUTHOR"

var (
	ErrMalformed     = errors.New("malformed value")
	ErrMissingColumn = errors.New("missing column")
)

// Split is the train/test partition of an event.
type Split string

const (
	Train Split = "train"
	Test  Split = "test"
)

// ParseSplit accepts "train" and "test" in any case.
func ParseSplit(s string) (Split, error) {
	switch sp := Split(strings.ToLower(strings.TrimSpace(s))); sp {
	case Train, Test:
		return sp, nil
	}
	return "", fmt.Errorf("%w: TrainTest %q is neither train nor test", ErrMalformed, s)
}

// Event is an annotated event. Events are built once per corpus row and are
// not modified afterwards.
type Event struct {
	File          string     `json:"file"`
	SentenceId    string     `json:"sentence_id"`
	Sentence      string     `json:"sentence"`
	SentenceParse *tree.Tree `json:"-"`

	EventId         string `json:"event_id"`
	EventInstanceId string `json:"event_instance_id"`
	EventText       string `json:"event_text"`
	Normalization   string `json:"normalization"`

	// FactValues maps an annotation source (AUTHOR, GM_AUTHOR, ...) to a
	// factuality tag.
	FactValues map[string]string `json:"fact_values"`

	// PragValues maps a pragmatic tag to the number of annotators that
	// chose it.
	PragValues map[string]int `json:"prag_values"`

	TrainTest Split `json:"train_test"`
}

// AuthorValue returns the FactValues tag of the AUTHOR source.
func (e Event) AuthorValue() (string, bool) {
	v, ok := e.FactValues[Author]
	return v, ok
}

// MajorityPragValue returns the pragmatic tag chosen by most annotators and
// its count. A tie for the top count is not a majority: ok is false.
func (e Event) MajorityPragValue() (tag string, count int, ok bool) {
	if len(e.PragValues) == 0 {
		return "", 0, false
	}

	tags := make([]string, 0, len(e.PragValues))
	for t := range e.PragValues {
		tags = append(tags, t)
	}
	sort.Slice(tags, func(i, j int) bool {
		ci, cj := e.PragValues[tags[i]], e.PragValues[tags[j]]
		if ci != cj {
			return ci > cj
		}
		return tags[i] < tags[j]
	})

	top := tags[0]
	if len(tags) > 1 && e.PragValues[tags[1]] == e.PragValues[top] {
		return "", 0, false
	}

	return top, e.PragValues[top], true
}

// Pos returns the (token, tag) pairs of the sentence parse. With a non nil
// Lemmatizer every pair is lemmatized and its tag mapped to a WordNet
// category.
func (e Event) Pos(lm lemma.Lemmatizer) []tree.TaggedWord {
	if e.SentenceParse == nil {
		return nil
	}

	pairs := e.SentenceParse.Pos()
	if lm == nil {
		return pairs
	}

	for i, p := range pairs {
		pairs[i].Word, pairs[i].Tag = lemma.Tagged(lm, p.Word, p.Tag)
	}
	return pairs
}

// Leaves returns the tokens of Pos.
func (e Event) Leaves(lm lemma.Lemmatizer) []string {
	pairs := e.Pos(lm)
	leaves := make([]string, len(pairs))
	for i, p := range pairs {
		leaves[i] = p.Word
	}
	return leaves
}
