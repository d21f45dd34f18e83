// Package lemma maps treebank part-of-speech tags to WordNet categories and
// delegates lemmatization to a Lemmatizer.
package lemma

import (
	"strings"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
)

// WordNet categories
const (
	Noun      = "n"
	Verb      = "v"
	Adjective = "a"
	Adverb    = "r"
)

// Lemmatizer returns the lemma of word for a WordNet category.
type Lemmatizer interface {
	Lemmatize(word, pos string) string
}

// LemmatizerFunc adapts a function to the Lemmatizer interface.
type LemmatizerFunc func(word, pos string) string

func (f LemmatizerFunc) Lemmatize(word, pos string) string {
	return f(word, pos)
}

// WordNetTag maps a treebank tag to a WordNet category using its prefix.
// Tags that have no WordNet equivalent are returned lower-cased.
func WordNetTag(tag string) string {
	tag = strings.ToLower(tag)
	switch {
	case strings.HasPrefix(tag, "v"):
		return Verb
	case strings.HasPrefix(tag, "n"):
		return Noun
	case strings.HasPrefix(tag, "j"):
		return Adjective
	case strings.HasPrefix(tag, "rb"):
		return Adverb
	}

	return tag
}

// IsWordNet reports whether pos is one of the four WordNet categories.
func IsWordNet(pos string) bool {
	switch pos {
	case Noun, Verb, Adjective, Adverb:
		return true
	}
	return false
}

// Tagged lemmatizes a (word, treebank tag) pair. It returns the lemma and the
// WordNet category of the tag. Words whose tag has no WordNet category are
// returned unchanged.
func Tagged(lm Lemmatizer, word, tag string) (string, string) {
	pos := WordNetTag(tag)
	if !IsWordNet(pos) {
		return word, pos
	}

	return lm.Lemmatize(word, pos), pos
}

// Golem is a dictionary based English lemmatizer.
type Golem struct {
	lm *golem.Lemmatizer
}

var _ Lemmatizer = (*Golem)(nil)

func NewGolem() (*Golem, error) {
	lm, err := golem.New(en.New())
	if err != nil {
		return nil, err
	}
	return &Golem{lm: lm}, nil
}

// Lemmatize ignores pos: the golem dictionaries are not split by category.
func (g *Golem) Lemmatize(word, pos string) string {
	return g.lm.Lemma(word)
}
