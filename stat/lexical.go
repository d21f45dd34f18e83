package stat

import (
	"regexp"
	"sort"
	"strings"

	"github.com/revelaction/pragbank/event"
	"github.com/revelaction/pragbank/lemma"
)

var nonWord = regexp.MustCompile(`\W`)

// WordCount is a word and the number of times it was counted.
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// Associations maps a veridicality category to its word counts.
type Associations map[string]map[string]int

// LexicalAssociations counts the lemmatized, lower-cased words of each event
// sentence under both the FactBank AUTHOR tag and the PragBank majority tag
// of the event. Words with a non-word character are left out. Only events
// with a MinMajority majority are counted.
//
// Both annotations add to the same counter, so the highest counts of a
// category lean to FactBank and the lowest to PragBank.
func LexicalAssociations(events []event.Event, lm lemma.Lemmatizer) Associations {
	a := Associations{}
	for _, e := range Majority(events, MinMajority) {
		pv, _, _ := e.MajorityPragValue()
		fv, hasAuthor := e.AuthorValue()

		for _, w := range e.Leaves(lm) {
			if nonWord.MatchString(w) {
				continue
			}
			w = strings.ToLower(w)

			if hasAuthor {
				a.add(fv, w)
			}
			a.add(pv, w)
		}
	}
	return a
}

func (a Associations) add(cat, word string) {
	words, ok := a[cat]
	if !ok {
		words = map[string]int{}
		a[cat] = words
	}
	words[word]++
}

// sorted returns the word counts of cat by ascending count, then word.
func (a Associations) sorted(cat string) []WordCount {
	counts := make([]WordCount, 0, len(a[cat]))
	for w, n := range a[cat] {
		counts = append(counts, WordCount{Word: w, Count: n})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count < counts[j].Count
		}
		return counts[i].Word < counts[j].Word
	})
	return counts
}

// Top returns the n highest counts of cat, highest first.
func (a Associations) Top(cat string, n int) []WordCount {
	if n <= 0 {
		return nil
	}

	counts := a.sorted(cat)
	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})

	if n < len(counts) {
		counts = counts[:n]
	}
	return counts
}

// Bottom returns the n lowest counts of cat, lowest first.
func (a Associations) Bottom(cat string, n int) []WordCount {
	if n <= 0 {
		return nil
	}

	counts := a.sorted(cat)
	if n < len(counts) {
		counts = counts[:n]
	}
	return counts
}
