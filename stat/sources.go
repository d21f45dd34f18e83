package stat

import (
	"sort"

	"github.com/revelaction/pragbank/event"
)

// SourceCount is a FactValues source and the number of events it annotates.
type SourceCount struct {
	Source string `json:"source"`
	Count  int    `json:"count"`
}

// NonAuthorSources counts the FactValues sources other than AUTHOR, most
// frequent first.
func NonAuthorSources(events []event.Event) []SourceCount {
	counts := map[string]int{}
	for _, e := range events {
		for src := range e.FactValues {
			if src != event.Author {
				counts[src]++
			}
		}
	}

	sources := make([]SourceCount, 0, len(counts))
	for src, n := range counts {
		sources = append(sources, SourceCount{Source: src, Count: n})
	}
	sort.Slice(sources, func(i, j int) bool {
		if sources[i].Count != sources[j].Count {
			return sources[i].Count > sources[j].Count
		}
		return sources[i].Source < sources[j].Source
	})
	return sources
}

// AuthorComparison pairs the AUTHOR tag of each event (rows) with the tag of
// every other source of the same event (columns).
func AuthorComparison(events []event.Event) *Matrix {
	m := NewMatrix()
	for _, e := range events {
		auth, ok := e.AuthorValue()
		if !ok {
			m.Skipped++
			continue
		}

		for src, fv := range e.FactValues {
			if src != event.Author {
				m.Add(auth, fv)
			}
		}
	}
	return m
}
