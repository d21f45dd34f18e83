// Package stat aggregates FactBank and PragBank annotations over a set of
// events. Every function is a fold over its input and returns a new tally.
package stat

import (
	"sort"

	"github.com/revelaction/pragbank/event"
)

// MinMajority is the number of annotator votes a majority pragmatic tag
// needs to be taken as the label of an event.
const MinMajority = 6

// Categories is the presentation order of the veridicality categories.
var Categories = []string{"ct_plus", "pr_plus", "ps_plus", "ct_minus", "pr_minus", "ps_minus", "uu"}

// Majority returns the events with a majority pragmatic tag of at least min
// votes.
func Majority(events []event.Event, min int) []event.Event {
	var filtered []event.Event
	for _, e := range events {
		if _, count, ok := e.MajorityPragValue(); ok && count >= min {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

// Matrix counts (row, column) pairs.
type Matrix struct {
	Cells map[string]map[string]int `json:"cells"`

	// Skipped counts the events that could not be placed in a cell.
	Skipped int `json:"skipped"`
}

func NewMatrix() *Matrix {
	return &Matrix{Cells: map[string]map[string]int{}}
}

func (m *Matrix) Add(row, col string) {
	r, ok := m.Cells[row]
	if !ok {
		r = map[string]int{}
		m.Cells[row] = r
	}
	r[col]++
}

func (m *Matrix) Get(row, col string) int {
	return m.Cells[row][col]
}

// Total is the sum of all cells.
func (m *Matrix) Total() int {
	total := 0
	for _, r := range m.Cells {
		for _, n := range r {
			total += n
		}
	}
	return total
}

// Rows returns the row keys, sorted.
func (m *Matrix) Rows() []string {
	rows := make([]string, 0, len(m.Cells))
	for r := range m.Cells {
		rows = append(rows, r)
	}
	sort.Strings(rows)
	return rows
}

// Confusion compares the FactBank AUTHOR tag (rows) with the PragBank
// majority tag (columns) on the events with a MinMajority majority.
func Confusion(events []event.Event) *Matrix {
	m := NewMatrix()
	for _, e := range Majority(events, MinMajority) {
		pv, _, _ := e.MajorityPragValue()
		fv, ok := e.AuthorValue()
		if !ok {
			m.Skipped++
			continue
		}
		m.Add(fv, pv)
	}
	return m
}
