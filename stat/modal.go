package stat

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/revelaction/pragbank/event"
	"github.com/revelaction/pragbank/tree"
)

var modalRe = regexp.MustCompile(`(?i)^(can|could|shall|should|will|would|may|might|must|wo)$`)

// IsModal reports whether word is a modal auxiliary. "wo" is the first half
// of the treebank tokenization of "won't".
func IsModal(word string) bool {
	return modalRe.MatchString(word)
}

// Source selects the annotation that labels an event.
type Source int

const (
	// SourceFactBank labels an event with its FactBank AUTHOR tag.
	SourceFactBank Source = iota
	// SourcePragBank labels an event with its PragBank majority tag.
	SourcePragBank
)

func (s Source) String() string {
	if s == SourcePragBank {
		return "PragBank"
	}
	return "FactBank"
}

// ParseSource accepts "factbank" and "pragbank" in any case.
func ParseSource(s string) (Source, error) {
	switch strings.ToLower(s) {
	case "factbank":
		return SourceFactBank, nil
	case "pragbank":
		return SourcePragBank, nil
	}
	return 0, fmt.Errorf("unknown annotation source %q", s)
}

// Label returns the tag of e for the source.
func (s Source) Label(e event.Event) (string, bool) {
	if s == SourcePragBank {
		tag, _, ok := e.MajorityPragValue()
		return tag, ok
	}
	return e.AuthorValue()
}

// modalDaughter returns the modal of the first preterminal daughter of t
// whose token is a modal.
func modalDaughter(t *tree.Tree) (string, bool) {
	for _, d := range t.Children {
		if d.IsPreterminal() && IsModal(d.Children[0].Label) {
			return d.Children[0].Label, true
		}
	}
	return "", false
}

// CCommandingModals returns the modals that c-command terminal in t: the
// modal is a daughter of a constituent that also dominates terminal. The
// result is sorted and has no duplicates.
func CCommandingModals(t *tree.Tree, terminal string) []string {
	if t == nil {
		return nil
	}

	set := map[string]bool{}
	for _, st := range t.Subtrees() {
		md, ok := modalDaughter(st)
		if !ok {
			continue
		}
		if st.Contains(terminal) {
			set[md] = true
		}
	}

	modals := make([]string, 0, len(set))
	for md := range set {
		modals = append(modals, md)
	}
	sort.Strings(modals)
	return modals
}

// ModalStats counts (modal, tag) pairs for the modals that c-command the
// event token, with the tag taken from source. Only events with a
// MinMajority majority are counted.
func ModalStats(events []event.Event, source Source) *Matrix {
	m := NewMatrix()
	for _, e := range Majority(events, MinMajority) {
		modals := CCommandingModals(e.SentenceParse, e.EventText)
		if len(modals) == 0 {
			continue
		}

		tag, ok := source.Label(e)
		if !ok {
			m.Skipped++
			continue
		}

		for _, md := range modals {
			m.Add(md, tag)
		}
	}
	return m
}
