package stat

import (
	"strings"
	"testing"

	"github.com/revelaction/pragbank/event"
	"github.com/revelaction/pragbank/lemma"
	"github.com/revelaction/pragbank/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	willParse  = `(ROOT (S (NP (DT The) (NN company)) (VP (MD will) (VP (VB sell) (NP (DT the) (NN unit)))) (. .)))`
	mightParse = `(ROOT (S (S (NP (NNS Talks)) (VP (MD Might) (VP (VB resume)))) (, ,) (NP (NNS officials)) (VP (VBD said)) (. .)))`
	plainParse = `(ROOT (S (NP (PRP He)) (VP (VBD left)) (. .)))`
)

func newEvent(t *testing.T, parse, text, fv, pv string) event.Event {
	t.Helper()
	e, err := event.FromRecord(event.Record{
		File:          "wsj.tml",
		SentenceParse: parse,
		EventText:     text,
		FactValues:    fv,
		PragValues:    pv,
		TrainTest:     "train",
	})
	require.NoError(t, err)
	return e
}

func sample(t *testing.T) []event.Event {
	return []event.Event{
		newEvent(t, willParse, "sell", "AUTHOR:pr_plus", "ct_plus:6|pr_plus:4"),
		newEvent(t, mightParse, "resume", "AUTHOR:ps_plus|officials_AUTHOR:ct_plus", "ps_plus:7|pr_plus:3"),
		newEvent(t, mightParse, "said", "AUTHOR:ct_plus", "ct_plus:10"),
		newEvent(t, plainParse, "left", "AUTHOR:ct_plus|GM_AUTHOR:uu", "ct_plus:5|uu:5"),
		newEvent(t, plainParse, "left", "AUTHOR:ct_minus|GM_AUTHOR:ct_plus", "ct_minus:5|uu:3|ct_plus:2"),
		newEvent(t, willParse, "sell", "AUTHOR:uu", "uu:9|ps_plus:1"),
	}
}

func TestMajority(t *testing.T) {
	events := sample(t)
	assert.Len(t, Majority(events, MinMajority), 4)
	assert.Len(t, Majority(events, 5), 5)
	assert.Len(t, Majority(events, 10), 1)
}

func TestConfusion(t *testing.T) {
	events := sample(t)
	m := Confusion(events)

	assert.Equal(t, 1, m.Get("pr_plus", "ct_plus"))
	assert.Equal(t, 1, m.Get("ps_plus", "ps_plus"))
	assert.Equal(t, 1, m.Get("ct_plus", "ct_plus"))
	assert.Equal(t, 1, m.Get("uu", "uu"))
	assert.Equal(t, 0, m.Get("ct_minus", "ct_minus"))

	grid := 0
	for _, r := range Categories {
		for _, c := range Categories {
			grid += m.Get(r, c)
		}
	}
	assert.Equal(t, len(Majority(events, MinMajority)), grid)
	assert.Equal(t, grid, m.Total())
}

func TestConfusionSkipsMissingAuthor(t *testing.T) {
	events := []event.Event{
		newEvent(t, plainParse, "left", "GM_AUTHOR:ct_plus", "ct_plus:8|uu:2"),
	}
	m := Confusion(events)
	assert.Equal(t, 0, m.Total())
	assert.Equal(t, 1, m.Skipped)
}

func TestLexicalAssociations(t *testing.T) {
	events := sample(t)
	a := LexicalAssociations(events, nil)

	// "The company will sell the unit ." twice: once as pr_plus/ct_plus,
	// once as uu/uu.
	assert.Equal(t, 1, a["pr_plus"]["company"])
	assert.Equal(t, 2, a["pr_plus"]["the"])
	assert.Equal(t, 2, a["uu"]["company"])
	assert.Equal(t, 4, a["uu"]["the"])

	for _, words := range a {
		for w := range words {
			assert.NotContains(t, w, ".")
			assert.NotContains(t, w, ",")
			assert.Equal(t, strings.ToLower(w), w)
		}
	}
}

func TestLexicalAssociationsFilter(t *testing.T) {
	e := newEvent(t,
		`(S (NP (NNP U.S.)) (VP (VBZ isn't) (ADJP (JJ well-known))) (. !) (X (SYM --)) (NP (NNP Foo_bar)) (NP (CD 42)))`,
		"isn't", "AUTHOR:ct_plus", "ct_plus:10")

	a := LexicalAssociations([]event.Event{e}, nil)
	assert.Equal(t, map[string]int{"foo_bar": 2, "42": 2}, a["ct_plus"])
}

func TestLexicalAssociationsLemmatize(t *testing.T) {
	events := []event.Event{newEvent(t, willParse, "sell", "AUTHOR:ct_plus", "ct_plus:10")}
	lm := lemma.LemmatizerFunc(func(word, pos string) string {
		if word == "company" {
			return "firm"
		}
		return word
	})

	a := LexicalAssociations(events, lm)
	assert.Equal(t, 2, a["ct_plus"]["firm"])
	assert.Zero(t, a["ct_plus"]["company"])
}

func TestTopBottom(t *testing.T) {
	a := Associations{"ct_plus": {"a": 5, "b": 1, "c": 3, "d": 3, "e": 9}}

	assert.Equal(t, []WordCount{{"e", 9}, {"a", 5}, {"c", 3}}, a.Top("ct_plus", 3))
	assert.Equal(t, []WordCount{{"b", 1}, {"c", 3}}, a.Bottom("ct_plus", 2))
	assert.Len(t, a.Top("ct_plus", 10), 5)
	assert.Empty(t, a.Top("uu", 3))
	assert.Empty(t, a.Bottom("ct_plus", 0))
}

func TestNonAuthorSources(t *testing.T) {
	sources := NonAuthorSources(sample(t))
	assert.Equal(t, []SourceCount{{"GM_AUTHOR", 2}, {"officials_AUTHOR", 1}}, sources)
}

func TestAuthorComparison(t *testing.T) {
	m := AuthorComparison(sample(t))
	assert.Equal(t, 1, m.Get("ps_plus", "ct_plus"))
	assert.Equal(t, 1, m.Get("ct_plus", "uu"))
	assert.Equal(t, 1, m.Get("ct_minus", "ct_plus"))
	assert.Equal(t, 3, m.Total())
}

func TestMatrixRows(t *testing.T) {
	m := NewMatrix()
	m.Add("will", "ct_plus")
	m.Add("Might", "uu")
	m.Add("will", "ct_plus")
	assert.Equal(t, []string{"Might", "will"}, m.Rows())
	assert.Equal(t, 2, m.Get("will", "ct_plus"))
	assert.Equal(t, 0, m.Get("can", "ct_plus"))
}

func mustParse(t *testing.T, s string) *tree.Tree {
	t.Helper()
	tr, err := tree.Parse(s)
	require.NoError(t, err)
	return tr
}
