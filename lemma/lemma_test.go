package lemma

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWordNetTag(t *testing.T) {
	cases := map[string]string{
		"VBD":  Verb,
		"vbz":  Verb,
		"NNS":  Noun,
		"NNP":  Noun,
		"JJR":  Adjective,
		"RB":   Adverb,
		"RBS":  Adverb,
		"DT":   "dt",
		"MD":   "md",
		"R":    "r",
		"PRP$": "prp$",
		".":    ".",
	}

	for tag, want := range cases {
		assert.Equal(t, want, WordNetTag(tag), tag)
	}
}

func TestTagged(t *testing.T) {
	var calls []string
	lm := LemmatizerFunc(func(word, pos string) string {
		calls = append(calls, word+"/"+pos)
		return "LEMMA"
	})

	w, pos := Tagged(lm, "running", "VBG")
	assert.Equal(t, "LEMMA", w)
	assert.Equal(t, Verb, pos)

	w, pos = Tagged(lm, "The", "DT")
	assert.Equal(t, "The", w)
	assert.Equal(t, "dt", pos)

	assert.Equal(t, []string{"running/v"}, calls)
}

func TestIsWordNet(t *testing.T) {
	for _, pos := range []string{"n", "v", "a", "r"} {
		assert.True(t, IsWordNet(pos))
	}
	for _, pos := range []string{"", "md", "rb", "j"} {
		assert.False(t, IsWordNet(pos))
	}
}
