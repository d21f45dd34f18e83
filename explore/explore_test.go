package explore

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/c-bata/go-prompt"
	"github.com/revelaction/pragbank/corpus"
	"github.com/revelaction/pragbank/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHandler(t *testing.T) *Handler {
	t.Helper()
	events, err := corpus.Load("../corpus/testdata/sample.csv")
	require.NoError(t, err)
	return NewHandler(events, render.NewRenderer(&bytes.Buffer{}))
}

func TestExecQuit(t *testing.T) {
	h := newHandler(t)

	out, ok := h.Exec("  ")
	assert.True(t, ok)
	assert.Empty(t, out)

	_, ok = h.Exec("quit")
	assert.False(t, ok)
	_, ok = h.Exec("exit")
	assert.False(t, ok)
}

func TestExecShow(t *testing.T) {
	h := newHandler(t)

	out, ok := h.Exec("show 1")
	assert.True(t, ok)
	assert.Contains(t, out, "Talks might resume, officials said.")
	assert.Contains(t, out, "wsj_0026.tml")
	assert.Contains(t, out, "◀")

	out, _ = h.Exec("show 3")
	assert.Contains(t, out, "no event")

	out, _ = h.Exec("show x")
	assert.Contains(t, out, "no event")

	out, _ = h.Exec("show")
	assert.Contains(t, out, "usage")
}

func TestExecShowJSON(t *testing.T) {
	h := newHandler(t)
	h.Renderer.Format = render.FormatJSON

	out, _ := h.Exec("show 0")

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "sell", got["event_text"])
	assert.EqualValues(t, 0, got["index"])
}

func TestExecFind(t *testing.T) {
	h := newHandler(t)

	out, _ := h.Exec("find THE")
	assert.Contains(t, out, "The company will sell the unit.")
	assert.Contains(t, out, "1 events found")

	out, _ = h.Exec("find e")
	assert.Contains(t, out, "3 events found")

	out, _ = h.Exec("find")
	assert.Contains(t, out, "usage")
}

func TestExecSplit(t *testing.T) {
	h := newHandler(t)

	out, _ := h.Exec("split test")
	assert.Equal(t, "split set to test (1 events)\n", out)

	out, _ = h.Exec("find e")
	assert.Contains(t, out, "1 events found")

	out, _ = h.Exec("split TRAIN")
	assert.Equal(t, "split set to train (2 events)\n", out)

	out, _ = h.Exec("split")
	assert.Equal(t, "split is train\n", out)

	out, _ = h.Exec("split dev")
	assert.Contains(t, out, "usage")

	out, _ = h.Exec("split all")
	assert.Equal(t, "split set to all (3 events)\n", out)
}

func TestExecMajority(t *testing.T) {
	h := newHandler(t)

	out, _ := h.Exec("majority")
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 8)
	assert.Equal(t, "   ct_plus 1", lines[0])
	assert.Equal(t, "  ct_minus 1", lines[3])
	assert.Equal(t, "       tie 1", lines[7])

	h.Exec("split train")
	h.Renderer.Format = render.FormatJSON
	out, _ = h.Exec("majority")

	var got struct {
		Majority map[string]int `json:"majority"`
		Ties     int            `json:"ties"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, map[string]int{"ct_plus": 1, "ct_minus": 1}, got.Majority)
	assert.Zero(t, got.Ties)
}

func TestExecUnknown(t *testing.T) {
	h := newHandler(t)

	out, ok := h.Exec("dance")
	assert.True(t, ok)
	assert.Contains(t, out, `unknown command "dance"`)

	out, _ = h.Exec("help")
	for _, c := range commands {
		assert.Contains(t, out, c.Text)
	}
}

func TestCompleter(t *testing.T) {
	h := newHandler(t)

	complete := func(text string) []string {
		buf := prompt.NewBuffer()
		buf.InsertText(text, false, true)
		var got []string
		for _, s := range h.completer(*buf.Document()) {
			got = append(got, s.Text)
		}
		return got
	}

	assert.Nil(t, complete(""))
	assert.Equal(t, []string{"show", "split"}, complete("s"))
	assert.Equal(t, []string{"train", "test"}, complete("split t"))
	assert.Nil(t, complete("show 1"))
}
