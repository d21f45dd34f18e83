// Package explore is an interactive prompt over a list of events.
package explore

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/c-bata/go-prompt"
	"github.com/revelaction/pragbank/event"
	"github.com/revelaction/pragbank/render"
	"github.com/revelaction/pragbank/stat"
)

const (
	splitAll = "all"

	// maxFound is the maximum number of events listed by find
	maxFound = 50
)

var commands = []prompt.Suggest{
	{Text: "show", Description: "show <n>: the event at index n"},
	{Text: "find", Description: "find <text>: events whose sentence contains text"},
	{Text: "split", Description: "split <train|test|all>: restrict find and majority"},
	{Text: "majority", Description: "PragBank majority tags of the current split"},
	{Text: "help", Description: "list the commands"},
	{Text: "quit", Description: "leave the prompt"},
}

var splits = []prompt.Suggest{
	{Text: string(event.Train)},
	{Text: string(event.Test)},
	{Text: splitAll},
}

type Handler struct {
	Events   []event.Event
	Renderer *render.Renderer

	split string
}

func NewHandler(events []event.Event, r *render.Renderer) *Handler {
	return &Handler{
		Events:   events,
		Renderer: r,
		split:    splitAll,
	}
}

// Run reads commands until quit or Ctrl+D.
func (h *Handler) Run() error {
	fmt.Printf("📚 %d events. Ctrl+F: next Format, 🔧 help, quit\n", len(h.Events))

	history := []string{}

	for {
		in := prompt.Input("      📖 ", h.completer,
			prompt.OptionTitle("pragbank explore"),
			prompt.OptionPrefixTextColor(prompt.Yellow),
			prompt.OptionPreviewSuggestionTextColor(prompt.Blue),
			prompt.OptionSelectedSuggestionBGColor(prompt.LightGray),
			prompt.OptionMaxSuggestion(8),
			prompt.OptionSuggestionBGColor(prompt.DarkGray),
			prompt.OptionHistory(history),
			prompt.OptionAddKeyBind(prompt.KeyBind{
				Key: prompt.ControlF,
				Fn: func(buf *prompt.Buffer) {
					h.Renderer.NextFormat()
					fmt.Println("Format set to: " + h.Renderer.Format)
				}}),
		)

		history = append(history, in)

		out, ok := h.Exec(in)
		fmt.Print(out)
		if !ok {
			return nil
		}
	}
}

// Exec runs one command line and returns its output. It returns false when
// the prompt should stop.
func (h *Handler) Exec(line string) (string, bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", true
	}

	cmd, args := fields[0], fields[1:]

	var buf bytes.Buffer
	r := *h.Renderer
	r.W = &buf

	switch cmd {
	case "quit", "exit":
		return "", false
	case "help":
		for _, c := range commands {
			fmt.Fprintf(&buf, "%-10s %s\n", c.Text, c.Description)
		}
	case "show":
		h.show(&r, args)
	case "find":
		h.find(&r, strings.Join(args, " "))
	case "split":
		h.setSplit(&buf, args)
	case "majority":
		h.majority(&r)
	default:
		fmt.Fprintf(&buf, "unknown command %q, type help\n", cmd)
	}

	return buf.String(), true
}

func (h *Handler) show(r *render.Renderer, args []string) {
	if len(args) != 1 {
		fmt.Fprintln(r.W, "usage: show <n>")
		return
	}

	i, err := strconv.Atoi(args[0])
	if err != nil || i < 0 || i >= len(h.Events) {
		fmt.Fprintf(r.W, "no event %q, valid indexes are 0 to %d\n", args[0], len(h.Events)-1)
		return
	}

	if err := r.Event(i, h.Events[i]); err != nil {
		fmt.Fprintf(r.W, "error: %v\n", err)
	}
}

func (h *Handler) find(r *render.Renderer, text string) {
	if text == "" {
		fmt.Fprintln(r.W, "usage: find <text>")
		return
	}

	needle := strings.ToLower(text)
	found := 0
	for i, e := range h.Events {
		if !h.inSplit(e) || !strings.Contains(strings.ToLower(e.Sentence), needle) {
			continue
		}

		found++
		if found <= maxFound {
			r.EventLine(i, e)
		}
	}

	if found > maxFound {
		fmt.Fprintf(r.W, "... %d more\n", found-maxFound)
	}
	fmt.Fprintf(r.W, "%d events found\n", found)
}

func (h *Handler) setSplit(buf *bytes.Buffer, args []string) {
	if len(args) != 1 {
		fmt.Fprintf(buf, "split is %s\n", h.split)
		return
	}

	if args[0] != splitAll {
		if _, err := event.ParseSplit(args[0]); err != nil {
			fmt.Fprintln(buf, "usage: split <train|test|all>")
			return
		}
	}

	h.split = strings.ToLower(args[0])
	fmt.Fprintf(buf, "split set to %s (%d events)\n", h.split, len(h.current()))
}

func (h *Handler) inSplit(e event.Event) bool {
	return h.split == "" || h.split == splitAll || e.TrainTest == event.Split(h.split)
}

func (h *Handler) current() []event.Event {
	var events []event.Event
	for _, e := range h.Events {
		if h.inSplit(e) {
			events = append(events, e)
		}
	}
	return events
}

// majority counts the PragBank majority tags of the current split. Events
// whose annotators tie are counted apart.
func (h *Handler) majority(r *render.Renderer) {
	counts := map[string]int{}
	ties := 0
	for _, e := range h.current() {
		tag, _, ok := e.MajorityPragValue()
		if !ok {
			ties++
			continue
		}
		counts[tag]++
	}

	if r.Format == render.FormatJSON {
		if err := r.JSON(struct {
			Majority map[string]int `json:"majority"`
			Ties     int            `json:"ties"`
		}{counts, ties}); err != nil {
			fmt.Fprintf(r.W, "error: %v\n", err)
		}
		return
	}

	for _, cat := range stat.Categories {
		fmt.Fprintf(r.W, "%10s %d\n", cat, counts[cat])
	}
	fmt.Fprintf(r.W, "%10s %d\n", "tie", ties)
}

func (h *Handler) completer(in prompt.Document) []prompt.Suggest {
	before := in.TextBeforeCursor()
	if before == "" {
		return []prompt.Suggest{}
	}

	tokens := strings.Split(before, " ")
	if len(tokens) == 1 {
		return prompt.FilterHasPrefix(commands, tokens[0], true)
	}

	if tokens[0] == "split" && len(tokens) == 2 {
		return prompt.FilterHasPrefix(splits, tokens[1], true)
	}

	return []prompt.Suggest{}
}
