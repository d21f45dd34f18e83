package render

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/revelaction/pragbank/evaluate"
	"github.com/revelaction/pragbank/event"
	"github.com/revelaction/pragbank/stat"
)

const (
	FormatText    = "text"
	FormatJSON    = "json"
	Defaultformat = FormatText

	// column widths of the fixed width tables
	comparisonWidth = 14
	modalWidth      = 10
)

var (
	Green   = "\033[1;32m"
	Yellow  = "\033[0;33m"
	Magenta = "\033[1;35m"
	Off     = "\033[0m"
	//Yellow256  = "\033[1;38;5;202m"
	Yellow256 = "\033[1;38;5;130m"
	Grey256   = "\033[1;38;5;145m"
	Green256  = "\033[1;38;5;70m"
)

func SupportedFormats() []string {
	return []string{FormatText, FormatJSON}
}

type Renderer struct {
	W io.Writer

	HasColor bool

	// Format is the output format of the reports
	//
	// text: fixed width tables and lines
	// json: one JSON document per report
	Format string
}

func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{W: w, Format: Defaultformat}
}

// NextFormat sets the Renderer Format option to a different one, following
// the SupportedFormats() order.
func (r *Renderer) NextFormat() {
	supported := SupportedFormats()
	for i, format := range supported {
		if format == r.Format {
			r.Format = supported[(i+1)%len(supported)]
			return
		}
	}
	r.Format = supported[0]
}

func (r *Renderer) isJSON() bool {
	return r.Format == FormatJSON
}

// ConfusionCSV writes the FactBank/PragBank confusion matrix as CSV, FactBank
// tags as rows and PragBank tags as columns.
func (r *Renderer) ConfusionCSV(m *stat.Matrix) error {
	w := csv.NewWriter(r.W)

	if err := w.Write(append([]string{"FactBank"}, stat.Categories...)); err != nil {
		return err
	}

	for _, fb := range stat.Categories {
		row := []string{fb}
		for _, pv := range stat.Categories {
			row = append(row, strconv.Itoa(m.Get(fb, pv)))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

// Confusion renders the confusion matrix in the Renderer format. The text
// format is CSV.
func (r *Renderer) Confusion(m *stat.Matrix) error {
	if r.isJSON() {
		return r.JSON(m)
	}
	return r.ConfusionCSV(m)
}

// Comparison renders the AUTHOR versus other sources matrix.
func (r *Renderer) Comparison(m *stat.Matrix) error {
	if r.isJSON() {
		return r.JSON(m)
	}
	return r.table(`author\other`, m, stat.Categories, comparisonWidth)
}

// Modals renders the modal statistics of a source: one row per modal.
func (r *Renderer) Modals(source stat.Source, m *stat.Matrix) error {
	if r.isJSON() {
		return r.JSON(struct {
			Source string       `json:"source"`
			Modals *stat.Matrix `json:"modals"`
		}{source.String(), m})
	}

	fmt.Fprintln(r.W, strings.Repeat("=", 70))
	fmt.Fprintln(r.W, source)
	return r.table("", m, m.Rows(), modalWidth)
}

// table writes a row per rows entry and a column per category, each cell
// right aligned to width.
func (r *Renderer) table(corner string, m *stat.Matrix, rows []string, width int) error {
	cells := append([]string{corner}, stat.Categories...)
	if _, err := fmt.Fprintln(r.W, columns(cells, width)); err != nil {
		return err
	}

	for _, row := range rows {
		cells := []string{row}
		for _, cat := range stat.Categories {
			cells = append(cells, strconv.Itoa(m.Get(row, cat)))
		}
		if _, err := fmt.Fprintln(r.W, columns(cells, width)); err != nil {
			return err
		}
	}

	return nil
}

func columns(cells []string, width int) string {
	var sb strings.Builder
	for _, c := range cells {
		sb.WriteString(fmt.Sprintf("%*s", width, c))
	}
	return sb.String()
}

// Associations renders, per category, the n words most associated with the
// FactBank annotation and the n words most associated with PragBank.
func (r *Renderer) Associations(a stat.Associations, n int) error {
	type entry struct {
		Category string           `json:"category"`
		FactBank []stat.WordCount `json:"factbank"`
		PragBank []stat.WordCount `json:"pragbank"`
	}

	entries := make([]entry, 0, len(stat.Categories))
	for _, cat := range stat.Categories {
		entries = append(entries, entry{cat, a.Top(cat, n), a.Bottom(cat, n)})
	}

	if r.isJSON() {
		return r.JSON(entries)
	}

	for _, e := range entries {
		fmt.Fprintln(r.W, e.Category)
		fmt.Fprintf(r.W, "\tFactBank: %s\n", wordCounts(e.FactBank))
		fmt.Fprintf(r.W, "\tPragBank: %s\n", wordCounts(e.PragBank))
	}

	return nil
}

func wordCounts(counts []stat.WordCount) string {
	parts := make([]string, len(counts))
	for i, c := range counts {
		parts[i] = fmt.Sprintf("%s: %d", c.Word, c.Count)
	}
	return strings.Join(parts, ", ")
}

// Sources renders the non AUTHOR sources, one per line.
func (r *Renderer) Sources(sources []stat.SourceCount) error {
	if r.isJSON() {
		return r.JSON(sources)
	}

	for _, s := range sources {
		if _, err := fmt.Fprintf(r.W, "%s %d\n", s.Source, s.Count); err != nil {
			return err
		}
	}
	return nil
}

// Evaluation renders the score of each gold file followed by the micro
// averaged F-score.
func (r *Renderer) Evaluation(report evaluate.Report) error {
	if r.isJSON() {
		return r.JSON(report)
	}

	for _, f := range report.Files {
		if f.Missing {
			fmt.Fprintf(r.W, "No answer file found for %s, score set to 0\n", f.File)
		}
		fmt.Fprintf(r.W, "FSCORE:%s\t%s\n", score(f.Score), f.File)
	}

	_, err := fmt.Fprintf(r.W, "MICRO-FSCORE:%s\n", score(report.Micro))
	return err
}

func score(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// EventLine renders a one line summary of the event at index i, with the
// event token highlighted.
func (r *Renderer) EventLine(i int, e event.Event) {
	tag, count, ok := e.MajorityPragValue()
	majority := "-"
	if ok {
		majority = fmt.Sprintf("%s:%d", tag, count)
	}

	author, _ := e.AuthorValue()
	prefix := fmt.Sprintf("[%5d %-5s %8s %12s] ✍  ", i, e.TrainTest, author, majority)
	if r.HasColor {
		prefix = Grey256 + prefix + Off
	}

	fmt.Fprintf(r.W, "%s%s\n", prefix, r.highlight(e.Sentence, e.EventText))
}

// Event renders the full event at index i followed by its tokens.
func (r *Renderer) Event(i int, e event.Event) error {
	if r.isJSON() {
		return r.JSON(struct {
			Index int    `json:"index"`
			Parse string `json:"sentence_parse"`
			event.Event
		}{i, e.SentenceParse.String(), e})
	}

	r.EventLine(i, e)
	fmt.Fprintln(r.W)
	fmt.Fprintf(r.W, "%16s %s\n", "File", e.File)
	fmt.Fprintf(r.W, "%16s %s\n", "Sentence", e.SentenceId)
	fmt.Fprintf(r.W, "%16s %s %s\n", "Event", e.EventId, e.EventInstanceId)
	fmt.Fprintf(r.W, "%16s %s\n", "Normalization", e.Normalization)
	fmt.Fprintf(r.W, "%16s %s\n", "FactValues", event.FormatFactValues(e.FactValues))
	fmt.Fprintf(r.W, "%16s %s\n", "PragValues", event.FormatPragValues(e.PragValues))
	fmt.Fprintln(r.W)

	for _, p := range e.Pos(nil) {
		mark := ""
		if p.Word == e.EventText {
			mark = "◀"
		}
		fmt.Fprintf(r.W, "%20q %8s %s\n", p.Word, p.Tag, mark)
	}

	return nil
}

// highlight colors the first occurrence of word in text.
func (r *Renderer) highlight(text, word string) string {
	text = strings.ReplaceAll(text, "\n", " ")
	if !r.HasColor || word == "" {
		return text
	}

	i := strings.Index(text, word)
	if i < 0 {
		return text
	}

	return text[:i] + Green256 + word + Off + text[i+len(word):]
}
