package render

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/revelaction/pragbank/stat"
)

func TestJSONRenderSources(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf)
	r.Format = FormatJSON

	if err := r.Sources([]stat.SourceCount{{Source: "GM_AUTHOR", Count: 3}}); err != nil {
		t.Fatalf("render failed: %v", err)
	}

	var results []stat.SourceCount
	if err := json.Unmarshal(buf.Bytes(), &results); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}

	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}

	if results[0].Source != "GM_AUTHOR" || results[0].Count != 3 {
		t.Errorf("unexpected result %+v", results[0])
	}
}

func TestJSONRenderMatrix(t *testing.T) {
	m := stat.NewMatrix()
	m.Add("ct_plus", "pr_plus")
	m.Skipped = 2

	var buf bytes.Buffer
	r := NewRenderer(&buf)
	r.Format = FormatJSON

	if err := r.Confusion(m); err != nil {
		t.Fatalf("render failed: %v", err)
	}

	var got stat.Matrix
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}

	if got.Get("ct_plus", "pr_plus") != 1 {
		t.Errorf("expected cell 1, got %d", got.Get("ct_plus", "pr_plus"))
	}

	if got.Skipped != 2 {
		t.Errorf("expected skipped 2, got %d", got.Skipped)
	}
}

func TestNextFormat(t *testing.T) {
	r := NewRenderer(nil)
	r.NextFormat()
	if r.Format != FormatJSON {
		t.Fatalf("expected json, got %s", r.Format)
	}
	r.NextFormat()
	if r.Format != FormatText {
		t.Fatalf("expected text, got %s", r.Format)
	}
}
