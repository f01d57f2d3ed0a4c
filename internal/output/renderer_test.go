package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/five82/logview/internal/viewer"
)

var sample = []viewer.Line{
	{Text: "DEBUG trace", Color: "#FFFFFF", Level: "debug"},
	{Text: "ERROR boom", Color: "#FFB0D4", Level: "error"},
}

func TestTextRenderer_Plain(t *testing.T) {
	var buf bytes.Buffer
	if err := NewTextRenderer(&buf, true).Render(sample); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got, want := buf.String(), "DEBUG trace\nERROR boom\n"; got != want {
		t.Fatalf("output = %q, want %q", got, want)
	}
}

func TestTextRenderer_Styled(t *testing.T) {
	var buf bytes.Buffer
	if err := NewTextRenderer(&buf, false).Render(sample); err != nil {
		t.Fatalf("Render: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "ERROR boom") || strings.Count(out, "\n") != 2 {
		t.Fatalf("output = %q, want both lines", out)
	}
}

func TestJSONRenderer(t *testing.T) {
	var buf bytes.Buffer
	if err := NewJSONRenderer(&buf).Render(sample); err != nil {
		t.Fatalf("Render: %v", err)
	}

	dec := json.NewDecoder(&buf)
	for i, want := range sample {
		var got viewer.Line
		if err := dec.Decode(&got); err != nil {
			t.Fatalf("line %d: %v", i, err)
		}
		if got != want {
			t.Fatalf("line %d = %+v, want %+v", i, got, want)
		}
	}
}
