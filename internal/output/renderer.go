// Package output writes a refreshed line list to a stream, for use outside
// the terminal UI.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/logview/internal/viewer"
)

// Renderer writes viewer lines to an output stream.
type Renderer interface {
	Render(lines []viewer.Line) error
}

// lineForeground keeps text readable on the light level backgrounds.
const lineForeground = "#1A1A1A"

// TextRenderer prints lines with their level color as background.
type TextRenderer struct {
	w     io.Writer
	plain bool
}

// NewTextRenderer returns a Renderer that writes styled text to w. With plain
// set, lines are printed without styling.
func NewTextRenderer(w io.Writer, plain bool) *TextRenderer {
	return &TextRenderer{w: w, plain: plain}
}

func (r *TextRenderer) Render(lines []viewer.Line) error {
	for _, line := range lines {
		text := line.Text
		if !r.plain {
			text = lineStyle(line.Color).Render(text)
		}
		if _, err := fmt.Fprintln(r.w, text); err != nil {
			return fmt.Errorf("write line: %w", err)
		}
	}
	return nil
}

func lineStyle(color string) lipgloss.Style {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(color)).
		Foreground(lipgloss.Color(lineForeground))
}

// JSONRenderer prints one JSON object per line.
type JSONRenderer struct {
	enc *json.Encoder
}

// NewJSONRenderer returns a Renderer that writes newline-delimited JSON to w.
func NewJSONRenderer(w io.Writer) *JSONRenderer {
	return &JSONRenderer{enc: json.NewEncoder(w)}
}

func (r *JSONRenderer) Render(lines []viewer.Line) error {
	for _, line := range lines {
		if err := r.enc.Encode(line); err != nil {
			return fmt.Errorf("encode line: %w", err)
		}
	}
	return nil
}
