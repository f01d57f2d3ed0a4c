package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/logview/internal/viewer"
)

// layoutViewport sizes the line viewport to the window.
func (m *Model) layoutViewport() {
	w, h := m.width, max(m.height-chromeHeight, 1)
	if m.viewport.Width == 0 && m.viewport.Height == 0 {
		m.viewport = viewport.New(w, h)
	}
	m.viewport.Width = w
	m.viewport.Height = h
	m.renderViewport()
}

// renderViewport rebuilds the viewport content from the snapshot.
func (m *Model) renderViewport() {
	if !m.ready {
		return
	}
	m.viewport.Style = lipgloss.NewStyle().Background(lipgloss.Color(m.theme.Surface))
	m.viewport.SetContent(m.renderLineContent())
	m.scrollToCursor()
}

// renderLines renders the viewport.
func (m Model) renderLines() string {
	return m.viewport.View()
}

// renderLineContent renders every visible line with its level color.
func (m Model) renderLineContent() string {
	width := m.viewport.Width
	bg := NewBgStyle(m.theme.Surface)
	styles := m.theme.Styles()

	if len(m.snap.Lines) == 0 {
		msg := "No lines match the enabled levels"
		if m.snap.State == viewer.NoFile {
			msg = "Press o to open a log file"
		}
		return bg.FillLine(bg.Render(msg, styles.MutedText), width)
	}

	var b strings.Builder
	for i, line := range m.snap.Lines {
		b.WriteString(m.renderLine(line, i == m.cursor, width))
		if i < len(m.snap.Lines)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// renderLine renders a single row. The level color fills the row background
// and the selected row carries a marker in the gutter.
func (m Model) renderLine(line viewer.Line, selected bool, width int) string {
	marker := " "
	if selected {
		marker = "▌"
	}
	gutter := lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.Surface)).
		Foreground(lipgloss.Color(m.theme.Accent)).
		Render(marker)

	rowWidth := max(width-1, 1)
	style := lipgloss.NewStyle().
		Background(lipgloss.Color(line.Color)).
		Foreground(lipgloss.Color(m.theme.LineText)).
		Width(rowWidth)
	if selected {
		style = style.Bold(true)
	}
	return gutter + style.Render(truncate(expandTabs(line.Text), rowWidth))
}

// scrollToCursor keeps the selected row inside the viewport.
func (m *Model) scrollToCursor() {
	h := m.viewport.Height
	if h <= 0 {
		return
	}
	switch {
	case m.cursor < m.viewport.YOffset:
		m.viewport.SetYOffset(m.cursor)
	case m.cursor >= m.viewport.YOffset+h:
		m.viewport.SetYOffset(m.cursor - h + 1)
	}
}

// moveCursor shifts the selection by delta rows, clamped to the list.
func (m *Model) moveCursor(delta int) {
	last := len(m.snap.Lines) - 1
	if last < 0 {
		m.cursor = 0
		return
	}
	m.cursor = min(max(m.cursor+delta, 0), last)
	m.renderViewport()
}

// handleListKey processes navigation keys for the line list.
func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	page := max(m.viewport.Height, 1)

	switch {
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Top):
		m.moveCursor(-len(m.snap.Lines))
	case key.Matches(msg, m.keys.Bottom):
		m.moveCursor(len(m.snap.Lines))
	case key.Matches(msg, m.keys.PageDown):
		m.moveCursor(page)
	case key.Matches(msg, m.keys.PageUp):
		m.moveCursor(-page)
	case key.Matches(msg, m.keys.HalfPageDown):
		m.moveCursor(max(page/2, 1))
	case key.Matches(msg, m.keys.HalfPageUp):
		m.moveCursor(-max(page/2, 1))
	}
	return m, nil
}

func expandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", "    ")
}
