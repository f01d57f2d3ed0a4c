package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

// Terminal layout.
const (
	// chromeHeight is the number of rows used by header, status and footer.
	chromeHeight = 3

	// LayoutCompactWidth is the threshold below which level chips drop their names.
	LayoutCompactWidth = 80
)

// renderHeader renders the title line and the level legend.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	compact := m.width < LayoutCompactWidth

	chips := make([]string, 0, len(m.snap.Levels))
	for i, l := range m.snap.Levels {
		label := fmt.Sprintf("%d %s", i+1, titleCase(l.Name))
		if compact {
			label = fmt.Sprintf("%d", i+1)
		}
		if l.Enabled {
			chips = append(chips, lipgloss.NewStyle().
				Background(lipgloss.Color(l.Color)).
				Foreground(lipgloss.Color(m.theme.LineText)).
				Padding(0, 1).
				Render(label))
			continue
		}
		chips = append(chips, bg.Space()+bg.Render(label, styles.FaintText.Strikethrough(true))+bg.Space())
	}
	legend := strings.Join(chips, bg.Space())

	titleWidth := max(m.width-lipgloss.Width(legend)-2, 8)
	title := bg.Render(truncateMiddle(m.snap.Title, titleWidth), styles.Logo)

	return styles.Header.Width(m.width).Render(title + bg.Spaces(2) + legend)
}

// renderStatus renders the model status message and window information.
func (m Model) renderStatus() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.FocusBg)

	if m.opening {
		return bg.FillLine(m.pathInput.View(), m.width)
	}

	statusStyle := styles.Text
	if m.snap.LastError != nil {
		statusStyle = styles.DangerText
	}
	parts := []string{bg.Render(m.snap.Status, statusStyle)}

	if m.snap.File != "" {
		parts = append(parts, bg.Render(humanize.Comma(int64(len(m.snap.Lines)))+" lines", styles.MutedText))
	}
	parts = append(parts, bg.Render("limit "+humanize.IBytes(uint64(m.snap.BytesLimit)), styles.MutedText))
	if w := m.snap.Window; w.Truncated() {
		parts = append(parts, bg.Render(fmt.Sprintf("last %s of %s",
			humanize.IBytes(uint64(w.Len())), humanize.IBytes(uint64(w.Size))), styles.WarningText))
	}
	if m.notice != "" {
		parts = append(parts, bg.Render(m.notice, styles.AccentText))
	}

	sep := bg.Space() + bg.Render("•", styles.FaintText) + bg.Space()
	return bg.FillLine(strings.Join(parts, sep), m.width)
}

// renderFooter renders the short key help.
func (m Model) renderFooter() string {
	styles := m.theme.Styles()
	h := m.help
	h.Styles.ShortKey = styles.AccentText
	h.Styles.ShortDesc = styles.MutedText
	h.Styles.ShortSeparator = styles.FaintText
	return styles.Footer.Width(m.width).Render(h.View(m.keys))
}
