package ui

import (
	"context"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/logview/internal/config"
	"github.com/five82/logview/internal/viewer"
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Viewer    *viewer.Model
	ThemeName string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	viewer *viewer.Model
	snap   viewer.Snapshot

	// UI state
	theme  Theme
	keys   keyMap
	help   help.Model
	width  int
	height int
	ready  bool

	// Line list
	viewport viewport.Model
	cursor   int

	// Overlays
	showHelp  bool
	opening   bool
	pathInput textinput.Model

	// notice is a one-shot message shown in the status bar until the next key.
	notice string
}

// New creates a new Bubble Tea model around an existing viewer model.
func New(opts Options) Model {
	v := opts.Viewer
	if v == nil {
		v = viewer.New()
	}

	ti := textinput.New()
	ti.Prompt = "Open: "
	ti.Placeholder = "path to a log file"
	ti.CharLimit = 4096

	return Model{
		viewer:    v,
		snap:      v.Snapshot(),
		theme:     GetTheme(opts.ThemeName),
		keys:      DefaultKeyMap(),
		help:      help.New(),
		pathInput: ti,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ready = true
		m.layoutViewport()
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.notice = "Copy failed: " + msg.err.Error()
		} else {
			m.notice = "Copied line to clipboard"
		}
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderLines())
	b.WriteString("\n")
	b.WriteString(m.renderStatus())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}
	if m.opening {
		return m.handleOpenKey(msg)
	}

	m.notice = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.Open):
		m.opening = true
		m.pathInput.SetValue(m.snap.File)
		m.pathInput.CursorEnd()
		return m, m.pathInput.Focus()

	case key.Matches(msg, m.keys.Reload):
		m.viewer.Refresh()
		m.sync()
		return m, nil

	case key.Matches(msg, m.keys.CycleLimit):
		if err := m.viewer.SetBytesLimit(viewer.NextLimitPreset(m.snap.BytesLimit)); err != nil {
			m.notice = err.Error()
		}
		m.sync()
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		// Session only; settings are not persisted.
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.renderViewport()
		return m, nil

	case key.Matches(msg, m.keys.Copy):
		return m, m.copySelected()
	}

	for i, binding := range m.keys.Levels {
		if key.Matches(msg, binding) {
			m.toggleLevel(i)
			return m, nil
		}
	}

	return m.handleListKey(msg)
}

// handleOpenKey drives the open-file prompt.
func (m Model) handleOpenKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		m.opening = false
		m.pathInput.Blur()
		path := strings.TrimSpace(m.pathInput.Value())
		if path == "" {
			return m, nil
		}
		if expanded, err := config.ExpandPath(path); err == nil {
			path = expanded
		}
		m.viewer.SetCurrentFile(path)
		m.viewer.Refresh()
		m.cursor = 0
		m.sync()
		return m, nil

	case key.Matches(msg, m.keys.Cancel):
		m.opening = false
		m.pathInput.Blur()
		return m, nil

	case msg.String() == "ctrl+c":
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.pathInput, cmd = m.pathInput.Update(msg)
	return m, cmd
}

// toggleLevel flips the level at priority index i.
func (m *Model) toggleLevel(i int) {
	if i >= len(m.snap.Levels) {
		return
	}
	if err := m.viewer.ToggleLevel(m.snap.Levels[i].Name); err != nil {
		m.notice = err.Error()
	}
	m.sync()
}

// sync re-reads the viewer after a mutation.
func (m *Model) sync() {
	m.snap = m.viewer.Snapshot()
	if m.cursor >= len(m.snap.Lines) {
		m.cursor = max(len(m.snap.Lines)-1, 0)
	}
	m.renderViewport()
}

// copySelected copies the selected line text to the system clipboard.
func (m Model) copySelected() tea.Cmd {
	if m.cursor >= len(m.snap.Lines) {
		return nil
	}
	text := m.snap.Lines[m.cursor].Text
	return func() tea.Msg {
		return copiedMsg{err: clipboard.WriteAll(text)}
	}
}

// Messages

type copiedMsg struct {
	err error
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	progOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if opts.Context != nil {
		progOpts = append(progOpts, tea.WithContext(opts.Context))
	}
	p := tea.NewProgram(m, progOpts...)
	_, err := p.Run()
	return err
}
