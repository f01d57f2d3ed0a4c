package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding

	// File
	Open       key.Binding
	Reload     key.Binding
	CycleLimit key.Binding
	Copy       key.Binding

	// Levels, in priority order (debug, info, warning, error, panic)
	Levels [5]key.Binding

	// Navigation
	Up           key.Binding
	Down         key.Binding
	Top          key.Binding
	Bottom       key.Binding
	PageUp       key.Binding
	PageDown     key.Binding
	HalfPageUp   key.Binding
	HalfPageDown key.Binding

	// Prompt
	Confirm key.Binding
	Cancel  key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		// Global
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("h", "?"),
			key.WithHelp("h/?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),

		// File
		Open: key.NewBinding(
			key.WithKeys("o", "ctrl+o"),
			key.WithHelp("o", "Open log file"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r", "f5"),
			key.WithHelp("r", "Reload"),
		),
		CycleLimit: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "Cycle size limit"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "Copy line"),
		),

		Levels: [5]key.Binding{
			key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "Debug")),
			key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "Info")),
			key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "Warning")),
			key.NewBinding(key.WithKeys("4"), key.WithHelp("4", "Error")),
			key.NewBinding(key.WithKeys("5"), key.WithHelp("5", "Panic")),
		},

		// Navigation
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Move down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "Newest line"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "Oldest line"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "Page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdown", "Page down"),
		),
		HalfPageUp: key.NewBinding(
			key.WithKeys("ctrl+u"),
			key.WithHelp("ctrl+u", "Half page up"),
		),
		HalfPageDown: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "Half page down"),
		),

		// Prompt
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Confirm"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Cancel"),
		),
	}
}

// levelsBinding summarises the five level toggles for the footer.
func (k keyMap) levelsBinding() key.Binding {
	return key.NewBinding(key.WithKeys("1", "2", "3", "4", "5"), key.WithHelp("1-5", "Toggle levels"))
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Open, k.Reload, k.levelsBinding(), k.CycleLimit, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Open, k.Reload, k.CycleLimit, k.Copy},
		k.Levels[:],
		{k.Up, k.Down, k.Top, k.Bottom},
		{k.PageUp, k.PageDown, k.HalfPageUp, k.HalfPageDown},
		{k.CycleTheme, k.Help, k.Quit},
	}
}
