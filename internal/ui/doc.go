// Package ui provides the terminal shell for logview.
//
// # Architecture Overview
//
// The shell is a Bubble Tea program that renders a viewer.Model. It owns no
// log logic: every key that changes what is shown calls one of the model's
// operations and then re-reads a viewer.Snapshot.
//
// # Package Structure
//
//   - app.go: Model, Update/View and key dispatch
//   - keys.go: key bindings (bubbles/key) and footer help
//   - logs.go: the line list, row colors and cursor navigation
//   - layout.go: header legend, status bar and footer
//   - theme.go: palettes framing the level colors
//   - help.go: help overlay
//
// # Event Flow
//
//  1. A key arrives in Update
//  2. Mutating keys call SetCurrentFile+Refresh, SetBytesLimit, ToggleLevel or Refresh
//  3. sync() takes a fresh snapshot and rebuilds the viewport content
//  4. View renders header, lines, status and footer from the snapshot
//
// Nothing runs in the background; the display changes only in response to a
// key.
package ui
