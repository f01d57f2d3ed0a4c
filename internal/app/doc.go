// Package app is the composition root of logview.
//
// It loads the TOML configuration, applies command line overrides on top of
// it, builds a viewer.Model and hands it to a presentation surface:
//
//   - Run starts the Bubble Tea shell and blocks until the user quits or the
//     context is cancelled.
//   - Print performs one refresh and writes the visible lines to a writer as
//     styled text or JSON.
//
// # Overrides
//
// Non-empty Options fields win over the config file. Limit accepts human sizes
// ("4 MiB", "512KB"). Levels entries take the form name=on or name=off and are
// validated against the built-in level table.
//
// # Errors
//
// Configuration problems (invalid TOML, unknown level names, non-positive
// limits) are returned from Run, Print and Prepare. A missing or unreadable
// log file is not an error for Run: the shell shows it in the status bar.
// Print has no status bar and returns it wrapped with the status message.
package app
