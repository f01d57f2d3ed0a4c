// Package config loads logview's startup configuration.
//
// # Overview
//
// Configuration is read once when the program starts and never written back.
// Every field is optional and a missing file is not an error.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/logview/config.toml (default)
//  3. If the config file doesn't exist, fall back to defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// # TOML Format
//
//	file = "~/logs/app.log"
//	bytes_limit = "4 MiB"
//	theme = "Kanagawa"
//
//	[levels]
//	debug = true
//	warning = false
//
// bytes_limit accepts anything go-humanize can parse ("2MiB", "4 MB",
// "8388608"). Level names must be one of debug, info, warning, error or
// panic; any other name fails the load.
//
// # Error Handling
//
// Load returns errors for:
//   - Path expansion failures (e.g., cannot determine home directory)
//   - File read errors (except os.ErrNotExist, which triggers defaults)
//   - TOML parsing errors, invalid sizes and unknown level names
//
// # Applying
//
// Config.Apply sets the cap, the level overrides and the initial file on a
// viewer.Model and refreshes it once.
package config
