// Package viewer holds the log model behind the terminal shell.
//
// A Model owns the current file path, the byte cap and the level classifier.
// Every Refresh re-reads the trailing window of the file, keeps the lines an
// enabled level matches and stores them newest first together with a status
// message and a window title.
//
// # Operations
//
//   - SetCurrentFile stages a path; nothing is read until Refresh
//   - SetBytesLimit validates and stores the cap, then refreshes
//   - ToggleLevel flips a level, then refreshes
//   - Refresh re-derives lines, status and title
//
// # File States
//
//	NoFile  --SetCurrentFile-->  FileSet
//	FileSet --Refresh (missing or unreadable)--> FileSet (lines kept)
//	FileSet --Refresh (readable)--> Loaded
//	Loaded  --SetCurrentFile-->  FileSet
//
// # Error Handling
//
// ErrUnknownLevel (from package levels) and ErrInvalidLimit are returned to
// the caller. A missing file and a failed read are never returned: Refresh
// records them as LastError, writes a status message and keeps the previous
// lines and title on screen.
//
// # Concurrency
//
// A single mutex serialises each mutation together with its refresh, so a
// toggle and the refresh it triggers are observed as one step. Snapshot
// returns a copy that is safe to read after the lock is released.
package viewer
