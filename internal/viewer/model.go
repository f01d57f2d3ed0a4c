package viewer

import (
	"errors"
	"fmt"
	"log"
	"os"
	"slices"
	"sync"
	"time"

	"github.com/five82/logview/internal/levels"
	"github.com/five82/logview/internal/logtail"
)

// AppTitle is the window title shown when no file is loaded.
const AppTitle = "Log file viewer"

// DefaultBytesLimit is the cap used until SetBytesLimit is called.
const DefaultBytesLimit int64 = 2 * 1024 * 1024

// LimitPresets are the caps offered by the shell.
var LimitPresets = []int64{2 * 1024 * 1024, 4 * 1024 * 1024, 8 * 1024 * 1024}

var (
	// ErrInvalidLimit is returned for a non-positive byte cap.
	ErrInvalidLimit = errors.New("bytes limit must be positive")
	// ErrFileMissing marks a refresh of a path that is not an existing file.
	ErrFileMissing = errors.New("file does not exist")
	// ErrReadFailure marks a refresh whose read failed after the file was found.
	ErrReadFailure = errors.New("read failure")
)

// FileState tracks whether the displayed lines reflect the current file.
type FileState int

const (
	NoFile FileState = iota
	FileSet
	Loaded
)

func (s FileState) String() string {
	switch s {
	case FileSet:
		return "file-set"
	case Loaded:
		return "loaded"
	default:
		return "no-file"
	}
}

// Line is one visible log line with its display color.
type Line struct {
	Text  string `json:"text"`
	Color string `json:"color"`
	Level string `json:"level"`
}

// Model is the log viewer state.
type Model struct {
	mu sync.Mutex

	currentFile string
	bytesLimit  int64
	levels      *levels.Classifier

	state       FileState
	lines       []Line
	status      string
	title       string
	window      logtail.Window
	lastErr     error
	lastRefresh time.Time

	stat func(string) (os.FileInfo, error)
	read func(path string, limit int64) (logtail.Result, error)
}

// New returns a model with the default levels and cap, already refreshed.
func New() *Model {
	m := &Model{
		bytesLimit: DefaultBytesLimit,
		levels:     levels.NewClassifier(),
		stat:       os.Stat,
		read:       logtail.ReadWindow,
	}
	m.Refresh()
	return m
}

// SetCurrentFile stages path. The file is not checked until Refresh.
func (m *Model) SetCurrentFile(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.currentFile = path
	if path == "" {
		m.state = NoFile
		return
	}
	m.state = FileSet
}

// SetBytesLimit changes the cap and refreshes.
func (m *Model) SetBytesLimit(n int64) error {
	if n <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidLimit, n)
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	m.bytesLimit = n
	m.refreshLocked()
	return nil
}

// ToggleLevel flips the named level and refreshes.
func (m *Model) ToggleLevel(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.levels.Toggle(name); err != nil {
		return err
	}
	m.refreshLocked()
	return nil
}

// SetLevelEnabled forces the named level on or off and refreshes.
func (m *Model) SetLevelEnabled(name string, enabled bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.levels.SetEnabled(name, enabled); err != nil {
		return err
	}
	m.refreshLocked()
	return nil
}

// Refresh re-reads the current file.
func (m *Model) Refresh() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.refreshLocked()
}

func (m *Model) refreshLocked() {
	m.lastRefresh = time.Now()

	path := m.currentFile
	if path == "" {
		m.state = NoFile
		m.status = "Ready"
		m.title = AppTitle
		m.lines = nil
		m.window = logtail.Window{}
		m.lastErr = nil
		return
	}

	info, err := m.stat(path)
	if err != nil || info.IsDir() {
		m.state = FileSet
		m.status = fmt.Sprintf("File %s doesn't exist", path)
		m.lastErr = fmt.Errorf("%w: %s", ErrFileMissing, path)
		log.Printf("refresh %s: %v", path, m.lastErr)
		return
	}

	m.status = "Current file: " + path
	m.title = AppTitle + ": " + path

	res, err := m.read(path, m.bytesLimit)
	if err != nil {
		m.state = FileSet
		m.status = fmt.Sprintf("Cannot read file %s: %v", path, err)
		m.lastErr = fmt.Errorf("%w: %w", ErrReadFailure, err)
		log.Printf("refresh %s: %v", path, m.lastErr)
		return
	}

	lines := make([]Line, 0, len(res.Lines))
	for _, text := range res.Lines {
		l, ok := m.levels.Classify(text)
		if !ok {
			continue
		}
		lines = append(lines, Line{Text: text, Color: l.Color, Level: l.Name})
	}
	slices.Reverse(lines)

	m.lines = lines
	m.window = res.Window
	m.state = Loaded
	m.lastErr = nil
}

// Lines returns the visible lines, newest first.
func (m *Model) Lines() []Line {
	m.mu.Lock()
	defer m.mu.Unlock()
	return cloneLines(m.lines)
}

// StatusMessage returns the status bar text.
func (m *Model) StatusMessage() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.status
}

// Title returns the window title.
func (m *Model) Title() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.title
}

// IsLevelEnabled reports whether the named level is enabled.
func (m *Model) IsLevelEnabled(name string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.levels.IsEnabled(name)
}

// CurrentFile returns the staged path, empty when none.
func (m *Model) CurrentFile() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.currentFile
}

// BytesLimit returns the current cap.
func (m *Model) BytesLimit() int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.bytesLimit
}

// FileState returns the current file state.
func (m *Model) FileState() FileState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// LastError returns the soft failure of the last refresh, if any.
func (m *Model) LastError() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastErr
}

// LevelNames returns the level names in priority order.
func (m *Model) LevelNames() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.levels.Names()
}

// Levels returns a copy of the level table in priority order.
func (m *Model) Levels() []levels.Level {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.levels.Levels()
}

func cloneLines(lines []Line) []Line {
	if len(lines) == 0 {
		return nil
	}
	dup := make([]Line, len(lines))
	copy(dup, lines)
	return dup
}
