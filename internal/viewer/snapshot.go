package viewer

import (
	"fmt"
	"time"

	"github.com/five82/logview/internal/levels"
	"github.com/five82/logview/internal/logtail"
)

// Snapshot is a consistent copy of every model observer.
type Snapshot struct {
	File        string
	BytesLimit  int64
	State       FileState
	Lines       []Line
	Status      string
	Title       string
	Levels      []levels.Level
	Window      logtail.Window
	LastError   error
	LastRefresh time.Time
}

// Snapshot returns a copy of the current model state.
func (m *Model) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	snap := Snapshot{
		File:        m.currentFile,
		BytesLimit:  m.bytesLimit,
		State:       m.state,
		Lines:       cloneLines(m.lines),
		Status:      m.status,
		Title:       m.title,
		Levels:      m.levels.Levels(),
		Window:      m.window,
		LastRefresh: m.lastRefresh,
	}
	if m.lastErr != nil {
		snap.LastError = fmt.Errorf("%w", m.lastErr)
	}
	return snap
}

// NextLimitPreset returns the preset following current, wrapping around. A
// cap that is not a preset moves to the first preset.
func NextLimitPreset(current int64) int64 {
	for i, p := range LimitPresets {
		if p == current {
			return LimitPresets[(i+1)%len(LimitPresets)]
		}
	}
	return LimitPresets[0]
}
