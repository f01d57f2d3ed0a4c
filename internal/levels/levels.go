// Package levels classifies log lines into severity levels by keyword tags.
//
// Levels are checked in a fixed priority order (debug, info, warning, error,
// panic) and the first enabled level with a matching tag decides the color of
// a line. Matching is a case-sensitive substring test, so a tag appearing
// incidentally inside a message also counts.
package levels

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownLevel is returned when a level name is not part of the set.
var ErrUnknownLevel = errors.New("unknown level")

// Level names in priority order.
const (
	Debug   = "debug"
	Info    = "info"
	Warning = "warning"
	Error   = "error"
	Panic   = "panic"
)

// Level is a named severity category.
type Level struct {
	Name    string
	Tags    []string
	Enabled bool
	Color   string
}

// MatchesLine reports whether line contains any of the level's tags.
func (l Level) MatchesLine(line string) bool {
	for _, tag := range l.Tags {
		if tag != "" && strings.Contains(line, tag) {
			return true
		}
	}
	return false
}

// Defaults returns the stock level set in priority order.
func Defaults() []Level {
	return []Level{
		{Name: Debug, Tags: []string{"DEBUG"}, Enabled: false, Color: "#FFFFFF"},
		{Name: Info, Tags: []string{"INFO"}, Enabled: false, Color: "#FFFFFF"},
		{Name: Warning, Tags: []string{"WARNING", "ATTENZIONE"}, Enabled: true, Color: "#FFFED9"},
		{Name: Error, Tags: []string{"ERROR"}, Enabled: true, Color: "#FFB0D4"},
		{Name: Panic, Tags: []string{"PANIC"}, Enabled: true, Color: "#FF4096"},
	}
}

// Classifier holds an ordered level set. It is not safe for concurrent use;
// callers serialise access.
type Classifier struct {
	levels []Level
}

// NewClassifier builds a classifier over the default levels.
func NewClassifier() *Classifier {
	return &Classifier{levels: Defaults()}
}

func (c *Classifier) index(name string) (int, error) {
	for i := range c.levels {
		if c.levels[i].Name == name {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %q", ErrUnknownLevel, name)
}

// IsEnabled reports whether the named level is enabled.
func (c *Classifier) IsEnabled(name string) (bool, error) {
	i, err := c.index(name)
	if err != nil {
		return false, err
	}
	return c.levels[i].Enabled, nil
}

// Toggle flips the enabled flag of the named level.
func (c *Classifier) Toggle(name string) error {
	i, err := c.index(name)
	if err != nil {
		return err
	}
	c.levels[i].Enabled = !c.levels[i].Enabled
	return nil
}

// SetEnabled forces the enabled flag of the named level.
func (c *Classifier) SetEnabled(name string, enabled bool) error {
	i, err := c.index(name)
	if err != nil {
		return err
	}
	c.levels[i].Enabled = enabled
	return nil
}

// Classify returns the first enabled level matching line.
func (c *Classifier) Classify(line string) (Level, bool) {
	for _, l := range c.levels {
		if l.Enabled && l.MatchesLine(line) {
			return l, true
		}
	}
	return Level{}, false
}

// ColorFor returns the color of the first enabled level matching line. ok is
// false when no enabled level matches and the line should be dropped.
func (c *Classifier) ColorFor(line string) (color string, ok bool) {
	l, ok := c.Classify(line)
	if !ok {
		return "", false
	}
	return l.Color, true
}

// Levels returns a copy of the level set in priority order.
func (c *Classifier) Levels() []Level {
	out := make([]Level, len(c.levels))
	for i, l := range c.levels {
		l.Tags = append([]string(nil), l.Tags...)
		out[i] = l
	}
	return out
}

// Names returns the level names in priority order.
func (c *Classifier) Names() []string {
	names := make([]string, len(c.levels))
	for i, l := range c.levels {
		names[i] = l.Name
	}
	return names
}
