package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/dustin/go-humanize"
	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/logview/internal/levels"
	"github.com/five82/logview/internal/viewer"
)

// Config captures the startup settings of logview.
type Config struct {
	File       string
	BytesLimit int64
	Theme      string
	Levels     map[string]bool // overrides of the default enablement
}

const (
	defaultConfigPath = "~/.config/logview/config.toml"
	defaultTheme      = "Nightfox"
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		BytesLimit: viewer.DefaultBytesLimit,
		Theme:      defaultTheme,
		Levels:     map[string]bool{},
	}
}

// Load locates and parses the config file, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		File       string          `toml:"file"`
		BytesLimit string          `toml:"bytes_limit"`
		Theme      string          `toml:"theme"`
		Levels     map[string]bool `toml:"levels"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if file := strings.TrimSpace(raw.File); file != "" {
		cfg.File = mustExpand(file)
	}

	if limit := strings.TrimSpace(raw.BytesLimit); limit != "" {
		n, err := ParseLimit(limit)
		if err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
		cfg.BytesLimit = n
	}

	if theme := strings.TrimSpace(raw.Theme); theme != "" {
		cfg.Theme = theme
	}

	for name, enabled := range raw.Levels {
		if err := cfg.SetLevel(name, enabled); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
	}

	return cfg, nil
}

// ParseLimit parses a human byte size such as "4 MiB" or "2097152".
func ParseLimit(value string) (int64, error) {
	n, err := humanize.ParseBytes(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("bytes limit %q: %w", value, err)
	}
	if n == 0 || n > 1<<62 {
		return 0, fmt.Errorf("bytes limit %q: %w", value, viewer.ErrInvalidLimit)
	}
	return int64(n), nil
}

// SetLevel records an enablement override after validating the level name.
func (c *Config) SetLevel(name string, enabled bool) error {
	name = strings.ToLower(strings.TrimSpace(name))
	if !slices.Contains(levels.NewClassifier().Names(), name) {
		return fmt.Errorf("%w: %q", levels.ErrUnknownLevel, name)
	}
	if c.Levels == nil {
		c.Levels = map[string]bool{}
	}
	c.Levels[name] = enabled
	return nil
}

// Apply pushes the configuration into m. Level overrides are applied in
// priority order so the result does not depend on map iteration.
func (c Config) Apply(m *viewer.Model) error {
	if c.BytesLimit > 0 {
		if err := m.SetBytesLimit(c.BytesLimit); err != nil {
			return err
		}
	}
	for _, name := range m.LevelNames() {
		enabled, ok := c.Levels[name]
		if !ok {
			continue
		}
		if err := m.SetLevelEnabled(name, enabled); err != nil {
			return err
		}
	}
	if c.File != "" {
		m.SetCurrentFile(c.File)
	}
	m.Refresh()
	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}

// ExpandPath resolves a leading tilde and makes path absolute.
func ExpandPath(path string) (string, error) {
	return expandPath(path)
}
