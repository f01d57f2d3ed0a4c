package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/logview/internal/config"
	"github.com/five82/logview/internal/output"
	"github.com/five82/logview/internal/ui"
	"github.com/five82/logview/internal/viewer"
)

// ErrNoFile is returned by Print when neither the caller nor the config names a log file.
var ErrNoFile = errors.New("no log file given")

// Format selects how Print renders lines.
type Format string

const (
	FormatText  Format = "text"
	FormatPlain Format = "plain"
	FormatJSON  Format = "json"
)

// Options configure the logview application. Non-empty fields override the config file.
type Options struct {
	ConfigPath string
	File       string
	Limit      string   // human size, e.g. "4 MiB"
	Levels     []string // name=on|off
	Theme      string
}

// Run boots the logview TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	m, cfg, err := Prepare(opts)
	if err != nil {
		return err
	}

	err = ui.Run(ui.Options{
		Context:   ctx,
		Viewer:    m,
		ThemeName: cfg.Theme,
	})
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

// Print performs a single refresh and renders the visible lines to w.
// A missing or unreadable file is reported as an error.
func Print(ctx context.Context, w io.Writer, opts Options, format Format) error {
	m, _, err := Prepare(opts)
	if err != nil {
		return err
	}
	if m.CurrentFile() == "" {
		return ErrNoFile
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	snap := m.Snapshot()
	if snap.LastError != nil {
		return fmt.Errorf("%s: %w", snap.Status, snap.LastError)
	}

	var r output.Renderer
	switch format {
	case FormatJSON:
		r = output.NewJSONRenderer(w)
	case FormatPlain:
		r = output.NewTextRenderer(w, true)
	case FormatText, "":
		r = output.NewTextRenderer(w, false)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
	return r.Render(snap.Lines)
}

// Prepare loads the configuration, applies command line overrides and
// returns a model that has already been refreshed once.
func Prepare(opts Options) (*viewer.Model, config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, cfg, fmt.Errorf("load config: %w", err)
	}
	if err := applyOverrides(&cfg, opts); err != nil {
		return nil, cfg, err
	}

	m := viewer.New()
	if err := cfg.Apply(m); err != nil {
		return nil, cfg, fmt.Errorf("apply config: %w", err)
	}
	return m, cfg, nil
}

func applyOverrides(cfg *config.Config, opts Options) error {
	if file := strings.TrimSpace(opts.File); file != "" {
		expanded, err := config.ExpandPath(file)
		if err != nil {
			return fmt.Errorf("expand file path: %w", err)
		}
		cfg.File = expanded
	}
	if limit := strings.TrimSpace(opts.Limit); limit != "" {
		n, err := config.ParseLimit(limit)
		if err != nil {
			return err
		}
		cfg.BytesLimit = n
	}
	for _, raw := range opts.Levels {
		name, enabled, err := ParseLevelOverride(raw)
		if err != nil {
			return err
		}
		if err := cfg.SetLevel(name, enabled); err != nil {
			return err
		}
	}
	if theme := strings.TrimSpace(opts.Theme); theme != "" {
		cfg.Theme = theme
	}
	return nil
}

// ParseLevelOverride parses a "name=on" or "name=off" flag value.
// Boolean spellings accepted by strconv.ParseBool also work.
func ParseLevelOverride(value string) (string, bool, error) {
	name, state, ok := strings.Cut(value, "=")
	name = strings.ToLower(strings.TrimSpace(name))
	if !ok || name == "" {
		return "", false, fmt.Errorf("level override %q: want name=on|off", value)
	}
	switch state = strings.ToLower(strings.TrimSpace(state)); state {
	case "on":
		return name, true, nil
	case "off":
		return name, false, nil
	}
	enabled, err := strconv.ParseBool(state)
	if err != nil {
		return "", false, fmt.Errorf("level override %q: want name=on|off", value)
	}
	return name, enabled, nil
}
