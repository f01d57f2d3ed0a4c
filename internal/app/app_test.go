package app

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/five82/logview/internal/levels"
	"github.com/five82/logview/internal/viewer"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestParseLevelOverride(t *testing.T) {
	tests := []struct {
		in      string
		name    string
		enabled bool
		wantErr bool
	}{
		{in: "debug=on", name: "debug", enabled: true},
		{in: "INFO=Off", name: "info", enabled: false},
		{in: " warning = true ", name: "warning", enabled: true},
		{in: "panic=0", name: "panic", enabled: false},
		{in: "debug", wantErr: true},
		{in: "=on", wantErr: true},
		{in: "error=maybe", wantErr: true},
	}
	for _, tt := range tests {
		name, enabled, err := ParseLevelOverride(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseLevelOverride(%q) expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseLevelOverride(%q) error = %v", tt.in, err)
			continue
		}
		if name != tt.name || enabled != tt.enabled {
			t.Errorf("ParseLevelOverride(%q) = (%q, %v), want (%q, %v)", tt.in, name, enabled, tt.name, tt.enabled)
		}
	}
}

func TestPrepare_OverridesWinOverConfig(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	fromConfig := writeFile(t, dir, "config.log", "ERROR from config\n")
	fromFlag := writeFile(t, dir, "flag.log", "INFO from flag\nERROR boom\n")
	cfgPath := writeFile(t, dir, "config.toml", `
file = "`+fromConfig+`"
bytes_limit = "4 MiB"
theme = "Kanagawa"

[levels]
info = false
`)

	m, cfg, err := Prepare(Options{
		ConfigPath: cfgPath,
		File:       fromFlag,
		Limit:      "8MiB",
		Levels:     []string{"info=on"},
		Theme:      "Slate",
	})
	if err != nil {
		t.Fatalf("Prepare: %v", err)
	}

	if got := m.CurrentFile(); got != fromFlag {
		t.Fatalf("CurrentFile = %q, want %q", got, fromFlag)
	}
	if got := m.BytesLimit(); got != 8*1024*1024 {
		t.Fatalf("BytesLimit = %d, want 8 MiB", got)
	}
	if on, _ := m.IsLevelEnabled(levels.Info); !on {
		t.Fatalf("info should be enabled by the flag override")
	}
	if cfg.Theme != "Slate" {
		t.Fatalf("Theme = %q, want Slate", cfg.Theme)
	}
	if m.FileState() != viewer.Loaded {
		t.Fatalf("FileState = %v, want loaded", m.FileState())
	}
	lines := m.Lines()
	if len(lines) != 2 || lines[0].Text != "ERROR boom" || lines[1].Text != "INFO from flag" {
		t.Fatalf("Lines = %+v, want newest-first ERROR then INFO", lines)
	}
}

func TestPrepare_Errors(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	tests := []struct {
		name string
		opts Options
		want error
	}{
		{name: "zero limit", opts: Options{Limit: "0"}, want: viewer.ErrInvalidLimit},
		{name: "unknown level", opts: Options{Levels: []string{"fatal=on"}}, want: levels.ErrUnknownLevel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := Prepare(tt.opts); !errors.Is(err, tt.want) {
				t.Fatalf("Prepare error = %v, want %v", err, tt.want)
			}
		})
	}

	if _, _, err := Prepare(Options{Limit: "lots"}); err == nil {
		t.Fatalf("Prepare with unparseable limit expected error")
	}
}

func TestPrint_Text(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	path := writeFile(t, dir, "app.log", "INFO hello\nERROR boom\nDEBUG trace\n")

	var buf bytes.Buffer
	if err := Print(context.Background(), &buf, Options{File: path, Levels: []string{"debug=on"}}, FormatPlain); err != nil {
		t.Fatalf("Print: %v", err)
	}
	out := buf.String()
	debugAt, errorAt := strings.Index(out, "DEBUG trace"), strings.Index(out, "ERROR boom")
	if debugAt < 0 || errorAt < 0 || debugAt > errorAt {
		t.Fatalf("output = %q, want DEBUG trace before ERROR boom", out)
	}
	if strings.Contains(out, "INFO hello") {
		t.Fatalf("output = %q, should not include disabled info line", out)
	}
}

func TestPrint_JSON(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	path := writeFile(t, dir, "app.log", "PANIC now\n")

	var buf bytes.Buffer
	if err := Print(context.Background(), &buf, Options{File: path}, FormatJSON); err != nil {
		t.Fatalf("Print: %v", err)
	}
	var line viewer.Line
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line); err != nil {
		t.Fatalf("Unmarshal(%q): %v", buf.String(), err)
	}
	if line.Text != "PANIC now" || line.Level != levels.Panic || line.Color != "#FF4096" {
		t.Fatalf("line = %+v", line)
	}
}

func TestPrint_MissingFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)

	err := Print(context.Background(), &bytes.Buffer{}, Options{File: filepath.Join(dir, "missing.log")}, FormatText)
	if !errors.Is(err, viewer.ErrFileMissing) {
		t.Fatalf("Print error = %v, want ErrFileMissing", err)
	}
	if !strings.Contains(err.Error(), "doesn't exist") {
		t.Fatalf("Print error = %q, want status message", err)
	}
}

func TestPrint_NoFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	if err := Print(context.Background(), &bytes.Buffer{}, Options{}, FormatText); !errors.Is(err, ErrNoFile) {
		t.Fatalf("Print error = %v, want ErrNoFile", err)
	}
}

func TestPrint_CancelledContext(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	path := writeFile(t, dir, "app.log", "ERROR boom\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := Print(ctx, &bytes.Buffer{}, Options{File: path}, FormatText); !errors.Is(err, context.Canceled) {
		t.Fatalf("Print error = %v, want context.Canceled", err)
	}
}

func TestPrint_UnknownFormat(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	path := writeFile(t, dir, "app.log", "ERROR boom\n")

	if err := Print(context.Background(), &bytes.Buffer{}, Options{File: path}, Format("xml")); err == nil {
		t.Fatalf("Print with unknown format expected error")
	}
}
