package levels

import (
	"errors"
	"reflect"
	"testing"
)

func TestDefaults_Enablement(t *testing.T) {
	c := NewClassifier()
	want := map[string]bool{
		Debug:   false,
		Info:    false,
		Warning: true,
		Error:   true,
		Panic:   true,
	}
	for name, enabled := range want {
		got, err := c.IsEnabled(name)
		if err != nil {
			t.Fatalf("IsEnabled(%q) error = %v", name, err)
		}
		if got != enabled {
			t.Fatalf("IsEnabled(%q) = %v, want %v", name, got, enabled)
		}
	}
}

func TestNames_PriorityOrder(t *testing.T) {
	got := NewClassifier().Names()
	want := []string{Debug, Info, Warning, Error, Panic}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Names() = %v, want %v", got, want)
	}
}

func TestUnknownLevel(t *testing.T) {
	c := NewClassifier()
	if _, err := c.IsEnabled("fatal"); !errors.Is(err, ErrUnknownLevel) {
		t.Fatalf("IsEnabled(fatal) error = %v, want ErrUnknownLevel", err)
	}
	if err := c.Toggle("fatal"); !errors.Is(err, ErrUnknownLevel) {
		t.Fatalf("Toggle(fatal) error = %v, want ErrUnknownLevel", err)
	}
	if err := c.SetEnabled("Debug", true); !errors.Is(err, ErrUnknownLevel) {
		t.Fatalf("SetEnabled(Debug) error = %v, want ErrUnknownLevel", err)
	}
}

func TestToggle(t *testing.T) {
	c := NewClassifier()
	if err := c.Toggle(Debug); err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if on, _ := c.IsEnabled(Debug); !on {
		t.Fatalf("debug should be enabled after one toggle")
	}
	if err := c.Toggle(Debug); err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if on, _ := c.IsEnabled(Debug); on {
		t.Fatalf("debug should be disabled after two toggles")
	}
}

func TestMatchesLine(t *testing.T) {
	warn := Defaults()[2]
	tests := []struct {
		line string
		want bool
	}{
		{"2024-01-01 WARNING disk low", true},
		{"ATTENZIONE: spazio", true},
		{"warning lowercase", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := warn.MatchesLine(tt.line); got != tt.want {
			t.Errorf("MatchesLine(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}

func TestColorFor(t *testing.T) {
	c := NewClassifier()

	tests := []struct {
		name   string
		line   string
		color  string
		wantOK bool
	}{
		{"error", "ERROR boom", "#FFB0D4", true},
		{"panic", "PANIC now", "#FF4096", true},
		{"warning alt tag", "ATTENZIONE disco", "#FFFED9", true},
		{"disabled info", "INFO hello", "", false},
		{"disabled debug", "DEBUG trace", "", false},
		{"no tag", "plain text", "", false},
		{"warning before error", "WARNING then ERROR", "#FFFED9", true},
		{"case sensitive", "error lowercase", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			color, ok := c.ColorFor(tt.line)
			if ok != tt.wantOK || color != tt.color {
				t.Fatalf("ColorFor(%q) = (%q, %v), want (%q, %v)", tt.line, color, ok, tt.color, tt.wantOK)
			}
		})
	}
}

func TestColorFor_FirstEnabledMatchWins(t *testing.T) {
	c := NewClassifier()
	line := "DEBUG ERROR mixed"

	l, ok := c.Classify(line)
	if !ok || l.Name != Error {
		t.Fatalf("Classify = (%q, %v), want error", l.Name, ok)
	}

	if err := c.SetEnabled(Debug, true); err != nil {
		t.Fatalf("SetEnabled: %v", err)
	}
	l, ok = c.Classify(line)
	if !ok || l.Name != Debug {
		t.Fatalf("Classify = (%q, %v), want debug once enabled", l.Name, ok)
	}
}

func TestColorFor_AllSubsets(t *testing.T) {
	lines := []string{"DEBUG a", "INFO b", "WARNING c", "ERROR d", "PANIC e", "none"}
	names := NewClassifier().Names()

	for mask := 0; mask < 1<<len(names); mask++ {
		c := NewClassifier()
		for i, name := range names {
			if err := c.SetEnabled(name, mask&(1<<i) != 0); err != nil {
				t.Fatalf("SetEnabled: %v", err)
			}
		}
		for _, line := range lines {
			want := false
			for _, l := range c.Levels() {
				if l.Enabled && l.MatchesLine(line) {
					want = true
				}
			}
			if _, ok := c.ColorFor(line); ok != want {
				t.Fatalf("mask %05b ColorFor(%q) ok = %v, want %v", mask, line, ok, want)
			}
		}
	}
}

func TestLevels_ReturnsCopy(t *testing.T) {
	c := NewClassifier()
	ls := c.Levels()
	ls[0].Enabled = true
	ls[0].Tags[0] = "CHANGED"

	if on, _ := c.IsEnabled(Debug); on {
		t.Fatalf("mutating Levels() result changed classifier state")
	}
	if c.Levels()[0].Tags[0] != "DEBUG" {
		t.Fatalf("mutating Levels() tags changed classifier state")
	}
}
