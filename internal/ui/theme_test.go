package ui

import "testing"

func TestThemeNames(t *testing.T) {
	names := ThemeNames()
	if len(names) != 3 {
		t.Fatalf("ThemeNames() returned %d names, want 3", len(names))
	}
	if names[0] != "Nightfox" || names[1] != "Kanagawa" || names[2] != "Slate" {
		t.Fatalf("ThemeNames() = %v, want [Nightfox Kanagawa Slate]", names)
	}
}

func TestNextTheme(t *testing.T) {
	if got := NextTheme("Nightfox"); got != "Kanagawa" {
		t.Fatalf("NextTheme(Nightfox) = %q, want Kanagawa", got)
	}
	if got := NextTheme("Slate"); got != "Nightfox" {
		t.Fatalf("NextTheme(Slate) = %q, want Nightfox", got)
	}
	if got := NextTheme("Unknown"); got != "Nightfox" {
		t.Fatalf("NextTheme(Unknown) = %q, want Nightfox", got)
	}
}

func TestGetTheme(t *testing.T) {
	if got := GetTheme("Kanagawa").Name; got != "Kanagawa" {
		t.Fatalf("GetTheme(Kanagawa).Name = %q", got)
	}
	if got := GetTheme("Unknown").Name; got != "Nightfox" {
		t.Fatalf("GetTheme(Unknown).Name = %q, want Nightfox (fallback)", got)
	}
}

func TestThemesDefineLineText(t *testing.T) {
	for _, name := range ThemeNames() {
		if GetTheme(name).LineText == "" {
			t.Fatalf("theme %s has no LineText color", name)
		}
	}
}
