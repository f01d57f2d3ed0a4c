package ui

import "testing"

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		limit int
		want  string
	}{
		{"short", 10, "short"},
		{"exactly10!", 10, "exactly10!"},
		{"a longer line", 8, "a lon..."},
		{"abcdef", 2, "ab"},
		{"unbounded", 0, "unbounded"},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.limit); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.limit, got, tt.want)
		}
	}
}

func TestTruncateMiddle(t *testing.T) {
	if got := truncateMiddle("  ", 10); got != "" {
		t.Fatalf("truncateMiddle blank = %q, want empty", got)
	}
	if got := truncateMiddle("abcd", 2); got != "ab" {
		t.Fatalf("truncateMiddle limit<=3 = %q, want ab", got)
	}
	got := truncateMiddle("/var/log/very/long/path/app.log", 16)
	if len([]rune(got)) > 16 {
		t.Fatalf("got %q (%d runes), want <=16", got, len([]rune(got)))
	}
	if got[len(got)-4:] != ".log" {
		t.Fatalf("got %q, want extension preserved", got)
	}
}

func TestTitleCase(t *testing.T) {
	if got := titleCase("warning"); got != "Warning" {
		t.Fatalf("titleCase = %q, want Warning", got)
	}
	if got := titleCase("log_file"); got != "Log File" {
		t.Fatalf("titleCase = %q, want Log File", got)
	}
}
