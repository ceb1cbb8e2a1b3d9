package ui

import (
	"testing"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

func TestTruncate_CellWidth(t *testing.T) {
	tests := []struct {
		name  string
		input string
		max   int
		want  string
	}{
		{name: "zero max", input: "hello", max: 0, want: ""},
		{name: "fits", input: "hello", max: 10, want: "hello"},
		{name: "exact", input: "hello", max: 5, want: "hello"},
		{name: "ellipsis", input: "hello world", max: 6, want: "hello…"},
		{name: "wide runes", input: "日本語タイトル", max: 7, want: "日本語…"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncate(tt.input, tt.max)
			if got != tt.want {
				t.Fatalf("truncate(%q, %d) = %q; want %q", tt.input, tt.max, got, tt.want)
			}
			if !utf8.ValidString(got) {
				t.Fatalf("output is not valid UTF-8: %q", got)
			}
			if w := runewidth.StringWidth(got); w > tt.max {
				t.Fatalf("output is %d cells wide; max %d", w, tt.max)
			}
		})
	}
}

func TestPadRight(t *testing.T) {
	for _, width := range []int{0, 1, 5, 12, 40} {
		for _, s := range []string{"", "abc", "日本語タイトル", "a much longer subject line than fits"} {
			got := padRight(s, width)
			if w := runewidth.StringWidth(got); w != width {
				t.Errorf("padRight(%q, %d) is %d cells wide", s, width, w)
			}
			if got := padLeft(s, width); runewidth.StringWidth(got) != width {
				t.Errorf("padLeft(%q, %d) is %d cells wide", s, width, runewidth.StringWidth(got))
			}
		}
	}
}

func TestSingleLine(t *testing.T) {
	if got := singleLine("a\n b\t\tc  "); got != "a b c" {
		t.Errorf("singleLine = %q, want %q", got, "a b c")
	}
}
