package ui

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestTruncateTitle(t *testing.T) {
	short := "A Short Title"
	if got := truncateTitle(short, MaxTitleLength); got != short {
		t.Errorf("Expected short title unchanged, got %q", got)
	}

	long := strings.Repeat("x", MaxTitleLength+10)
	got := truncateTitle(long, MaxTitleLength)
	if len([]rune(got)) != MaxTitleLength {
		t.Errorf("Expected %d runes after truncation, got %d", MaxTitleLength, len([]rune(got)))
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("Expected ellipsis suffix, got %q", got)
	}
}

func TestTruncateTitle_MultibyteRunes(t *testing.T) {
	long := strings.Repeat("Я", MaxTitleLength+10)
	got := truncateTitle(long, MaxTitleLength)

	if !utf8.ValidString(got) {
		t.Errorf("Expected valid UTF-8 after truncation, got %q", got)
	}
	if len([]rune(got)) != MaxTitleLength {
		t.Errorf("Expected %d runes after truncation, got %d", MaxTitleLength, len([]rune(got)))
	}
	if !strings.HasPrefix(got, "ЯЯЯ") {
		t.Errorf("Expected truncated Cyrillic prefix intact, got %q", got)
	}
}
