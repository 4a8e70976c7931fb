package layout

import (
	"strings"
	"testing"
)

func TestClip(t *testing.T) {
	content := "a\nb\nc\nd\ne"

	tests := []struct {
		name       string
		offset     int
		height     int
		want       string
		wantOffset int
	}{
		{"top", 0, 2, "a\nb", 0},
		{"middle", 2, 2, "c\nd", 2},
		{"past end clamps", 10, 2, "d\ne", 3},
		{"negative clamps", -3, 2, "a\nb", 0},
		{"taller than content", 1, 10, "a\nb\nc\nd\ne", 0},
		{"zero height", 0, 0, "", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, off := Clip(content, tt.offset, tt.height)
			if got != tt.want {
				t.Errorf("Clip() = %q, want %q", got, tt.want)
			}
			if off != tt.wantOffset {
				t.Errorf("offset = %d, want %d", off, tt.wantOffset)
			}
		})
	}
}

func TestIsTooSmall(t *testing.T) {
	if !IsTooSmall(MinWidth-1, MinHeight) {
		t.Error("narrow terminal should be too small")
	}
	if !IsTooSmall(MinWidth, MinHeight-1) {
		t.Error("short terminal should be too small")
	}
	if IsTooSmall(MinWidth, MinHeight) {
		t.Error("minimum size should fit")
	}
}

func TestContentWidth(t *testing.T) {
	if got := ContentWidth(80); got != 76 {
		t.Errorf("ContentWidth(80) = %d, want 76", got)
	}
	if got := ContentWidth(400); got != MaxContentWidth {
		t.Errorf("ContentWidth(400) = %d, want %d", got, MaxContentWidth)
	}
	if got := ContentWidth(2); got != 0 {
		t.Errorf("ContentWidth(2) = %d, want 0", got)
	}
}

func TestRenderHeaderShowsTabs(t *testing.T) {
	header := RenderHeader([]string{"Generate Quiz", "History"}, 1, 80)
	for _, want := range []string{"WikiQuiz", "Generate Quiz", "History"} {
		if !strings.Contains(header, want) {
			t.Errorf("header missing %q", want)
		}
	}
}

func TestRenderFooterShowsHints(t *testing.T) {
	footer := RenderFooter([]KeyHint{{Key: "Tab", Description: "Switch"}}, 80)
	if !strings.Contains(footer, "Tab") || !strings.Contains(footer, "Switch") {
		t.Errorf("footer missing hint: %q", footer)
	}
}
