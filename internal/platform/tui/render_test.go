package tui

import (
	"strings"
	"testing"

	"github.com/crossroad-arcade/crossroad/internal/core"
)

func TestRenderScreenPreservesLayout(t *testing.T) {
	s := core.NewScreen(5, 2)
	s.DrawTextColored(0, 0, "ab", core.ColorRed)
	s.DrawText(2, 0, "cd")
	s.DrawText(0, 1, "xyz")

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	// Styling must never reorder or drop cells, whatever the color profile.
	if !strings.Contains(lines[0], "ab") || !strings.Contains(lines[0], "cd") {
		t.Errorf("row 0 lost content: %q", lines[0])
	}
	if !strings.Contains(lines[1], "xyz") {
		t.Errorf("row 1 lost content: %q", lines[1])
	}
}

func TestRenderScreenUnknownColorFallsBack(t *testing.T) {
	s := core.NewScreen(3, 1)
	s.SetCell(0, 0, 'z', core.Color(250))

	out := RenderScreen(s)
	if !strings.Contains(out, "z") {
		t.Errorf("cell with unmapped color dropped: %q", out)
	}
}
