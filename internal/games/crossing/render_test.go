package crossing

import (
	"strings"
	"testing"

	"github.com/crossroad-arcade/crossroad/internal/config"
	"github.com/crossroad-arcade/crossroad/internal/core"
)

func TestRenderKeepsWrappedFrogOnScreen(t *testing.T) {
	g := New()
	g.Reset(core.DefaultConfig())
	g.theme = config.DefaultCrossingConfig()
	// The horizontal wrap can park the frog at x=605, past the field's right
	// edge; on wide terminals the scaled column lands outside the plot area
	// unless it is clamped back in.
	g.state.Frog.Pos = Vec{X: 605, Y: 300}

	scr := core.NewScreen(125, 40)
	g.Render(scr)

	found := false
	for y := 0; y < scr.Height(); y++ {
		if strings.ContainsRune(scr.Row(y), '@') {
			found = true
			break
		}
	}
	if !found {
		t.Error("wrapped frog not drawn anywhere on screen")
	}
}

func TestRenderTooSmallShowsOverlay(t *testing.T) {
	g := New()
	g.Reset(core.DefaultConfig())

	scr := core.NewScreen(21, 8)
	g.Render(scr)

	if !strings.Contains(scr.String(), "Window too small") {
		t.Error("undersized screen should show the resize overlay")
	}
}
