package crossing

import (
	"fmt"

	"github.com/crossroad-arcade/crossroad/internal/config"
	"github.com/crossroad-arcade/crossroad/internal/core"
)

const hudHeight = 2

// Render draws the current state. The 600-unit field is scaled onto whatever
// cell grid is available; rendering is presentation only and never feeds back
// into the simulation.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	plotW := dst.Width() - 2
	plotH := dst.Height() - hudHeight - 1
	if plotW < 20 || plotH < 10 {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	// The frog's horizontal wrap can leave it a few units outside [0, 600],
	// so scaled columns are clamped back into the plot band.
	sx := func(x float64) int {
		return core.Clamp(1+int(x*float64(plotW-1)/FieldWidth), 1, plotW)
	}
	sy := func(y float64) int {
		return core.Clamp(hudHeight+int(y*float64(plotH-1)/600), hudHeight, hudHeight+plotH-1)
	}

	s := g.state
	theme := g.theme.Theme

	// River band backdrop.
	river := config.Rune(theme.River, '░')
	for y := sy(BankRowY + 1); y <= sy(RiverBottomY); y++ {
		for x := 1; x <= plotW; x++ {
			dst.SetCell(x, y, river, g.color(core.ColorBlue))
		}
	}

	drawBody := func(b Body, r rune, c core.Color) {
		row := sy(b.Pos.Y)
		from := sx(b.Pos.X - b.Extent)
		to := sx(b.Pos.X + b.Extent)
		for x := from; x <= to; x++ {
			dst.SetCell(x, row, r, g.color(c))
		}
	}
	drawLane := func(lane Lane, r rune, c core.Color) {
		for _, b := range lane {
			drawBody(b, r, c)
		}
	}

	drawLane(s.Planks, config.Rune(theme.Plank, '='), core.ColorYellow)
	drawLane(s.Crocs, config.Rune(theme.Croc, '<'), core.ColorGreen)
	drawLane(s.Turtles, config.Rune(theme.Turtle, 'o'), core.ColorCyan)
	drawLane(s.Cars, config.Rune(theme.Car, '▄'), core.ColorBrightRed)
	drawLane(s.Buses, config.Rune(theme.Bus, '█'), core.ColorRed)
	drawLane(s.Snakes, config.Rune(theme.Snake, 's'), core.ColorMagenta)

	for _, t := range []Body{s.TargetOne, s.TargetTwo, s.TargetThree} {
		r := config.Rune(theme.TargetOpen, 'U')
		c := core.ColorWhite
		if t.Filled {
			r = config.Rune(theme.TargetFilled, 'X')
			c = core.ColorBrightYellow
		}
		drawBody(t, r, c)
	}

	drawBody(s.JumpPower, config.Rune(theme.Powerup, '+'), core.ColorBrightWhite)

	// Player last so it stays visible on top of whatever it rides. While the
	// snake bite holds, the frog is drawn as a snake.
	frogRune := config.Rune(theme.Frog, '@')
	frogColor := core.ColorBrightGreen
	if s.SnakeBite {
		frogRune = config.Rune(theme.FrogBitten, '~')
		frogColor = core.ColorBrightMagenta
	}
	dst.SetCell(sx(s.Frog.Pos.X), sy(s.Frog.Pos.Y), frogRune, g.color(frogColor))

	switch {
	case s.GameOver:
		g.renderOverlay(dst, "Game Over", "Press R to restart")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// color maps to the themed color, or default when color is disabled.
func (g *Game) color(c core.Color) core.Color {
	if !g.theme.Theme.Color {
		return core.ColorDefault
	}
	return c
}

func (g *Game) renderHUD(dst *core.Screen) {
	s := g.state
	hud := fmt.Sprintf(" Crossroad — Score: %d", s.Score)
	if g.theme.HUD.ShowHighScore {
		hud += fmt.Sprintf("  Best: %d", s.HighScore)
	}
	if g.theme.HUD.ShowLevel {
		hud += fmt.Sprintf("  Level: %d", s.Level)
	}
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := core.Max(len(line1), len(line2))
	boxW := maxLen + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(core.NewRect(box.X+1, box.Y+1, box.W-2, box.H-2), ' ')
	dst.DrawBox(box)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}
