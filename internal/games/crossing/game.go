package crossing

import (
	"github.com/crossroad-arcade/crossroad/internal/config"
	"github.com/crossroad-arcade/crossroad/internal/core"
	"github.com/crossroad-arcade/crossroad/internal/registry"
)

// Manual step magnitudes, fixed by the input layer.
const (
	HorizontalStep = 45
	VerticalStep   = 60
)

// timePerTick is how far the elapsed clock advances per platform tick.
const timePerTick = 10

// Game adapts the pure reducer to the arcade platform. It owns the current
// State value and an elapsed-time counter; everything else is derived by
// Reduce. The simulation itself is fully deterministic: same inputs, same
// game, regardless of RuntimeConfig.Seed.
type Game struct {
	state   State
	elapsed float64
	paused  bool
	theme   config.CrossingConfig
}

// Package-level config path, set by the CLI before game creation.
var configPath string

// SetConfigPath sets the presentation config file path.
func SetConfigPath(path string) {
	configPath = path
}

// New creates a new Crossroad game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("crossing", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "crossing"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Crossroad"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	theme, err := config.LoadCrossing(configPath)
	if err != nil {
		theme = config.DefaultCrossingConfig()
	}
	g.theme = theme
	g.state = NewInitialState()
	g.elapsed = 0
	g.paused = false
}

// Step advances the game by one platform tick. Input events fold in before
// the clock pulse, matching the engine's source ordering: movement and
// restart are reactive, the tick is the sole driver of physics.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if in.Has(core.ActionRestart) {
		g.state = Reduce(g.state, Restart{})
		g.elapsed = 0
	}
	if in.Has(core.ActionLeft) {
		g.state = Reduce(g.state, Move{Dir: DirLeft, Steps: HorizontalStep})
	}
	if in.Has(core.ActionRight) {
		g.state = Reduce(g.state, Move{Dir: DirRight, Steps: HorizontalStep})
	}
	if in.Has(core.ActionUp) {
		g.state = Reduce(g.state, Move{Dir: DirUp, Steps: VerticalStep})
	}
	if in.Has(core.ActionDown) {
		g.state = Reduce(g.state, Move{Dir: DirDown, Steps: VerticalStep})
	}

	if !g.paused {
		g.elapsed += timePerTick
		g.state = Reduce(g.state, Tick{Elapsed: g.elapsed})
	}

	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.state.Score,
		HighScore: g.state.HighScore,
		Level:     g.state.Level,
		GameOver:  g.state.GameOver,
		Paused:    g.paused,
	}
}

// Current returns the current simulation state value.
func (g *Game) Current() State {
	return g.state
}
