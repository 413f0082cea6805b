package crossing

import (
	"testing"

	"github.com/crossroad-arcade/crossroad/internal/core"
)

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// A scripted run: a few hops toward the river, some idle ticks, a retreat.
func scriptedFrames() []core.InputFrame {
	frames := make([]core.InputFrame, 0, 40)
	for i := 0; i < 40; i++ {
		switch {
		case i%7 == 0:
			frames = append(frames, frame(core.ActionUp))
		case i%11 == 0:
			frames = append(frames, frame(core.ActionLeft))
		case i%13 == 0:
			frames = append(frames, frame(core.ActionDown))
		default:
			frames = append(frames, frame())
		}
	}
	return frames
}

func TestGameDeterministic(t *testing.T) {
	run := func() uint64 {
		g := New()
		g.Reset(core.DefaultConfig())
		for _, f := range scriptedFrames() {
			g.Step(f)
		}
		snap := g.Current().Snapshot()
		return snap.Hash()
	}

	first := run()
	for i := 0; i < 3; i++ {
		if got := run(); got != first {
			t.Fatalf("run %d hashed to %#x, first run %#x", i+2, got, first)
		}
	}
}

func TestGameSeedDoesNotPerturbSimulation(t *testing.T) {
	hash := func(seed int64) uint64 {
		cfg := core.DefaultConfig()
		cfg.Seed = seed
		g := New()
		g.Reset(cfg)
		for i := 0; i < 20; i++ {
			g.Step(frame())
		}
		snap := g.Current().Snapshot()
		return snap.Hash()
	}

	if hash(1) != hash(99) {
		t.Error("the simulation must not depend on the runtime seed")
	}
}

func TestGamePauseFreezesClock(t *testing.T) {
	g := New()
	g.Reset(core.DefaultConfig())
	g.Step(frame())
	before := g.Current()

	g.Step(frame(core.ActionPause))
	for i := 0; i < 5; i++ {
		g.Step(frame())
	}
	paused := g.Current()

	b, p := before.Snapshot(), paused.Snapshot()
	if b.Hash() != p.Hash() {
		t.Error("ticks must not reach the reducer while paused")
	}
	if !g.State().Paused {
		t.Error("State() should report the pause")
	}

	g.Step(frame(core.ActionPause))
	resumed := g.Current()
	r := resumed.Snapshot()
	if r.Hash() == p.Hash() {
		t.Error("unpausing should resume the clock")
	}
}

func TestGameRestartAppliesBeforeTick(t *testing.T) {
	g := New()
	g.Reset(core.DefaultConfig())
	for i := 0; i < 10; i++ {
		g.Step(frame())
	}
	g.state.Score = 700
	g.state.HighScore = 700
	g.state.GameOver = true

	g.Step(frame(core.ActionRestart))

	s := g.Current()
	if s.GameOver {
		t.Error("restart should leave a live game")
	}
	if s.Score != 0 {
		t.Errorf("Score = %d after restart, want 0", s.Score)
	}
	if s.HighScore != 700 {
		t.Errorf("HighScore = %d, want 700 retained", s.HighScore)
	}
	// The restart folded in before the tick, so the restarted world has
	// already taken its first step and the signal is spent.
	if s.Restart {
		t.Error("the Restart signal expires on the same step's tick")
	}
	if s.Time != timePerTick {
		t.Errorf("Time = %v, want one tick after restart", s.Time)
	}
}

func TestGameStateMirrorsSimulation(t *testing.T) {
	g := New()
	g.Reset(core.DefaultConfig())
	g.state.Score = 42
	g.state.HighScore = 99
	g.state.Level = 3

	gs := g.State()
	if gs.Score != 42 || gs.HighScore != 99 || gs.Level != 3 {
		t.Errorf("GameState = %+v, want score 42, high 99, level 3", gs)
	}
}
