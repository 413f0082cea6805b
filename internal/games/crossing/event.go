package crossing

// Direction is one of the four manual movement directions.
type Direction int

const (
	DirLeft Direction = iota
	DirRight
	DirUp
	DirDown
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	default:
		return "unknown"
	}
}

// Event is the closed union of inputs the reducer folds over. Only the three
// types below implement it; a fourth event kind is a compile-time
// impossibility, not a runtime error case.
type Event interface {
	isEvent()
}

// Move is a manual frog step. Steps is a magnitude; the direction supplies
// the sign (left and up are negative).
type Move struct {
	Dir   Direction
	Steps float64
}

// Tick is one pulse of the external fixed-rate clock, carrying the
// monotonically increasing elapsed time.
type Tick struct {
	Elapsed float64
}

// Restart abandons the current game.
type Restart struct{}

func (Move) isEvent()    {}
func (Tick) isEvent()    {}
func (Restart) isEvent() {}

// Reduce folds one event into the state. It is the single entry point of the
// engine: callers deliver events in arrival order and observe one State per
// event.
func Reduce(s State, ev Event) State {
	switch e := ev.(type) {
	case Move:
		return reduceMove(s, e)
	case Tick:
		return advance(s, e.Elapsed)
	case Restart:
		out := NewInitialState()
		out.FrogCount = s.FrogCount
		out.Removables = append([]string{}, s.Removables...)
		out.HighScore = s.HighScore
		out.Restart = true
		return out
	default:
		return s
	}
}

func reduceMove(s State, e Move) State {
	if s.GameOver {
		return s
	}

	frog := s.Frog
	frog.Vel = Vec{}
	out := s

	// A bitten frog is frozen in place until the round resets.
	if s.SnakeBite {
		out.Frog = frog
		return out
	}

	cand := frog.Pos
	switch e.Dir {
	case DirLeft:
		cand.X -= e.Steps
	case DirRight:
		cand.X += e.Steps
	case DirUp:
		step := e.Steps
		if s.DoubleJump {
			step *= 2
		}
		cand.Y -= step
	case DirDown:
		step := e.Steps
		if s.DoubleJump {
			step *= 2
		}
		cand.Y += step
	}

	if s.DoubleJump {
		frog.Pos = DoubleJumpWrap(cand)
	} else {
		frog.Pos = FrogWrap(cand)
	}
	out.Frog = frog
	return out
}
