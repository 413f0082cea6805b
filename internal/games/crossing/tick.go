package crossing

// Per-level speed ramp and the scoring constants for round and level wins.
const (
	levelSpeedStep  = 0.2
	levelBonus      = 500
	targetBonus     = 300
	crocRideTimeout = 250
)

// advance is the tick engine. Exactly one of four paths runs: the level is
// won, the game is over, the round is won, or the simulation takes a normal
// step. The elapsed value comes from the external fixed-rate clock.
func advance(s State, elapsed float64) State {
	switch {
	case s.TargetOne.Filled && s.TargetTwo.Filled && s.TargetThree.Filled:
		return levelReset(s)
	case s.Frog.TimeOnCroc > crocRideTimeout || s.GameOver:
		out := s
		out.GameOver = true
		return out
	case s.Reached:
		return roundReset(s)
	default:
		return normalStep(s, elapsed)
	}
}

// ramp rebuilds a lane at the base layout positions with its speed stepped
// toward faster play: positive-moving lanes gain 0.2, negative-moving lanes
// lose 0.2, so the magnitude grows either way.
func ramp(base, current Lane, step float64) Lane {
	out := base
	for i := range out {
		out[i].Vel = Vec{X: current[i].Vel.X + step}
	}
	return out
}

// levelReset starts the next level: fresh layout, faster lanes, the level
// bonus banked, and a new powerup draw. The renderer clears everything on
// LevelBeaten, so Removables restarts with just the lingering ghost frog.
func levelReset(s State) State {
	out := NewInitialState()
	out.Cars = ramp(out.Cars, s.Cars, levelSpeedStep)
	out.Planks = ramp(out.Planks, s.Planks, levelSpeedStep)
	out.Snakes = ramp(out.Snakes, s.Snakes, levelSpeedStep)
	out.Buses = ramp(out.Buses, s.Buses, -levelSpeedStep)
	out.Crocs = ramp(out.Crocs, s.Crocs, -levelSpeedStep)
	out.Turtles = ramp(out.Turtles, s.Turtles, -levelSpeedStep)

	out.FrogCount = s.FrogCount
	out.Removables = appendRemovable(out.Removables, ghostID(s.FrogCount))
	out.LevelBeaten = true
	out.Level = s.Level + 1
	out.Score = s.Score + levelBonus
	out.HighScore = max(s.HighScore, s.Score+levelBonus)

	out.RNG = s.RNG.Next()
	out.JumpPower.Pos = powerupPosition(out.RNG)
	return out
}

// roundReset starts the next life after a target is reached. Lane motion,
// target fills, score, level, time and the jump powerup stickiness all carry
// over; the frog returns to the start and leaves a ghost on the target.
func roundReset(s State) State {
	out := NewInitialState()
	out.Cars = s.Cars
	out.Buses = s.Buses
	out.Planks = s.Planks
	out.Crocs = s.Crocs
	out.Snakes = s.Snakes
	out.Turtles = s.Turtles
	out.TargetOne = s.TargetOne
	out.TargetTwo = s.TargetTwo
	out.TargetThree = s.TargetThree

	out.Level = s.Level
	out.Time = s.Time
	out.DoubleJump = s.DoubleJump
	out.Score = s.Score
	out.HighScore = s.HighScore

	out.FrogCount = s.FrogCount + 1
	out.Removables = appendRemovable(s.Removables, ghostID(out.FrogCount))

	out.RNG = s.RNG.Next()
	out.JumpPower.Pos = powerupPosition(out.RNG)
	return out
}

func advanceLane(lane Lane) Lane {
	out := lane
	for i := range out {
		out[i].Pos = ObjectWrap(out[i].Pos.Add(out[i].Vel))
	}
	return out
}

// normalStep is the common path: refresh the frog's river and croc timers,
// move every lane body one velocity step with wrap, then hand the result to
// the collision resolver.
func normalStep(s State, elapsed float64) State {
	frog := s.Frog
	frog.InRiver = frog.Pos.Y > BankRowY && frog.Pos.Y <= RiverBottomY
	if frog.OnCroc {
		frog.TimeOnCroc++
	} else {
		frog.TimeOnCroc = 0
	}

	out := s
	out.Frog = frog
	out.Time = elapsed
	// One-shot renderer signals expire on the first normal step after them.
	out.Restart = false
	out.LevelBeaten = false
	out.Cars = advanceLane(s.Cars)
	out.Buses = advanceLane(s.Buses)
	out.Planks = advanceLane(s.Planks)
	out.Crocs = advanceLane(s.Crocs)
	out.Snakes = advanceLane(s.Snakes)
	out.Turtles = advanceLane(s.Turtles)

	return resolve(out)
}
