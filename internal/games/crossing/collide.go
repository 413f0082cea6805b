package crossing

// bodiesCollided is the proximity test every rule in the game runs on. It is
// deliberately asymmetric in (a, b): when a sits strictly right of b within a
// 20-unit vertical band the extents add, otherwise they subtract, so a large
// b can suppress detection entirely. The asymmetry ships as-is from the
// original game; every balance constant above was tuned against it, so do not
// replace it with a symmetric overlap test.
func bodiesCollided(a, b Body) bool {
	dy := a.Pos.Y - b.Pos.Y
	if a.Pos.X > b.Pos.X && dy >= -20 && dy <= 20 {
		return a.Pos.Sub(b.Pos).Len() < a.Extent+b.Extent
	}
	return b.Pos.Sub(a.Pos).Len() < a.Extent-b.Extent
}

func hitsAny(frog Body, lane Lane) bool {
	for _, b := range lane {
		if bodiesCollided(frog, b) {
			return true
		}
	}
	return false
}

// resolve computes all collision-derived fields of s. Every check runs
// against the frog position as it stood on entry; the frog only moves (by its
// riding velocity) in the final step.
func resolve(s State) State {
	frog := s.Frog

	hitVehicle := hitsAny(frog, s.Cars) || hitsAny(frog, s.Buses)
	onPlatform := hitsAny(frog, s.Planks) || hitsAny(frog, s.Crocs) || hitsAny(frog, s.Turtles)
	drowned := frog.InRiver && !onPlatform
	frogCollided := hitVehicle || drowned

	frogReached := bodiesCollided(frog, s.TargetOne) ||
		bodiesCollided(frog, s.TargetTwo) ||
		bodiesCollided(frog, s.TargetThree)

	powerUp := bodiesCollided(frog, s.JumpPower)

	frog.OnLog = frog.InRiver && hitsAny(frog, s.Planks)
	frog.OnCroc = frog.InRiver && hitsAny(frog, s.Crocs)
	frog.OnTurtle = frog.InRiver && hitsAny(frog, s.Turtles)

	out := s
	out.SnakeBite = s.SnakeBite || hitsAny(frog, s.Snakes)

	// All bodies in a lane share one velocity, so the first is representative.
	// The snake branch keys on the flag as it stood on entry: a bite landed
	// this resolution only freezes the frog, dragging starts next step.
	switch {
	case frog.OnLog:
		frog.Vel = s.Planks[0].Vel
	case frog.OnCroc:
		frog.Vel = s.Crocs[0].Vel
	case frog.OnTurtle:
		frog.Vel = s.Turtles[0].Vel
	case s.SnakeBite:
		frog.Vel = s.Snakes[0].Vel
	default:
		frog.Vel = Vec{}
	}

	out.DoubleJump = s.DoubleJump || powerUp

	newlyFilled := 0
	fill := func(t Body) Body {
		if bodiesCollided(frog, t) && !t.Filled {
			newlyFilled++
			t.Filled = true
		}
		return t
	}
	out.TargetOne = fill(s.TargetOne)
	out.TargetTwo = fill(s.TargetTwo)
	out.TargetThree = fill(s.TargetThree)

	out.Score = s.Score + targetBonus*newlyFilled
	out.HighScore = max(s.HighScore, out.Score)

	out.Reached = frogReached
	out.GameOver = frogCollided

	// Riding motion, distinct from manual moves.
	frog.Pos = FrogWrap(frog.Pos.Add(frog.Vel))
	out.Frog = frog
	return out
}
