package crossing

import "fmt"

// Body is a positioned, collidable entity. Extent is a collision half-extent,
// not a literal size; see bodiesCollided for how it is applied asymmetrically.
type Body struct {
	ID     string
	Pos    Vec
	Extent float64
	Vel    Vec

	// Flags meaningful only on specific bodies. The frog carries the riding
	// and river flags plus TimeOnCroc; targets carry Filled.
	InRiver    bool
	OnLog      bool
	OnCroc     bool
	OnTurtle   bool
	Filled     bool
	TimeOnCroc int
}

// laneSize is the fixed number of bodies per lane for the life of a process.
const laneSize = 4

// Lane is one row of moving obstacles or platforms. It is a plain array so
// that copying a State copies the lane by value; no lane is ever shared
// between two states by reference.
type Lane [laneSize]Body

// State is the full game snapshot. Every transform in this package returns a
// new State; nothing is mutated in place.
type State struct {
	Frog Body

	// FrogCount counts completed rounds and names the "ghost" frog left on a
	// reached target, so it only ever grows.
	FrogCount int

	Cars    Lane
	Buses   Lane
	Planks  Lane
	Crocs   Lane
	Snakes  Lane
	Turtles Lane

	TargetOne   Body
	TargetTwo   Body
	TargetThree Body

	JumpPower Body

	DoubleJump  bool
	SnakeBite   bool
	Reached     bool
	LevelBeaten bool
	GameOver    bool
	Restart     bool

	// Removables lists ids of visual elements the renderer must retire.
	// Append-only within a level; only reset paths replace it.
	Removables []string

	Time      float64
	Level     int
	Score     int
	HighScore int

	RNG RNG
}

// Collision half-extents per entity kind.
const (
	frogExtent    = 15
	carExtent     = 20
	busExtent     = 35
	plankExtent   = 40
	crocExtent    = 40
	turtleExtent  = 25
	snakeExtent   = 30
	targetExtent  = 17
	powerupExtent = 10
)

// Base layout rows and starting motion. Lane speeds ramp by 0.2 per level.
const (
	frogStartX, frogStartY = 285, 560
	targetRowY             = 60

	carRowY    = 520
	snakeRowY  = 480
	busRowY    = 440
	plankRowY  = 240
	crocRowY   = 160
	turtleRowY = 100

	laneSpacing = 150

	initialSeed = 7
)

// Target columns sit centered over the three bank gaps.
var targetColumns = [3]float64{117, 302, 477}

func newLane(prefix string, offsetX, y, extent, velX float64) Lane {
	var lane Lane
	for i := range lane {
		lane[i] = Body{
			ID:     fmt.Sprintf("%s-%d", prefix, i),
			Pos:    Vec{X: offsetX + float64(i)*laneSpacing, Y: y},
			Extent: extent,
			Vel:    Vec{X: velX},
		}
	}
	return lane
}

func newTarget(n int) Body {
	return Body{
		ID:     fmt.Sprintf("target-%d", n),
		Pos:    Vec{X: targetColumns[n-1], Y: targetRowY},
		Extent: targetExtent,
	}
}

// NewInitialState builds the canonical starting snapshot: level 1, score 0, a
// fixed entity layout, and the powerup placed by the fixed seed. Reset paths
// call it again rather than keeping a shared mutable default around.
func NewInitialState() State {
	rng := NewRNG(initialSeed)
	return State{
		Frog: Body{
			ID:     "frog",
			Pos:    Vec{X: frogStartX, Y: frogStartY},
			Extent: frogExtent,
		},
		Cars:        newLane("car", 0, carRowY, carExtent, 2),
		Buses:       newLane("bus", 37, busRowY, busExtent, -2),
		Planks:      newLane("plank", 75, plankRowY, plankExtent, 1.5),
		Crocs:       newLane("croc", 112, crocRowY, crocExtent, -1.5),
		Snakes:      newLane("snake", 75, snakeRowY, snakeExtent, 1),
		Turtles:     newLane("turtle", 37, turtleRowY, turtleExtent, -1),
		TargetOne:   newTarget(1),
		TargetTwo:   newTarget(2),
		TargetThree: newTarget(3),
		JumpPower: Body{
			ID:     "jump-power",
			Pos:    powerupPosition(rng),
			Extent: powerupExtent,
		},
		Removables: []string{},
		Level:      1,
		RNG:        rng,
	}
}

// ghostID names the residual frog visual left behind on a reached target.
func ghostID(frogCount int) string {
	return fmt.Sprintf("frog-ghost-%d", frogCount)
}

// appendRemovable returns a fresh slice so no two states alias one backing
// array.
func appendRemovable(ids []string, id string) []string {
	out := make([]string, 0, len(ids)+1)
	out = append(out, ids...)
	return append(out, id)
}
