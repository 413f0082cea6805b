package crossing

import "math"

// LCG parameters (glibc constants). The modulus is 2^31.
const (
	rngModulus    = 1 << 31
	rngMultiplier = 1103515245
	rngIncrement  = 12345
)

// RNG is a seeded linear congruential generator treated as an immutable
// value: advancing it produces a new RNG rather than mutating the receiver.
// It drives only the jump powerup placement, which keeps runs reproducible
// from the initial seed.
type RNG struct {
	State int64
}

// NewRNG returns a generator seeded with the given state.
func NewRNG(seed int64) RNG {
	return RNG{State: seed}
}

// Int returns the next raw output in [0, 2^31).
func (r RNG) Int() int64 {
	return (rngMultiplier*r.State + rngIncrement) % rngModulus
}

// Float returns the next output scaled into [0, 1].
func (r RNG) Float() float64 {
	return float64(r.Int()) / float64(rngModulus-1)
}

// Next returns a new generator advanced by one step.
func (r RNG) Next() RNG {
	return RNG{State: r.Int()}
}

// powerupPosition derives the jump powerup placement from a generator.
// Each placement consumes two raw outputs: one for x, one for y.
func powerupPosition(r RNG) Vec {
	x := math.Round(r.Float() * 600)
	y := math.Round(r.Next().Float()*300 + 200)
	return Vec{X: x, Y: y}
}
