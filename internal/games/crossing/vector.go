// Package crossing implements the deterministic simulation core of a
// lane-crossing arcade game: a frog crosses a road of moving vehicles and a
// river of moving platforms to reach one of three targets. The package is
// UI-agnostic; every transform is a pure function from one State value to the
// next, so the whole game is replayable from a seed and an event sequence.
package crossing

import "math"

// Vec is an immutable 2D vector. All operations return new values.
type Vec struct {
	X, Y float64
}

// Add returns the component-wise sum of v and o.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns v scaled by s.
func (v Vec) Scale(s float64) Vec {
	return Vec{X: v.X * s, Y: v.Y * s}
}

// Sub returns v minus o, expressed as the sum with the negated vector.
func (v Vec) Sub(o Vec) Vec {
	return v.Add(o.Scale(-1))
}

// Len returns the Euclidean norm of v.
func (v Vec) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}
