package crossing

import (
	"math"
	"testing"
)

func TestVecAddCommutativeAssociative(t *testing.T) {
	a := Vec{X: 1.5, Y: -2}
	b := Vec{X: 3, Y: 4.25}
	c := Vec{X: -7, Y: 0.5}

	if a.Add(b) != b.Add(a) {
		t.Errorf("Add not commutative: %v vs %v", a.Add(b), b.Add(a))
	}
	if a.Add(b).Add(c) != a.Add(b.Add(c)) {
		t.Errorf("Add not associative")
	}
}

func TestVecSubSelfIsZero(t *testing.T) {
	v := Vec{X: 13, Y: -37}
	if got := v.Sub(v); got != (Vec{}) {
		t.Errorf("v.Sub(v) = %v, want zero", got)
	}
}

func TestVecLen(t *testing.T) {
	if got := (Vec{X: 3, Y: 4}).Len(); got != 5 {
		t.Errorf("Len(3,4) = %v, want 5", got)
	}
	if got := (Vec{X: 9, Y: -2}).Scale(0).Len(); got != 0 {
		t.Errorf("Len(scale(v,0)) = %v, want 0", got)
	}
}

func TestObjectWrapEdges(t *testing.T) {
	tests := []struct {
		name string
		in   Vec
		want Vec
	}{
		{"left exit", Vec{X: -5, Y: 100}, Vec{X: 595, Y: 100}},
		{"right exit", Vec{X: 601, Y: 480}, Vec{X: 1, Y: 480}},
		{"top band", Vec{X: 300, Y: 20}, Vec{X: 300, Y: 100}},
		{"bottom band", Vec{X: 300, Y: 580}, Vec{X: 300, Y: 500}},
		{"interior unchanged", Vec{X: 300, Y: 300}, Vec{X: 300, Y: 300}},
	}
	for _, tt := range tests {
		if got := ObjectWrap(tt.in); got != tt.want {
			t.Errorf("%s: ObjectWrap(%v) = %v, want %v", tt.name, tt.in, got, tt.want)
		}
	}
}

func TestObjectWrapStaysInField(t *testing.T) {
	for x := -10; x <= 610; x += 7 {
		for y := 20; y <= 580; y += 9 {
			got := ObjectWrap(Vec{X: float64(x), Y: float64(y)})
			if got.X < 0 || got.X > FieldWidth {
				t.Fatalf("ObjectWrap(%d,%d).X = %v out of [0,600]", x, y, got.X)
			}
			if got.Y < 40 || got.Y > 560 {
				t.Fatalf("ObjectWrap(%d,%d).Y = %v out of [40,560]", x, y, got.Y)
			}
		}
	}
}

func TestFrogWrapHorizontal(t *testing.T) {
	if got := FrogWrap(Vec{X: 20, Y: 300}); got.X != 605 {
		t.Errorf("left wrap: got X=%v, want 605", got.X)
	}
	if got := FrogWrap(Vec{X: 580, Y: 300}); got.X != -5 {
		t.Errorf("right wrap: got X=%v, want -5", got.X)
	}
}

func TestFrogWrapBankRow(t *testing.T) {
	// On the bank row the frog may rest only inside a gap column.
	gaps := []float64{100, 135, 300, 460, 495}
	for _, x := range gaps {
		if got := FrogWrap(Vec{X: x, Y: 80}); got.Y != 80 {
			t.Errorf("gap x=%v: got Y=%v, want 80", x, got.Y)
		}
	}
	blocked := []float64{50, 200, 250, 400, 550}
	for _, x := range blocked {
		if got := FrogWrap(Vec{X: x, Y: 80}); got.Y != 140 {
			t.Errorf("blocked x=%v: got Y=%v, want 140", x, got.Y)
		}
	}
	// Above the bank and below the field the frog bounces back.
	if got := FrogWrap(Vec{X: 300, Y: 40}); got.Y != 120 {
		t.Errorf("above bank: got Y=%v, want 120", got.Y)
	}
	if got := FrogWrap(Vec{X: 300, Y: 575}); got.Y != 515 {
		t.Errorf("below field: got Y=%v, want 515", got.Y)
	}
}

func TestDoubleJumpWrapBankRow(t *testing.T) {
	// Resting on a gap stays put.
	if got := DoubleJumpWrap(Vec{X: 300, Y: 80}); got.Y != 80 {
		t.Errorf("gap rest: got Y=%v, want 80", got.Y)
	}
	// Overshooting into a gap from above falls back onto the gap row band.
	if got := DoubleJumpWrap(Vec{X: 300, Y: 20}); got.Y != 80 {
		t.Errorf("gap overshoot: got Y=%v, want 80", got.Y)
	}
	// Outside a gap the doubled bounce applies.
	if got := DoubleJumpWrap(Vec{X: 200, Y: 80}); got.Y != 200 {
		t.Errorf("blocked double bounce: got Y=%v, want 200", got.Y)
	}
	if got := DoubleJumpWrap(Vec{X: 300, Y: 575}); got.Y != 455 {
		t.Errorf("bottom double bounce: got Y=%v, want 455", got.Y)
	}
}

func TestMiddleGapDiffersBetweenWraps(t *testing.T) {
	// The middle gap band sits at 285..320 for normal jumps but 280..315 for
	// double jumps. x=318 is a gap for one and a wall for the other; play
	// balance depends on the offset staying put.
	if got := FrogWrap(Vec{X: 318, Y: 80}); got.Y != 80 {
		t.Errorf("normal wrap at x=318: got Y=%v, want 80", got.Y)
	}
	if got := DoubleJumpWrap(Vec{X: 318, Y: 80}); got.Y != 200 {
		t.Errorf("double wrap at x=318: got Y=%v, want 200", got.Y)
	}
	if got := DoubleJumpWrap(Vec{X: 282, Y: 80}); got.Y != 80 {
		t.Errorf("double wrap at x=282: got Y=%v, want 80", got.Y)
	}
	if got := FrogWrap(Vec{X: 282, Y: 80}); got.Y != 140 {
		t.Errorf("normal wrap at x=282: got Y=%v, want 140", got.Y)
	}
}

func TestWrapPreservesX(t *testing.T) {
	for _, x := range []float64{100, 250, 300, 500} {
		if got := FrogWrap(Vec{X: x, Y: 300}); math.Abs(got.X-x) > 0 {
			t.Errorf("FrogWrap changed in-field X %v to %v", x, got.X)
		}
	}
}
