package crossing

// Play-field constants. These are gameplay-significant and shared with any
// compatible renderer, so they are fixed at compile time rather than themed.
const (
	// FieldWidth is the horizontal extent of the play field.
	FieldWidth = 600

	// BankRowY is the river bank row holding the three targets. The frog may
	// only rest on it inside one of the gap columns.
	BankRowY = 80

	// RiverBottomY is the last row counted as river for drowning checks.
	RiverBottomY = 260

	// Vertical dead-zone band for non-player bodies.
	obstacleTopY    = 40
	obstacleBottomY = 560

	// Frog wrap margins.
	frogLeftX   = 30
	frogRightX  = 570
	frogBottomY = 570
)

// Gap columns in the bank row, one per target. The double-jump middle band is
// shifted 5 units left of the normal one; the original game shipped with that
// offset and play balance depends on it, so it is kept.
var (
	normalGaps = [3][2]float64{{100, 135}, {285, 320}, {460, 495}}
	doubleGaps = [3][2]float64{{100, 135}, {280, 315}, {460, 495}}
)

func inGaps(x float64, gaps [3][2]float64) bool {
	for _, g := range gaps {
		if x >= g[0] && x <= g[1] {
			return true
		}
	}
	return false
}

// ObjectWrap re-enters a non-player body at the opposite edge of the field.
// Horizontally the field is a plain torus of width 600; vertically bodies
// re-enter across the 40..560 band.
func ObjectWrap(v Vec) Vec {
	switch {
	case v.X < 0:
		v.X += FieldWidth
	case v.X > FieldWidth:
		v.X -= FieldWidth
	}
	switch {
	case v.Y < obstacleTopY:
		v.Y += 80
	case v.Y > obstacleBottomY:
		v.Y -= 80
	}
	return v
}

// FrogWrap wraps the player at the normal step size. On the bank row the frog
// may stay only directly below a target column; anywhere else on that row it
// is pushed back onto the river.
func FrogWrap(v Vec) Vec {
	switch {
	case v.X < frogLeftX:
		v.X += 585
	case v.X > frogRightX:
		v.X -= 585
	}
	switch {
	case v.Y < BankRowY:
		v.Y += 80
	case v.Y == BankRowY:
		if !inGaps(v.X, normalGaps) {
			v.Y += 60
		}
	case v.Y > frogBottomY:
		v.Y -= 60
	}
	return v
}

// DoubleJumpWrap wraps the player while the jump powerup is active. Steps are
// doubled, so the vertical corrections double as well.
func DoubleJumpWrap(v Vec) Vec {
	switch {
	case v.X < frogLeftX:
		v.X += 585
	case v.X > frogRightX:
		v.X -= 585
	}
	switch {
	case v.Y <= BankRowY:
		if inGaps(v.X, doubleGaps) {
			if v.Y != BankRowY {
				v.Y += 60
			}
		} else {
			v.Y += 120
		}
	case v.Y > frogBottomY:
		v.Y -= 120
	}
	return v
}
