package crossing

import (
	"encoding/binary"
	"hash/fnv"
)

// Snapshot flattens a State into primitive types for determinism tests and
// replay comparison. Float coordinates are stored in thousandths so equal
// states always flatten to identical integers.
type Snapshot struct {
	FrogX, FrogY   int64
	FrogCount      int
	TimeOnCroc     int
	Level          int
	Score          int
	HighScore      int
	Time           int64
	RNGState       int64
	DoubleJump     bool
	SnakeBite      bool
	Reached        bool
	LevelBeaten    bool
	GameOver       bool
	Restart        bool
	TargetsFilled  [3]bool
	RemovableCount int

	// Lane bodies flattened as x, y, vx, vy per body, lane order
	// cars, buses, planks, crocs, snakes, turtles.
	LaneData []int64
}

func milli(f float64) int64 {
	return int64(f * 1000)
}

func flattenLane(dst []int64, lane Lane) []int64 {
	for _, b := range lane {
		dst = append(dst, milli(b.Pos.X), milli(b.Pos.Y), milli(b.Vel.X), milli(b.Vel.Y))
	}
	return dst
}

// Snapshot captures the current state.
func (s State) Snapshot() Snapshot {
	data := make([]int64, 0, 6*laneSize*4)
	data = flattenLane(data, s.Cars)
	data = flattenLane(data, s.Buses)
	data = flattenLane(data, s.Planks)
	data = flattenLane(data, s.Crocs)
	data = flattenLane(data, s.Snakes)
	data = flattenLane(data, s.Turtles)

	return Snapshot{
		FrogX:          milli(s.Frog.Pos.X),
		FrogY:          milli(s.Frog.Pos.Y),
		FrogCount:      s.FrogCount,
		TimeOnCroc:     s.Frog.TimeOnCroc,
		Level:          s.Level,
		Score:          s.Score,
		HighScore:      s.HighScore,
		Time:           milli(s.Time),
		RNGState:       s.RNG.State,
		DoubleJump:     s.DoubleJump,
		SnakeBite:      s.SnakeBite,
		Reached:        s.Reached,
		LevelBeaten:    s.LevelBeaten,
		GameOver:       s.GameOver,
		Restart:        s.Restart,
		TargetsFilled:  [3]bool{s.TargetOne.Filled, s.TargetTwo.Filled, s.TargetThree.Filled},
		RemovableCount: len(s.Removables),
		LaneData:       data,
	}
}

// Hash returns a stable hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := fnv.New64a()
	write := func(v int64) {
		var buf [8]byte
		binary.LittleEndian.PutUint64(buf[:], uint64(v))
		h.Write(buf[:])
	}
	writeBool := func(b bool) {
		if b {
			write(1)
		} else {
			write(0)
		}
	}

	write(snap.FrogX)
	write(snap.FrogY)
	write(int64(snap.FrogCount))
	write(int64(snap.TimeOnCroc))
	write(int64(snap.Level))
	write(int64(snap.Score))
	write(int64(snap.HighScore))
	write(snap.Time)
	write(snap.RNGState)
	writeBool(snap.DoubleJump)
	writeBool(snap.SnakeBite)
	writeBool(snap.Reached)
	writeBool(snap.LevelBeaten)
	writeBool(snap.GameOver)
	writeBool(snap.Restart)
	for _, f := range snap.TargetsFilled {
		writeBool(f)
	}
	write(int64(snap.RemovableCount))
	for _, v := range snap.LaneData {
		write(v)
	}
	return h.Sum64()
}
