package breakout

import "math"

// Snapshot contains the complete session state for replay and determinism checks.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick            uint64
	Phase           int
	Score           int
	Started         bool
	Won             bool
	Lost            bool
	BallX, BallY    float64 // Ball top-left corner
	VelX, VelY      float64
	PaddleX         float64
	BricksRemaining int
	Pending         int

	// Brick states in ID order, 2 ints each: Destroyed, Hidden
	BrickData []int
}

// Snapshot returns the current session state as a Snapshot.
func (s *Session) Snapshot() Snapshot {
	bricks := s.bricks.Bricks()
	brickData := make([]int, len(bricks)*2)
	for i, b := range bricks {
		if b.Destroyed {
			brickData[i*2] = 1
		}
		if b.Hidden {
			brickData[i*2+1] = 1
		}
	}

	state := s.store.State()
	return Snapshot{
		Tick:            s.ticks,
		Phase:           int(s.phase),
		Score:           state.Score,
		Started:         state.Started,
		Won:             state.Won,
		Lost:            state.Lost,
		BallX:           s.ball.Left,
		BallY:           s.ball.Top,
		VelX:            s.velocity.X,
		VelY:            s.velocity.Y,
		PaddleX:         s.paddle.Left,
		BricksRemaining: s.bricks.Live(),
		Pending:         len(s.pending),
		BrickData:       brickData,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Phase)           //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)           //#nosec G115 -- hash computation
	h = h*31 + boolBit(snap.Started)
	h = h*31 + boolBit(snap.Won)
	h = h*31 + boolBit(snap.Lost)
	h = h*31 + math.Float64bits(snap.BallX)
	h = h*31 + math.Float64bits(snap.BallY)
	h = h*31 + math.Float64bits(snap.VelX)
	h = h*31 + math.Float64bits(snap.VelY)
	h = h*31 + math.Float64bits(snap.PaddleX)
	h = h*31 + uint64(snap.BricksRemaining) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Pending)         //#nosec G115 -- hash computation

	for _, v := range snap.BrickData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	return h
}

func boolBit(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
