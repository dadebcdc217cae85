package breakout

import (
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Outcome is the terminal signal produced by one engine tick.
type Outcome int

const (
	OutcomeNone    Outcome = iota // Ball is in free flight
	OutcomeSkipped                // Geometry not mounted, nothing changed
	OutcomeLost                   // Ball reached the bottom edge
	OutcomeWon                    // Last live brick destroyed this tick
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeSkipped:
		return "skipped"
	case OutcomeLost:
		return "lost"
	case OutcomeWon:
		return "won"
	default:
		return "unknown"
	}
}

// Paddle deflection velocities by zone, outermost first.
const (
	OuterZoneVX  = 3.0
	InnerZoneVX  = 2.0
	CenterZoneVX = 0.0
)

// Thresholds gate the paddle and brick checks to the part of the arena where
// they can matter.
type Thresholds struct {
	PaddleProximity float64 // Paddle is checked once ball bottom >= paddle top - this
	BrickProximity  float64 // Bricks are checked while ball top <= field bottom + this
}

// Frame is everything the engine reads for one tick.
type Frame struct {
	Ball     core.BoundingBox
	Velocity core.Vector2
	Paddle   core.BoundingBox
	Arena    core.BoundingBox
	Field    core.BoundingBox // Brick container
	Bricks   []Brick          // Read only
	Live     int              // Non-destroyed bricks in Bricks
	Thresholds
}

// Hit is a brick destroyed by a tick.
type Hit struct {
	BrickID int
	Points  int
}

// Result is the outcome of one engine tick. Nothing in the frame is mutated;
// callers apply the result with Apply.
type Result struct {
	Velocity core.Vector2
	Ball     core.BoundingBox // Ball box after integration
	Outcome  Outcome
	Hits     []Hit
	Events   []Event
}

// ScoreDelta returns the total points awarded by the tick.
func (r Result) ScoreDelta() int {
	total := 0
	for _, h := range r.Hits {
		total += h.Points
	}
	return total
}

// Step advances the ball by one tick: walls, then paddle, then bricks, then
// integration. It is a pure function of the frame.
func Step(f Frame) Result {
	if f.Arena.IsZero() || f.Paddle.IsZero() || f.Ball.IsZero() || f.Field.IsZero() {
		return Result{Velocity: f.Velocity, Ball: f.Ball, Outcome: OutcomeSkipped}
	}

	ball := f.Ball
	v := f.Velocity

	// Walls
	if ball.Left <= 0 || ball.Right >= f.Arena.Width() {
		v.X = -v.X
	}
	if ball.Top <= 0 {
		v.Y = -v.Y
	}
	if ball.Bottom >= f.Arena.Height() {
		return Result{
			Velocity: v,
			Ball:     ball,
			Outcome:  OutcomeLost,
			Events:   []Event{{Kind: EventRoundLost, BrickID: -1}},
		}
	}

	// Paddle
	if ball.Bottom >= f.Paddle.Top-f.PaddleProximity {
		if v.Y > 0 && ball.Overlaps(f.Paddle) {
			v.Y = -v.Y
			v.X = PaddleDeflection(ball.CenterX(), f.Paddle)
		}
	}

	res := Result{Outcome: OutcomeNone}

	// Bricks
	if ball.Top <= f.Field.Bottom+f.BrickProximity {
		colliding := CollidingBricks(ball, f.Bricks)
		if len(colliding) > 0 {
			primary := f.Bricks[PrimaryBrick(ball, f.Bricks, colliding)].Box

			// A fast ball can be deep inside the brick by now. If it was
			// already touching one tick ago, that position tells the side.
			probe := ball
			if prev := ball.Translate(-f.Velocity.X, -f.Velocity.Y); prev.Overlaps(primary) {
				probe = prev
			}
			v = Deflect(v, ImpactSide(probe, primary))

			for _, idx := range colliding {
				b := f.Bricks[idx]
				res.Hits = append(res.Hits, Hit{BrickID: b.ID, Points: b.Points})
				res.Events = append(res.Events, Event{Kind: EventBrickDestroyed, BrickID: b.ID, Points: b.Points})
			}
			if f.Live-len(colliding) <= 0 {
				res.Outcome = OutcomeWon
				res.Events = append(res.Events, Event{Kind: EventRoundWon, BrickID: -1})
			}
		}
	}

	res.Velocity = v
	res.Ball = ball.Translate(v.X, v.Y)
	return res
}

// PaddleDeflection returns the new horizontal velocity for a ball whose
// center is at x when it bounces off paddle.
//
// The paddle is split into five zones around its center P:
//
//	| outer | inner |     center     | inner | outer |
//	A       B       C       P        D       E       F
//
// C and D sit width/8 from P, B is a quarter of the way from A to C and E a
// quarter of the way from F to D. C and D belong to the center zone, B and E
// to the outer zones.
func PaddleDeflection(x float64, paddle core.BoundingBox) float64 {
	a, f := paddle.Left, paddle.Right
	p := paddle.CenterX()
	c := p - paddle.Width()/8
	d := p + paddle.Width()/8
	b := a + (c-a)/4
	e := f - (f-d)/4

	switch {
	case x <= b:
		return -OuterZoneVX
	case x < c:
		return -InnerZoneVX
	case x <= d:
		return CenterZoneVX
	case x < e:
		return InnerZoneVX
	default:
		return OuterZoneVX
	}
}

// CollidingBricks returns the indices of live bricks overlapping ball, in
// brick order. Bricks with an unmounted (zero) box are ignored.
func CollidingBricks(ball core.BoundingBox, bricks []Brick) []int {
	var out []int
	for i, b := range bricks {
		if b.Destroyed || b.Box.IsZero() {
			continue
		}
		if ball.Overlaps(b.Box) {
			out = append(out, i)
		}
	}
	return out
}

// PrimaryBrick picks the brick that decides the bounce: the one with the
// widest horizontal overlap with ball. Ties go to the earliest index.
func PrimaryBrick(ball core.BoundingBox, bricks []Brick, colliding []int) int {
	best := colliding[0]
	bestOverlap := ball.OverlapWidth(bricks[best].Box)
	for _, idx := range colliding[1:] {
		if o := ball.OverlapWidth(bricks[idx].Box); o > bestOverlap {
			best, bestOverlap = idx, o
		}
	}
	return best
}

// Side is the face of a brick a ball struck.
type Side int

const (
	SideTop Side = iota
	SideBottom
	SideLeft
	SideRight
	SideCorner // A vertical and a horizontal face tie
)

// String returns a human-readable name for the side.
func (s Side) String() string {
	switch s {
	case SideTop:
		return "top"
	case SideBottom:
		return "bottom"
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	case SideCorner:
		return "corner"
	default:
		return "unknown"
	}
}

// ImpactSide attributes a hit to the brick face nearest the matching ball edge.
func ImpactSide(ball, brick core.BoundingBox) Side {
	top := core.AbsF(ball.Bottom - brick.Top)
	bottom := core.AbsF(ball.Top - brick.Bottom)
	left := core.AbsF(ball.Right - brick.Left)
	right := core.AbsF(ball.Left - brick.Right)

	vert, vertSide := top, SideTop
	if bottom < vert {
		vert, vertSide = bottom, SideBottom
	}
	horiz, horizSide := left, SideLeft
	if right < horiz {
		horiz, horizSide = right, SideRight
	}

	switch {
	case vert == horiz:
		return SideCorner
	case vert < horiz:
		return vertSide
	default:
		return horizSide
	}
}

// Deflect returns v after bouncing off the given side. A corner hit sends the
// ball straight back vertically.
func Deflect(v core.Vector2, side Side) core.Vector2 {
	switch side {
	case SideTop, SideBottom:
		v.Y = -v.Y
	case SideLeft, SideRight:
		v.X = -v.X
	case SideCorner:
		v.Y = -v.Y
		v.X = 0
	}
	return v
}

// Coast moves a ball after the round is won. It reflects off all four walls
// and never loses.
func Coast(ball core.BoundingBox, v core.Vector2, arena core.BoundingBox) Result {
	if arena.IsZero() || ball.IsZero() {
		return Result{Velocity: v, Ball: ball, Outcome: OutcomeSkipped}
	}
	if (ball.Left <= 0 && v.X < 0) || (ball.Right >= arena.Width() && v.X > 0) {
		v.X = -v.X
	}
	if (ball.Top <= 0 && v.Y < 0) || (ball.Bottom >= arena.Height() && v.Y > 0) {
		v.Y = -v.Y
	}
	return Result{Velocity: v, Ball: ball.Translate(v.X, v.Y), Outcome: OutcomeNone}
}

// Decay applies one slowdown step. It reports true once both axes are below
// epsilon, in which case v is returned unchanged.
func Decay(v core.Vector2, factor, epsilon float64) (core.Vector2, bool) {
	if AtRest(v, epsilon) {
		return v, true
	}
	v = v.Scale(factor)
	return v, AtRest(v, epsilon)
}

// AtRest reports whether both velocity components are below epsilon.
func AtRest(v core.Vector2, epsilon float64) bool {
	return core.AbsF(v.X) < epsilon && core.AbsF(v.Y) < epsilon
}

// Apply commits a result's brick and score effects to the set and store.
// Hits on bricks that are already destroyed are ignored.
func Apply(res Result, bricks *BrickSet, store *Store) {
	for _, h := range res.Hits {
		if bricks.Destroy(h.BrickID) {
			store.AddScore(h.Points)
		}
	}
}
