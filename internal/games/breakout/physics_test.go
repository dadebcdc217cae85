package breakout

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

func box(left, right, top, bottom float64) core.BoundingBox {
	return core.BoundingBox{Left: left, Right: right, Top: top, Bottom: bottom}
}

// testFrame builds a frame in an 800x600 arena with the paddle parked in the
// bottom left corner and the brick field in the top 100 pixels.
func testFrame(ball core.BoundingBox, v core.Vector2, bricks ...core.BoundingBox) Frame {
	set := NewBrickSetFromBoxes(box(0, 800, 0, 100), 10, bricks...)
	return Frame{
		Ball:       ball,
		Velocity:   v,
		Paddle:     box(0, 100, 580, 590),
		Arena:      box(0, 800, 0, 600),
		Field:      set.Field(),
		Bricks:     set.Bricks(),
		Live:       set.Live(),
		Thresholds: Thresholds{PaddleProximity: 10, BrickProximity: 10},
	}
}

func TestStepBoundaries(t *testing.T) {
	tests := []struct {
		name     string
		ball     core.BoundingBox
		velocity core.Vector2
		expected core.Vector2
	}{
		{"right wall", box(781, 801, 100, 120), core.Vector2{X: 2, Y: -2}, core.Vector2{X: -2, Y: -2}},
		{"right wall touching", box(780, 800, 300, 320), core.Vector2{X: 3, Y: 1}, core.Vector2{X: -3, Y: 1}},
		{"left wall", box(0, 20, 300, 320), core.Vector2{X: -3, Y: 1}, core.Vector2{X: 3, Y: 1}},
		{"top wall", box(300, 320, 0, 20), core.Vector2{X: 1, Y: -4}, core.Vector2{X: 1, Y: 4}},
		{"top left corner", box(-1, 19, -1, 19), core.Vector2{X: -2, Y: -2}, core.Vector2{X: 2, Y: 2}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res := Step(testFrame(tc.ball, tc.velocity))

			if res.Velocity != tc.expected {
				t.Errorf("Velocity = %+v, expected %+v", res.Velocity, tc.expected)
			}
			if res.Outcome != OutcomeNone {
				t.Errorf("Outcome = %v, expected none", res.Outcome)
			}
			if want := tc.ball.Translate(tc.expected.X, tc.expected.Y); res.Ball != want {
				t.Errorf("Ball = %+v, expected %+v", res.Ball, want)
			}
		})
	}
}

func TestStepLost(t *testing.T) {
	tests := []struct {
		name     string
		ball     core.BoundingBox
		velocity core.Vector2
		expected core.Vector2
	}{
		{"bottom edge", box(300, 315, 585, 600), core.Vector2{X: 2, Y: 4}, core.Vector2{X: 2, Y: 4}},
		{"below arena", box(300, 315, 590, 605), core.Vector2{X: 2, Y: 4}, core.Vector2{X: 2, Y: 4}},
		{"bottom left corner", box(-1, 14, 590, 605), core.Vector2{X: -2, Y: 4}, core.Vector2{X: 2, Y: 4}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res := Step(testFrame(tc.ball, tc.velocity))

			if res.Outcome != OutcomeLost {
				t.Fatalf("Outcome = %v, expected lost", res.Outcome)
			}
			if res.Velocity != tc.expected {
				t.Errorf("Velocity = %+v, expected %+v", res.Velocity, tc.expected)
			}
			if res.Ball != tc.ball {
				t.Errorf("Ball moved to %+v on a lost tick", res.Ball)
			}
			if len(res.Hits) != 0 {
				t.Errorf("Lost tick destroyed bricks: %v", res.Hits)
			}
			if len(res.Events) != 1 || res.Events[0].Kind != EventRoundLost {
				t.Errorf("Events = %v, expected a single round-lost", res.Events)
			}
		})
	}
}

func TestStepPaddleCenterHit(t *testing.T) {
	f := testFrame(box(200, 220, 550, 570), core.Vector2{X: 2, Y: 2})
	f.Paddle = box(150, 250, 570, 580)

	res := Step(f)

	if want := (core.Vector2{X: 0, Y: -2}); res.Velocity != want {
		t.Errorf("Velocity = %+v, expected %+v", res.Velocity, want)
	}
}

func TestStepPaddleOverwritesIncomingX(t *testing.T) {
	for _, vx := range []float64{-5, -1, 0, 1, 5} {
		f := testFrame(box(140, 155, 560, 575), core.Vector2{X: vx, Y: 3})
		f.Paddle = box(150, 250, 570, 580)

		res := Step(f)

		if want := (core.Vector2{X: -3, Y: -3}); res.Velocity != want {
			t.Errorf("incoming vx %v: Velocity = %+v, expected %+v", vx, res.Velocity, want)
		}
	}
}

func TestStepPaddleIgnoredWhenRising(t *testing.T) {
	f := testFrame(box(200, 220, 565, 580), core.Vector2{X: 2, Y: -2})
	f.Paddle = box(150, 250, 570, 580)

	res := Step(f)

	if want := (core.Vector2{X: 2, Y: -2}); res.Velocity != want {
		t.Errorf("Velocity = %+v, expected %+v", res.Velocity, want)
	}
}

// The paddle deflection replaces the wall flip, so a ball on the right wall
// that lands on the right outer zone keeps heading into the wall.
func TestStepPaddleOverridesWallFlip(t *testing.T) {
	f := testFrame(box(785, 800, 560, 575), core.Vector2{X: 4, Y: 4})
	f.Paddle = box(700, 800, 575, 585)

	res := Step(f)

	if want := (core.Vector2{X: OuterZoneVX, Y: -4}); res.Velocity != want {
		t.Errorf("Velocity = %+v, expected %+v", res.Velocity, want)
	}
	if res.Ball.Right != 803 {
		t.Errorf("Ball.Right = %v, expected 803", res.Ball.Right)
	}

	// Next tick the wall flips it back with nothing to override it
	f.Ball, f.Velocity = res.Ball, res.Velocity
	res = Step(f)
	if res.Velocity.X != -OuterZoneVX || res.Ball.Right != 800 {
		t.Errorf("second tick: Velocity = %+v, Ball.Right = %v", res.Velocity, res.Ball.Right)
	}
}

func TestPaddleDeflectionZones(t *testing.T) {
	// A=150 B=159.375 C=187.5 P=200 D=212.5 E=240.625 F=250
	paddle := box(150, 250, 570, 580)

	tests := []struct {
		x        float64
		expected float64
	}{
		{145, -3}, // Overhanging the left edge
		{150, -3},
		{159.375, -3},
		{160, -2},
		{187.4, -2},
		{187.5, 0},
		{200, 0},
		{212.5, 0},
		{213, 2},
		{240.6, 2},
		{240.625, 3},
		{250, 3},
		{255, 3},
	}

	for _, tc := range tests {
		if got := PaddleDeflection(tc.x, paddle); got != tc.expected {
			t.Errorf("PaddleDeflection(%v) = %v, expected %v", tc.x, got, tc.expected)
		}
	}
}

func TestPaddleDeflectionSymmetric(t *testing.T) {
	paddle := box(0, 100, 0, 10)
	for x := 0.0; x <= 50; x += 0.5 {
		left := PaddleDeflection(x, paddle)
		right := PaddleDeflection(100-x, paddle)
		if left != -right {
			t.Errorf("zone at %v = %v, mirrored zone = %v", x, left, right)
		}
	}
}

func TestStepBrickBottomHit(t *testing.T) {
	f := testFrame(box(200, 220, 70, 90), core.Vector2{X: 2, Y: -2},
		box(200, 260, 40, 70),
		box(500, 560, 40, 70),
	)

	res := Step(f)

	if want := (core.Vector2{X: 2, Y: 2}); res.Velocity != want {
		t.Errorf("Velocity = %+v, expected %+v", res.Velocity, want)
	}
	if len(res.Hits) != 1 || res.Hits[0].BrickID != 0 {
		t.Fatalf("Hits = %v, expected brick 0", res.Hits)
	}
	if res.ScoreDelta() != 10 {
		t.Errorf("ScoreDelta() = %d, expected 10", res.ScoreDelta())
	}
	if res.Outcome != OutcomeNone {
		t.Errorf("Outcome = %v, expected none with a brick left", res.Outcome)
	}
	if want := box(202, 222, 72, 92); res.Ball != want {
		t.Errorf("Ball = %+v, expected %+v", res.Ball, want)
	}

	set := NewBrickSetFromBoxes(f.Field, 10, box(200, 260, 40, 70), box(500, 560, 40, 70))
	store := NewStore()
	store.Start()
	Apply(res, set, store)

	if b, _ := set.At(0); !b.Destroyed {
		t.Error("brick 0 should be destroyed")
	}
	if set.Live() != 1 {
		t.Errorf("Live() = %d, expected 1", set.Live())
	}
	if store.State().Score != 10 {
		t.Errorf("Score = %d, expected 10", store.State().Score)
	}
}

func TestStepTwoBricks(t *testing.T) {
	f := testFrame(box(150, 165, 70, 85), core.Vector2{X: 0, Y: -3},
		box(100, 160, 40, 70),
		box(165, 225, 40, 70),
		box(600, 660, 40, 70),
	)

	res := Step(f)

	if want := (core.Vector2{X: 0, Y: 3}); res.Velocity != want {
		t.Errorf("Velocity = %+v, expected %+v", res.Velocity, want)
	}
	if len(res.Hits) != 2 {
		t.Fatalf("Hits = %v, expected both overlapping bricks", res.Hits)
	}
	if res.ScoreDelta() != 20 {
		t.Errorf("ScoreDelta() = %d, expected 20", res.ScoreDelta())
	}
}

func TestPrimaryBrick(t *testing.T) {
	bricks := NewBrickSetFromBoxes(box(0, 800, 0, 100), 10,
		box(100, 160, 40, 70),
		box(165, 225, 40, 70),
		box(230, 290, 40, 70),
	).Bricks()

	tests := []struct {
		name      string
		ball      core.BoundingBox
		colliding []int
		expected  int
	}{
		{"first wider", box(150, 165, 70, 85), []int{0, 1}, 0},
		{"second wider", box(158, 173, 70, 85), []int{0, 1}, 1},
		{"tie goes to first", box(155, 170, 70, 85), []int{0, 1}, 0},
		{"three bricks", box(150, 240, 70, 85), []int{0, 1, 2}, 1},
		{"single", box(150, 165, 70, 85), []int{0}, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := PrimaryBrick(tc.ball, bricks, tc.colliding); got != tc.expected {
				t.Errorf("PrimaryBrick() = %d, expected %d", got, tc.expected)
			}
		})
	}
}

func TestStepUsesPreviousBoxForSide(t *testing.T) {
	brick := box(200, 260, 40, 70)

	// Previous box (203..218) overlaps and sits closest to the left face
	res := Step(testFrame(box(215, 230, 45, 60), core.Vector2{X: 12, Y: 0}, brick, box(600, 660, 40, 70)))
	if want := (core.Vector2{X: -12, Y: 0}); res.Velocity != want {
		t.Errorf("tunnelled ball: Velocity = %+v, expected %+v", res.Velocity, want)
	}

	// Previous box is below the brick, so the current box decides: top face
	res = Step(testFrame(box(215, 230, 45, 60), core.Vector2{X: 2, Y: -30}, brick, box(600, 660, 40, 70)))
	if want := (core.Vector2{X: 2, Y: 30}); res.Velocity != want {
		t.Errorf("entering ball: Velocity = %+v, expected %+v", res.Velocity, want)
	}
}

func TestStepCornerHit(t *testing.T) {
	// Bottom and right faces are both at distance 0
	res := Step(testFrame(box(260, 275, 70, 85), core.Vector2{X: -2, Y: -2},
		box(200, 260, 40, 70),
		box(600, 660, 40, 70),
	))

	if want := (core.Vector2{X: 0, Y: 2}); res.Velocity != want {
		t.Errorf("Velocity = %+v, expected %+v", res.Velocity, want)
	}
}

func TestStepLastBrickWins(t *testing.T) {
	res := Step(testFrame(box(200, 220, 70, 90), core.Vector2{X: 2, Y: -2}, box(200, 260, 40, 70)))

	if res.Outcome != OutcomeWon {
		t.Fatalf("Outcome = %v, expected won", res.Outcome)
	}

	var won, lost int
	for _, e := range res.Events {
		switch e.Kind {
		case EventRoundWon:
			won++
		case EventRoundLost:
			lost++
		}
	}
	if won != 1 || lost != 0 {
		t.Errorf("Events = %v, expected exactly one round-won and no round-lost", res.Events)
	}
}

func TestStepFreeFlightIsIdempotent(t *testing.T) {
	bricks := []core.BoundingBox{box(200, 260, 40, 70), box(500, 560, 40, 70)}
	balls := []core.BoundingBox{
		box(400, 415, 300, 315),
		box(100, 115, 120, 135),
		box(700, 715, 450, 465),
		box(300, 315, 75, 90),
	}
	velocities := []core.Vector2{{X: 3, Y: -4}, {X: -2, Y: 2}, {X: 0, Y: 4}}

	for _, ball := range balls {
		for _, v := range velocities {
			f := testFrame(ball, v, bricks...)
			res := Step(f)

			if res.Velocity != v {
				t.Errorf("ball %+v: Velocity = %+v, expected unchanged %+v", ball, res.Velocity, v)
			}
			if want := ball.Translate(v.X, v.Y); res.Ball != want {
				t.Errorf("ball %+v: Ball = %+v, expected %+v", ball, res.Ball, want)
			}
			if len(res.Hits) != 0 || len(res.Events) != 0 || res.Outcome != OutcomeNone {
				t.Errorf("ball %+v: unexpected effects %+v", ball, res)
			}
			for _, b := range f.Bricks {
				if b.Destroyed {
					t.Errorf("ball %+v: brick %d mutated", ball, b.ID)
				}
			}
		}
	}
}

func TestStepBricksBelowFieldAreGated(t *testing.T) {
	// A brick outside the field is never checked: the ball is far below it
	res := Step(testFrame(box(400, 415, 310, 325), core.Vector2{X: 1, Y: -1}, box(400, 460, 300, 330)))

	if len(res.Hits) != 0 {
		t.Errorf("Hits = %v, expected none below the brick field", res.Hits)
	}
}

func TestStepIgnoresDestroyedBricks(t *testing.T) {
	f := testFrame(box(200, 220, 70, 90), core.Vector2{X: 2, Y: -2}, box(200, 260, 40, 70), box(500, 560, 40, 70))
	bricks := append([]Brick(nil), f.Bricks...)
	bricks[0].Destroyed = true
	f.Bricks = bricks
	f.Live = 1

	res := Step(f)

	if len(res.Hits) != 0 {
		t.Errorf("Hits = %v, expected destroyed brick to be skipped", res.Hits)
	}
	if want := (core.Vector2{X: 2, Y: -2}); res.Velocity != want {
		t.Errorf("Velocity = %+v, expected %+v", res.Velocity, want)
	}
}

func TestStepSkipsUnmountedGeometry(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Frame)
	}{
		{"arena", func(f *Frame) { f.Arena = core.BoundingBox{} }},
		{"paddle", func(f *Frame) { f.Paddle = core.BoundingBox{} }},
		{"ball", func(f *Frame) { f.Ball = core.BoundingBox{} }},
		{"field", func(f *Frame) { f.Field = core.BoundingBox{} }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			// Would be a right-wall bounce and a lost ball if processed
			f := testFrame(box(790, 805, 590, 605), core.Vector2{X: 2, Y: 2})
			tc.mutate(&f)

			res := Step(f)

			if res.Outcome != OutcomeSkipped {
				t.Errorf("Outcome = %v, expected skipped", res.Outcome)
			}
			if res.Velocity != f.Velocity || res.Ball != f.Ball {
				t.Errorf("skipped tick changed state: %+v", res)
			}
		})
	}
}

func TestImpactSide(t *testing.T) {
	brick := box(200, 260, 40, 70)

	tests := []struct {
		name     string
		ball     core.BoundingBox
		expected Side
	}{
		{"top", box(220, 235, 26, 41), SideTop},
		{"bottom", box(220, 235, 69, 84), SideBottom},
		{"left", box(186, 201, 48, 63), SideLeft},
		{"right", box(259, 274, 48, 63), SideRight},
		{"corner", box(185, 200, 25, 40), SideCorner},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ImpactSide(tc.ball, brick); got != tc.expected {
				t.Errorf("ImpactSide() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestDeflect(t *testing.T) {
	v := core.Vector2{X: 3, Y: -4}

	tests := []struct {
		side     Side
		expected core.Vector2
	}{
		{SideTop, core.Vector2{X: 3, Y: 4}},
		{SideBottom, core.Vector2{X: 3, Y: 4}},
		{SideLeft, core.Vector2{X: -3, Y: -4}},
		{SideRight, core.Vector2{X: -3, Y: -4}},
		{SideCorner, core.Vector2{X: 0, Y: 4}},
	}

	for _, tc := range tests {
		if got := Deflect(v, tc.side); got != tc.expected {
			t.Errorf("Deflect(%v) = %+v, expected %+v", tc.side, got, tc.expected)
		}
	}
}

func TestCoastNeverLoses(t *testing.T) {
	arena := box(0, 800, 0, 600)

	res := Coast(box(300, 315, 590, 605), core.Vector2{X: 1, Y: 2}, arena)
	if res.Outcome != OutcomeNone {
		t.Errorf("Outcome = %v, expected none", res.Outcome)
	}
	if want := (core.Vector2{X: 1, Y: -2}); res.Velocity != want {
		t.Errorf("Velocity = %+v, expected %+v", res.Velocity, want)
	}

	// Already moving away from the wall: no second flip
	res = Coast(box(0, 15, 300, 315), core.Vector2{X: 2, Y: 0}, arena)
	if want := (core.Vector2{X: 2, Y: 0}); res.Velocity != want {
		t.Errorf("Velocity = %+v, expected %+v", res.Velocity, want)
	}
}

func TestDecay(t *testing.T) {
	v, rest := Decay(core.Vector2{X: 4, Y: -4}, 0.9, 0.1)
	if rest {
		t.Error("4 px/tick should not be at rest")
	}
	if math.Abs(v.X-3.6) > 1e-9 || math.Abs(v.Y+3.6) > 1e-9 {
		t.Errorf("Decay() = %+v, expected {3.6 -3.6}", v)
	}

	steps := 0
	for !rest {
		v, rest = Decay(v, 0.9, 0.1)
		steps++
		if steps > 1000 {
			t.Fatal("decay never came to rest")
		}
	}
	if !AtRest(v, 0.1) {
		t.Errorf("final velocity %+v not at rest", v)
	}

	still := core.Vector2{X: 0.05, Y: -0.05}
	if got, ok := Decay(still, 0.9, 0.1); !ok || got != still {
		t.Errorf("Decay(at rest) = %+v, %v; expected unchanged and true", got, ok)
	}
}

func TestApplyCountsEachBrickOnce(t *testing.T) {
	set := NewBrickSetFromBoxes(box(0, 800, 0, 100), 10, box(200, 260, 40, 70), box(300, 360, 40, 70))
	store := NewStore()
	store.Start()

	res := Result{Hits: []Hit{{BrickID: 0, Points: 10}, {BrickID: 0, Points: 10}, {BrickID: 1, Points: 10}}}
	Apply(res, set, store)

	if set.Live() != 0 {
		t.Errorf("Live() = %d, expected 0", set.Live())
	}
	if store.State().Score != 20 {
		t.Errorf("Score = %d, expected 20", store.State().Score)
	}
}
