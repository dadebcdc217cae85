package breakout

import "github.com/vovakirdan/tui-breakout/internal/core"

// Autopilot returns the arena x coordinate to point the paddle at. It keeps
// the paddle under the ball and offsets it so the ball lands on the inner
// zone that sends it toward the nearest live brick. With no brick in sight
// it centers the paddle under the ball.
func Autopilot(s *Session) float64 {
	ball := s.Ball()
	bx := ball.CenterX()

	dx, found := 0.0, false
	for _, b := range s.Bricks().Bricks() {
		if b.Destroyed {
			continue
		}
		d := b.Box.CenterX() - bx
		if !found || core.AbsF(d) < core.AbsF(dx) {
			dx, found = d, true
		}
	}
	if !found {
		return bx
	}

	if core.AbsF(dx) < s.Config().Bricks.Width/2 {
		return bx
	}

	// Middle of the inner zone, measured from the paddle center
	offset := s.Paddle().Width() * 17 / 64
	if dx > 0 {
		return bx - offset
	}
	return bx + offset
}
