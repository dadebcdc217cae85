package breakout

import (
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// PaddleController maps player input to a paddle position. It only knows
// the arena width and the key step; it has no notion of rounds or collisions.
type PaddleController struct {
	ArenaWidth float64
	StepSize   float64
}

// NewPaddleController creates a controller for an arena of the given width.
func NewPaddleController(arenaWidth, step float64) PaddleController {
	return PaddleController{ArenaWidth: arenaWidth, StepSize: step}
}

// Nudge moves the paddle one step left or right and returns its new left edge.
// Other actions leave it in place.
func (c PaddleController) Nudge(p *core.Element, a core.Action) float64 {
	if p == nil {
		return 0
	}
	switch a {
	case core.ActionLeft:
		return c.place(p, p.Left-c.StepSize)
	case core.ActionRight:
		return c.place(p, p.Left+c.StepSize)
	}
	return p.Left
}

// Point centers the paddle under an arena x coordinate and returns its new
// left edge.
func (c PaddleController) Point(p *core.Element, x float64) float64 {
	if p == nil {
		return 0
	}
	return c.place(p, x-p.Width/2)
}

func (c PaddleController) place(p *core.Element, left float64) float64 {
	p.Left = core.ClampF(left, 0, c.ArenaWidth-p.Width)
	return p.Left
}
