package breakout

import (
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

func TestPaddleControllerNudge(t *testing.T) {
	c := NewPaddleController(800, 60)

	tests := []struct {
		name     string
		left     float64
		action   core.Action
		expected float64
	}{
		{"right", 350, core.ActionRight, 410},
		{"left", 350, core.ActionLeft, 290},
		{"clamped left", 30, core.ActionLeft, 0},
		{"clamped right", 680, core.ActionRight, 700},
		{"at right edge", 700, core.ActionRight, 700},
		{"other action", 350, core.ActionStart, 350},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := &core.Element{Left: tc.left, Top: 580, Width: 100, Height: 10}
			got := c.Nudge(p, tc.action)
			if got != tc.expected || p.Left != tc.expected {
				t.Errorf("Nudge() = %v (Left %v), expected %v", got, p.Left, tc.expected)
			}
		})
	}
}

func TestPaddleControllerPoint(t *testing.T) {
	c := NewPaddleController(800, 60)

	tests := []struct {
		x        float64
		expected float64
	}{
		{400, 350}, // Centered under the pointer
		{120, 70},
		{10, 0},
		{-50, 0},
		{790, 700},
		{1000, 700},
	}

	for _, tc := range tests {
		p := &core.Element{Left: 350, Top: 580, Width: 100, Height: 10}
		if got := c.Point(p, tc.x); got != tc.expected {
			t.Errorf("Point(%v) = %v, expected %v", tc.x, got, tc.expected)
		}
		if p.Top != 580 {
			t.Errorf("Point(%v) moved the paddle vertically", tc.x)
		}
	}
}

func TestPaddleControllerUnmounted(t *testing.T) {
	c := NewPaddleController(800, 60)
	if got := c.Nudge(nil, core.ActionLeft); got != 0 {
		t.Errorf("Nudge(nil) = %v, expected 0", got)
	}
	if got := c.Point(nil, 400); got != 0 {
		t.Errorf("Point(nil) = %v, expected 0", got)
	}
}
