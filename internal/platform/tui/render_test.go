package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(12, 3)
	s.DrawText(0, 0, "SCORE: 10", core.ColorWhite)
	s.FillSpan(2, 6, 1, '=', core.ColorYellow)
	s.Set(4, 2, '●', core.Color(200)) // No style registered

	out := RenderScreen(s)

	if got := strings.Count(out, "\n"); got != 2 {
		t.Errorf("RenderScreen() has %d line breaks, expected 2", got)
	}
	for _, want := range []string{"SCORE: 10", "=", "●"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderScreen() missing %q in:\n%s", want, out)
		}
	}
}

func TestRenderScreenEmpty(t *testing.T) {
	s := core.NewScreen(0, 0)
	if got := RenderScreen(s); got != "" {
		t.Errorf("RenderScreen() of empty screen = %q, expected empty", got)
	}
}
