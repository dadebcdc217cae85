package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// DefaultBreakoutConfig returns the default Breakout configuration.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Arena: BreakoutArena{
			Width:  800,
			Height: 600,
		},
		Paddle: BreakoutPaddle{
			Width:         100,
			Height:        10,
			BottomPadding: 20,
			Step:          60,
		},
		Ball: BreakoutBall{
			Diameter:  15,
			VelocityX: 4,
			VelocityY: 4,
		},
		Bricks: BreakoutBricks{
			Width:        60,
			Height:       30,
			Padding:      5,
			Points:       10,
			SectionRatio: 6, // Top sixth of the arena
		},
		Engine: BreakoutEngine{
			PaddleProximity: 10,
			BrickProximity:  10,
			SlowdownFactor:  0.9,
			RestEpsilon:     0.1,
		},
		Timing: BreakoutTiming{
			BrickHide:      100 * time.Millisecond,
			WinDelay:       500 * time.Millisecond,
			SlowdownPeriod: 100 * time.Millisecond,
		},
	}
}
