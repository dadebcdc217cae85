// Package config provides YAML-based game configuration loading and
// difficulty presets for the breakout engine.
package config

import (
	"errors"
	"fmt"
	"time"
)

// BreakoutConfig contains all configuration for a breakout session.
// Lengths are in arena pixels, velocities in pixels per tick.
type BreakoutConfig struct {
	Arena  BreakoutArena  `yaml:"arena"`
	Paddle BreakoutPaddle `yaml:"paddle"`
	Ball   BreakoutBall   `yaml:"ball"`
	Bricks BreakoutBricks `yaml:"bricks"`
	Engine BreakoutEngine `yaml:"engine"`
	Timing BreakoutTiming `yaml:"timing"`
}

// BreakoutArena defines the play field size.
type BreakoutArena struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// BreakoutPaddle defines paddle geometry and keyboard step.
type BreakoutPaddle struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	BottomPadding float64 `yaml:"bottom_padding"` // Distance from arena bottom to paddle top
	Step          float64 `yaml:"step"`           // Pixels per left/right key press
}

// BreakoutBall defines the ball size and the velocity it starts each session with.
type BreakoutBall struct {
	Diameter  float64 `yaml:"diameter"`
	VelocityX float64 `yaml:"velocity_x"`
	VelocityY float64 `yaml:"velocity_y"`
}

// BreakoutBricks defines the brick grid.
type BreakoutBricks struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Padding      float64 `yaml:"padding"`
	Points       int     `yaml:"points"`
	SectionRatio float64 `yaml:"section_ratio"` // Arena height / brick section height
}

// BreakoutEngine defines collision engine tuning.
type BreakoutEngine struct {
	PaddleProximity float64 `yaml:"paddle_proximity"`
	BrickProximity  float64 `yaml:"brick_proximity"`
	SlowdownFactor  float64 `yaml:"slowdown_factor"`
	RestEpsilon     float64 `yaml:"rest_epsilon"`
}

// BreakoutTiming defines presentation delays.
type BreakoutTiming struct {
	BrickHide      time.Duration `yaml:"brick_hide"`
	WinDelay       time.Duration `yaml:"win_delay"`
	SlowdownPeriod time.Duration `yaml:"slowdown_period"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI value to a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}

// ApplyBreakoutPreset modifies the config based on a difficulty preset.
// Normal and fixed keep the configured values.
func ApplyBreakoutPreset(cfg *BreakoutConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Paddle.Width = 120
		cfg.Ball.VelocityX = 3
		cfg.Ball.VelocityY = 3
	case DifficultyHard:
		cfg.Paddle.Width = 80
		cfg.Ball.VelocityX = 5
		cfg.Ball.VelocityY = 5
	}
}

// Validate checks that the geometry can host a session.
func (c BreakoutConfig) Validate() error {
	var errs []error
	if c.Arena.Width <= 0 || c.Arena.Height <= 0 {
		errs = append(errs, fmt.Errorf("arena size must be positive, got %vx%v", c.Arena.Width, c.Arena.Height))
	}
	if c.Paddle.Width <= 0 || c.Paddle.Height <= 0 {
		errs = append(errs, fmt.Errorf("paddle size must be positive, got %vx%v", c.Paddle.Width, c.Paddle.Height))
	}
	if c.Paddle.Width > c.Arena.Width {
		errs = append(errs, fmt.Errorf("paddle width %v exceeds arena width %v", c.Paddle.Width, c.Arena.Width))
	}
	if c.Paddle.BottomPadding < 0 || c.Paddle.BottomPadding+c.Ball.Diameter > c.Arena.Height {
		errs = append(errs, fmt.Errorf("paddle bottom padding %v leaves no room for the ball in arena height %v", c.Paddle.BottomPadding, c.Arena.Height))
	}
	if c.Ball.Diameter <= 0 {
		errs = append(errs, fmt.Errorf("ball diameter must be positive, got %v", c.Ball.Diameter))
	}
	if c.Bricks.Width <= 0 || c.Bricks.Height <= 0 {
		errs = append(errs, fmt.Errorf("brick size must be positive, got %vx%v", c.Bricks.Width, c.Bricks.Height))
	}
	if c.Bricks.Points < 0 {
		errs = append(errs, fmt.Errorf("brick points must not be negative, got %d", c.Bricks.Points))
	}
	if c.Bricks.SectionRatio <= 0 {
		errs = append(errs, fmt.Errorf("brick section ratio must be positive, got %v", c.Bricks.SectionRatio))
	}
	if c.Engine.SlowdownFactor < 0 || c.Engine.SlowdownFactor >= 1 {
		errs = append(errs, fmt.Errorf("slowdown factor must be in [0, 1), got %v", c.Engine.SlowdownFactor))
	}
	if c.Engine.RestEpsilon < 0 {
		errs = append(errs, fmt.Errorf("rest epsilon must not be negative, got %v", c.Engine.RestEpsilon))
	}
	if c.Timing.BrickHide < 0 || c.Timing.WinDelay < 0 || c.Timing.SlowdownPeriod < 0 {
		errs = append(errs, fmt.Errorf("timing delays must not be negative, got hide %v, win %v, slowdown %v",
			c.Timing.BrickHide, c.Timing.WinDelay, c.Timing.SlowdownPeriod))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid breakout config: %w", err)
	}
	return nil
}
