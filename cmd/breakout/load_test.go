package main

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/config"
)

func TestLoadConfigDifficulty(t *testing.T) {
	defer func(c, d string) { flagConfig, flagDifficulty = c, d }(flagConfig, flagDifficulty)
	flagConfig = ""

	tests := []struct {
		difficulty  string
		paddleWidth float64
		wantErr     string
	}{
		{"", config.DefaultBreakoutConfig().Paddle.Width, ""},
		{"easy", 120, ""},
		{"hard", 80, ""},
		{"insane", 0, "unknown difficulty"},
	}

	for _, tc := range tests {
		flagDifficulty = tc.difficulty
		cfg, err := loadConfig()

		if tc.wantErr != "" {
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("loadConfig(%q) error = %v, expected %q", tc.difficulty, err, tc.wantErr)
			}
			continue
		}
		if err != nil {
			t.Errorf("loadConfig(%q) unexpected error: %v", tc.difficulty, err)
			continue
		}
		if cfg.Paddle.Width != tc.paddleWidth {
			t.Errorf("loadConfig(%q) paddle width = %v, expected %v", tc.difficulty, cfg.Paddle.Width, tc.paddleWidth)
		}
	}
}
