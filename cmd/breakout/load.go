package main

import (
	"fmt"

	"github.com/vovakirdan/tui-breakout/internal/config"
)

// loadConfig resolves the game config from the global flags.
func loadConfig() (config.BreakoutConfig, error) {
	cfg, err := config.LoadBreakout(flagConfig)
	if err != nil {
		return cfg, err
	}

	if flagDifficulty != "" {
		preset := config.ParsePreset(flagDifficulty)
		if preset == "" {
			return cfg, fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
		}
		config.ApplyBreakoutPreset(&cfg, preset)
	}

	return cfg, cfg.Validate()
}
