package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
)

var (
	flagLogFile string
	flagDemo    bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a round",
	Long: `Start a round of Breakout.

Controls:
  Left/A, Right/D  - Move the paddle
  Mouse            - Point the paddle
  Space/Enter      - Start, or play again after a round
  R                - Reset after a round
  ?                - Toggle help
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Wide paddle, slow ball
  normal - Configured values
  hard   - Narrow paddle, fast ball
  fixed  - Configured values

Examples:
  breakout play
  breakout play --difficulty easy
  breakout play --demo
  breakout play --log breakout.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log", "", "Write logs to this file")
	playCmd.Flags().BoolVar(&flagDemo, "demo", false, "Let the autopilot play")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Fail before taking over the terminal
	if _, err := loadConfig(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// The alternate screen owns stdout, so logs only go to a file
	var logger *log.Logger
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()

		logger = log.NewWithOptions(f, log.Options{
			ReportTimestamp: true,
			Prefix:          "breakout",
			Level:           log.DebugLevel,
		})
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}

	breakout.SetConfigPath(flagConfig)
	breakout.SetDifficultyPreset(flagDifficulty)
	breakout.SetLogger(logger)

	game := breakout.New()
	if flagDemo {
		game = breakout.NewDemo()
	}

	if err := tui.Run(game, cfg, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
