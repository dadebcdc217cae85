// breakout is a terminal Breakout game built on a deterministic physics engine.
//
// Usage:
//
//	breakout play            - Play a round in the terminal
//	breakout play --demo     - Watch the autopilot play
//	breakout sim             - Run a headless autopilot round and print the outcome
//	breakout rules           - Print the game rules
//
// Global flags:
//
//	--fps <rate>            - Set tick rate (default: 60)
//	--config <path>         - Custom game config YAML
//	--difficulty <preset>   - Difficulty preset: easy, normal, hard, fixed
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "breakout",
	Short: "Breakout - break bricks in your terminal",
	Long: `Breakout is the classic brick breaking game, played in the terminal.

Available commands:
  play     - Play a round
  sim      - Run a headless round driven by the autopilot
  rules    - Show the game rules

Examples:
  breakout play
  breakout play --difficulty hard
  breakout play --demo
  breakout sim --ticks 20000 --verbose
  breakout play --config ./my-breakout.yaml`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(rulesCmd)
}
