package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Show the game rules",
	Args:  cobra.NoArgs,
	Run:   runRules,
}

func runRules(cmd *cobra.Command, args []string) {
	fmt.Println("Breakout rules:")
	fmt.Println()
	for i, r := range breakout.Rules {
		fmt.Printf("  %d. %s\n", i+1, r)
	}
	fmt.Println()
	fmt.Println("Run 'breakout play' to start.")
}
