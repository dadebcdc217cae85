package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
)

var (
	flagTicks   int
	flagVerbose bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless round driven by the autopilot",
	Long: `Plays one round without a terminal UI. The autopilot steers the paddle
and the simulated clock advances one tick per step, so the same config
always produces the same outcome.

Examples:
  breakout sim
  breakout sim --ticks 5000
  breakout sim --difficulty hard --verbose`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagTicks, "ticks", 36000, "Give up after this many ticks")
	simCmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Log every brick and round event")
}

func runSim(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "breakout-sim",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}

	session, err := breakout.NewSession(cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	interval := core.RuntimeConfig{TickRate: flagFPS}.TickInterval()
	var now time.Time

	session.Start()
	steps := 0
	for ; steps < flagTicks; steps++ {
		if p := session.Phase(); p == breakout.PhaseWon || p == breakout.PhaseLost {
			break
		}
		now = now.Add(interval)
		session.Point(breakout.Autopilot(session))
		for _, e := range session.Tick(now) {
			logger.Debug("event", "tick", steps, "event", e)
		}
	}

	st := session.State()
	outcome := "unfinished"
	switch {
	case st.Won:
		outcome = "won"
	case st.Lost:
		outcome = "lost"
	}

	snap := session.Snapshot()
	fmt.Printf("Outcome: %s\n", outcome)
	fmt.Printf("Score:   %d\n", st.Score)
	fmt.Printf("Bricks:  %d/%d left\n", session.Bricks().Live(), session.Bricks().Len())
	fmt.Printf("Ticks:   %d\n", steps)
	fmt.Printf("Hash:    %016x\n", snap.Hash())
}
