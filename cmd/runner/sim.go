package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/sprite-runner/internal/games/runner"
)

var (
	flagFrames    int
	flagDt        float64
	flagJumpEvery int
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless simulation",
	Long: `Run the simulation without a display at a fixed frame interval and log
a summary. With the same --seed and flags the result is always the same.

Examples:
  runner sim --seed 1
  runner sim --seed 1 --frames 10000 --dt 16 --jump-every 45`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagFrames, "frames", 3600, "Maximum number of frames")
	simCmd.Flags().Float64Var(&flagDt, "dt", 1000.0/60, "Milliseconds between frames")
	simCmd.Flags().IntVar(&flagJumpEvery, "jump-every", 0, "Tap Up every N frames (0 = never)")
}

func runSim(_ *cobra.Command, _ []string) error {
	if flagFrames <= 0 || flagDt <= 0 || flagJumpEvery < 0 {
		return errors.New("--frames and --dt must be positive, --jump-every must not be negative")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, closeLog, err := newLogger("runner-sim", os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	s := seed()
	game := runner.NewSeeded(cfg, s)
	st := runner.Simulate(game, flagFrames, flagDt, flagJumpEvery)

	logger.Info("simulation finished",
		"seed", s,
		"frames", st.Frames,
		"score", st.Score,
		"game_over", st.GameOver,
		"spawned", st.Spawned,
		"live_enemies", st.Enemies,
	)
	return nil
}
