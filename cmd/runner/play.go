package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/sprite-runner/internal/games/runner"
	"github.com/vovakirdan/sprite-runner/internal/platform/tui"
	"github.com/vovakirdan/sprite-runner/internal/platform/window"
)

// Hosts accepted by --host.
const (
	hostTUI    = "tui"
	hostWindow = "window"
)

var (
	flagHost  string
	flagFPS   int
	flagScale float64
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a run",
	Long: `Start a run in the terminal (default) or a desktop window.

Controls:
  Up/W/Space  - Jump
  Left/A      - Move back
  Right/D     - Move forward
  Down/S      - Stop
  Q/Esc       - Quit

The run ends at the first collision; the final frame stays on screen
until you quit.

Examples:
  runner play
  runner play --fps 30
  runner play --host window --scale 0.75
  runner play --seed 42 --log-file runner.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagHost, "host", hostTUI, "Host: tui or window")
	playCmd.Flags().IntVar(&flagFPS, "fps", 60, "Frame rate")
	playCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window scale (window host only)")
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// The terminal host owns stdout and stderr while the alt screen is up
	var fallback io.Writer = os.Stderr
	if flagHost == hostTUI {
		fallback = io.Discard
	}
	logger, closeLog, err := newLogger("runner-"+flagHost, fallback)
	if err != nil {
		return err
	}
	defer closeLog()

	s := seed()
	game := runner.NewSeeded(cfg, s)
	logger.Debug("config loaded", "path", flagConfig, "seed", s)

	switch flagHost {
	case hostTUI:
		width, height := 80, 24 // Defaults
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		err = tui.Run(game, tui.Options{
			FPS:    flagFPS,
			Width:  width,
			Height: height,
			Logger: logger,
		})
	case hostWindow:
		err = window.Run(game, window.Options{
			TPS:    flagFPS,
			Scale:  flagScale,
			Logger: logger,
		})
	default:
		return fmt.Errorf("unknown host %q (expected %s or %s)", flagHost, hostTUI, hostWindow)
	}
	if err != nil {
		return fmt.Errorf("error running game: %w", err)
	}

	st := game.State()
	logger.Info("run finished", "score", st.Score, "game_over", st.GameOver, "frames", st.Frames)
	if st.GameOver {
		fmt.Printf("%s%d\n", runner.ScorePrefix, st.Score)
	}
	return nil
}
