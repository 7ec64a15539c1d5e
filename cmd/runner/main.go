// runner is a side-scrolling endless runner for the terminal and the desktop.
//
// Usage:
//
//	runner play              - Play in the terminal
//	runner play --host window - Play in a desktop window
//	runner sim               - Run a headless simulation and log a summary
//	runner config            - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Custom runner config YAML
//	--seed <value>      - RNG seed for reproducible spawns (0 = time based)
//	--log-level <level> - debug, info, warn or error
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/sprite-runner/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "runner",
	Short: "Sprite Runner - jump the enemies, survive as long as you can",
	Long: `Sprite Runner is a side-scrolling endless runner. Enemies approach from
the right; each one that leaves the screen scores a point and the first
collision ends the run.

Available commands:
  play     - Play in the terminal or a desktop window
  sim      - Run a headless simulation
  config   - Print the effective configuration

Examples:
  runner play
  runner play --host window
  runner sim --frames 5000 --jump-every 60
  runner config > my-runner.yaml`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom runner config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the runner configuration from --config or the default
// search path.
func loadConfig() (config.RunnerConfig, error) {
	cfg, err := config.LoadRunner(flagConfig)
	if err != nil {
		return config.RunnerConfig{}, err
	}
	return cfg, nil
}

// seed returns the --seed value, or a time-based seed when it is 0.
func seed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

// newLogger creates the command logger. Output goes to --log-file when set,
// otherwise to fallback. The returned closer releases the log file.
func newLogger(prefix string, fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	out, closer := fallback, func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		//nolint:errcheck // Best-effort close on exit
		out, closer = f, func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closer, nil
}
