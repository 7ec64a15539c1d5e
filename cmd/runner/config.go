package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/sprite-runner/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration a run would use, after layering the config file
over the defaults. The output is valid input for --config.

Examples:
  runner config
  runner config --config ./my-runner.yaml`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		data, err := config.Marshal(cfg)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(data)
		return err
	},
}
