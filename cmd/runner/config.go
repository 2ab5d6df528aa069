package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lane-runner/internal/config"
)

var flagShowSource bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration the game would run with, as YAML.

The config is looked up in this order and decoded over the built-in
defaults:
  --config <path>
  ~/.lane-runner/config.yaml
  ./configs/runner.yaml

Examples:
  runner config > my-runner.yaml
  runner config --source
  runner config --config ./my-runner.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagShowSource, "source", false, "Print which file the config was loaded from")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	rc, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if flagShowSource {
		path, err := config.Source(flagConfig)
		if err != nil {
			return err
		}
		if path == "" {
			path = "built-in defaults"
		}
		fmt.Fprintf(out, "# source: %s\n", path)
	}

	data, err := rc.Marshal()
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}
