package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/moti-runner/internal/config"
)

var flagCheck string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the built-in runner configuration as YAML. Save it to
~/.moti/configs/runner.yaml or ./configs/runner.yaml and edit the values
you want to change; missing keys keep their defaults.

Examples:
  moti config > ~/.moti/configs/runner.yaml
  moti config --check ./my-runner.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagCheck, "check", "", "Validate a config file instead of printing the defaults")
}

func runConfig(cmd *cobra.Command, args []string) error {
	if flagCheck == "" {
		_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
		return err
	}

	if _, err := config.LoadRunner(flagCheck); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", flagCheck)
	return nil
}
