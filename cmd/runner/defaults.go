package main

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/trex-runner/internal/config"
)

var flagEffective bool

var defaultsCmd = &cobra.Command{
	Use:   "defaults",
	Short: "Print the default configuration",
	Long: `Print the built-in runner.yaml. Redirect it to a file, edit what you
need and pass it back with --config; missing keys keep their defaults.

With --effective the configuration actually used (after --config and
--difficulty) is printed instead.

Examples:
  runner defaults > ~/.trex-runner/runner.yaml
  runner defaults --effective --difficulty hard`,
	Args: cobra.NoArgs,
	Run:  runDefaults,
}

func init() {
	defaultsCmd.Flags().BoolVar(&flagEffective, "effective", false, "Print the loaded config after presets")
}

func runDefaults(cmd *cobra.Command, _ []string) {
	out := cmd.OutOrStdout()
	if !flagEffective {
		if _, err := out.Write(config.DefaultYAML()); err != nil {
			exitErr("%v", err)
		}
		return
	}

	cfg, err := loadConfig(flagConfig, flagDifficulty)
	if err != nil {
		exitErr("%v", err)
	}
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		exitErr("encoding config: %v", err)
	}
	if err := enc.Close(); err != nil {
		exitErr("%v", err)
	}
}
