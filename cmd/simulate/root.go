package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Phantomding/starrail-simulator/config"
)

// cliFlags mirrors config.Config but as the cobra-bound variables the
// root command's flags write into; resolveConfig layers these over
// config.Load's env/.env-derived baseline (explicit flags win).
type cliFlags struct {
	catalogDir string
	rosterPath string
	maxRounds  int
	seed       int64
	logLevel   string
}

func newRootCmd() *cobra.Command {
	var flags cliFlags

	root := &cobra.Command{
		Use:   "simulate",
		Short: "Run a deterministic turn-based battle simulation",
	}

	root.PersistentFlags().StringVar(&flags.catalogDir, "catalog", "", "catalog directory (skills.yaml, light_cones.yaml, relics.yaml, monsters.yaml, relic_set_skills.yaml)")
	root.PersistentFlags().StringVar(&flags.rosterPath, "roster", "", "roster YAML file describing the party and enemies")
	root.PersistentFlags().IntVar(&flags.maxRounds, "max-rounds", 0, "round cap before the battle ends in a draw (0 = use config default)")
	root.PersistentFlags().Int64Var(&flags.seed, "seed", 0, "RNG seed for reproducible runs (0 = use config default)")
	root.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "log level (trace, debug, info, warn, error)")

	root.AddCommand(newRunCmd(&flags))
	root.AddCommand(newValidateCmd(&flags))
	return root
}

// resolveConfig layers cliFlags over config.Load's environment-derived
// baseline: an unset flag (zero value) never clobbers a value the
// environment or .env file already supplied.
func resolveConfig(flags *cliFlags) config.Config {
	cfg := config.Load()
	if flags.catalogDir != "" {
		cfg.CatalogDir = flags.catalogDir
	}
	if flags.rosterPath != "" {
		cfg.RosterPath = flags.rosterPath
	}
	if flags.maxRounds != 0 {
		cfg.MaxRounds = flags.maxRounds
	}
	if flags.seed != 0 {
		cfg.Seed = flags.seed
	}
	if flags.logLevel != "" {
		if lvl, err := logrus.ParseLevel(flags.logLevel); err == nil {
			cfg.LogLevel = lvl
		}
	}
	return cfg
}
