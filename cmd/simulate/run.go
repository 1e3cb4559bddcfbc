package main

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Phantomding/starrail-simulator/catalog"
	"github.com/Phantomding/starrail-simulator/dice"
	"github.com/Phantomding/starrail-simulator/simlog"
)

// battleAssemblyConfig carries the pieces assembleBattle needs that come
// from resolved config rather than the roster file itself.
type battleAssemblyConfig struct {
	Roller    dice.Roller
	MaxRounds int
	Logger    *logrus.Logger
}

func newRunCmd(flags *cliFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Assemble a battle from a catalog and roster, run it, and print the event log",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := resolveConfig(flags)
			logger := simlog.New(cfg.LogLevel)

			cat, err := catalog.Load(cmd.Context(), cfg.CatalogDir)
			if err != nil {
				return err
			}
			r, err := loadRoster(cfg.RosterPath)
			if err != nil {
				return err
			}

			var roller dice.Roller
			if cfg.Seed != 0 {
				roller = dice.NewSeededRoller(cfg.Seed)
			} else {
				roller = dice.NewCryptoRoller()
			}

			bc, err := assembleBattle(cat, r, battleAssemblyConfig{
				Roller:    roller,
				MaxRounds: cfg.MaxRounds,
				Logger:    logger,
			})
			if err != nil {
				return err
			}

			outcome, err := bc.Run(context.Background())
			if err != nil {
				return err
			}

			fmt.Printf("winner: %s (rounds: %d)\n", outcome.Winner, outcome.Rounds)
			for _, evt := range outcome.Events {
				fmt.Printf("[round %d] %s %s: %s\n", evt.Round, evt.ActorID, evt.Type, evt.Detail)
			}
			return nil
		},
	}
}
