package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Phantomding/starrail-simulator/catalog"
)

// newValidateCmd exercises the catalog loader's error path in isolation
// (spec's testable property #9): it loads and validates a catalog
// directory without assembling or running a battle.
func newValidateCmd(flags *cliFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Type-check a catalog directory without running a battle",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := resolveConfig(flags)
			cat, err := catalog.Load(cmd.Context(), cfg.CatalogDir)
			if err != nil {
				return err
			}
			fmt.Printf(
				"catalog OK: %d skills, %d light cones, %d relics, %d monsters, %d relic-set skills\n",
				len(cat.Skills), len(cat.LightCones), len(cat.Relics), len(cat.Monsters), len(cat.RelicSetSkills),
			)
			return nil
		},
	}
}
