package main

import (
	"fmt"

	"github.com/chris/pooled-savings/pkg/progression"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newSeedCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Write the default reward and challenge catalog",
		Long: `Write the default reward and challenge definitions. Existing
definitions with the same ids are overwritten.

Example:
  $ STORAGE_BACKEND=dynamodb savingsctl seed`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := wire(cmd, v)
			if err != nil {
				return err
			}
			rewards := progression.DefaultRewards()
			challenges := progression.DefaultChallenges()
			if err := app.Service.SeedCatalog(cmd.Context(), rewards, challenges); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d rewards and %d challenges\n", len(rewards), len(challenges))
			return nil
		},
	}
}
