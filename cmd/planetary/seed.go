package main

import (
	"github.com/spf13/cobra"

	"github.com/planetary/planetary-api/internal/infrastructure/db/sqlstore"
)

func newSeedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert the demo planets and user into an empty database",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			a, err := openApp(c.Context(), false)
			if err != nil {
				return err
			}
			defer a.closeAndLog()

			_, err = sqlstore.Seed(c.Context(), a.db, a.log)
			return err
		},
	}
}
