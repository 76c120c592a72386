package main

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"
)

func (c *cli) newHealthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check that the meal API and its database are reachable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := c.open(cmd)
			if err != nil {
				return err
			}

			status, err := app.Services().FoodService.Health(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "API:      %s\n", status.Status)
			fmt.Fprintf(out, "Database: %s", status.Database.Status)
			if status.Database.Details != "" {
				fmt.Fprintf(out, " (%s)", status.Database.Details)
			}
			fmt.Fprintln(out)
			if status.Database.Error != nil {
				fmt.Fprintf(out, "Error:    %s\n", *status.Database.Error)
			}

			keys := make([]string, 0, len(status.Environment))
			for k := range status.Environment {
				keys = append(keys, k)
			}
			slices.Sort(keys)
			for _, k := range keys {
				fmt.Fprintf(out, "%-9s %t\n", k+":", status.Environment[k])
			}
			return nil
		},
	}
}
