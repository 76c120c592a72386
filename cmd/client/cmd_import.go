package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var errNoImportSource = errors.New("pass CSV files or --watch")

func (c *cli) newImportCmd() *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "import [file.csv...]",
		Short: "Import meals from CSV exports",
		Long: `Import meals from CSV files with the header

  food_name,meal_type[,calories,protein,carbs,fat,serving_size,serving_unit,timestamp]

timestamp is Unix milliseconds or RFC 3339. With --watch the command keeps
importing every CSV file dropped into --import-dir until interrupted.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && !watch {
				return errNoImportSource
			}

			app, err := c.open(cmd)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, path := range args {
				saved, failed, err := app.Importer().ImportFile(cmd.Context(), path)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s: %d saved, %d failed\n", path, saved, failed)
			}

			if !watch {
				return nil
			}
			fmt.Fprintf(out, "Watching %s, press Ctrl+C to stop\n", app.Config().Workers.ImportDir)
			return app.Run(cmd.Context())
		},
	}
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Keep importing files dropped into --import-dir")

	return cmd
}
