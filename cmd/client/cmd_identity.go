package main

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
)

func (c *cli) newWhoamiCmd() *cobra.Command {
	var copyID, reset bool

	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Print the identity of this device",
		Long: `Print the anonymous identity meals are stored under.

--reset assigns a new identity. Meals logged under the old one stay on the
server but are no longer listed on this device.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := c.open(cmd)
			if err != nil {
				return err
			}
			identity := app.Services().IdentityService

			userID, err := identity.UserID(cmd.Context())
			if reset {
				userID, err = identity.Reset(cmd.Context())
			}
			if err != nil {
				return err
			}

			if copyID {
				if err = clipboard.WriteAll(userID); err != nil {
					return fmt.Errorf("copy to clipboard: %w", err)
				}
			}

			fmt.Fprintln(cmd.OutOrStdout(), userID)
			return nil
		},
	}
	cmd.Flags().BoolVar(&copyID, "copy", false, "Also copy the identity to the clipboard")
	cmd.Flags().BoolVar(&reset, "reset", false, "Discard the identity and assign a new one")

	return cmd
}
