package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-meal-log/internal/logger"
	"github.com/MKhiriev/go-meal-log/internal/service"
	"github.com/MKhiriev/go-meal-log/internal/tui"
)

func (c *cli) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info, err := service.NewAppInfoService(c.buildInfo, logger.Nop())
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), tui.RenderBuildInfo(info.GetBuildInfo(cmd.Context())))
			return nil
		},
	}
}
