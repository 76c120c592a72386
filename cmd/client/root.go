// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-meal-log/internal/client"
	"github.com/MKhiriev/go-meal-log/internal/config"
	"github.com/MKhiriev/go-meal-log/internal/logger"
	"github.com/MKhiriev/go-meal-log/models"
)

const appName = "go-meal-log"

// errReported marks failures the user has already been told about, such as
// a save failure shown through the alert.
var errReported = errors.New("already reported")

// cli is the state shared by all commands of one invocation.
type cli struct {
	flags     *config.Flags
	buildInfo models.AppBuildInfo
	app       *client.App
}

// execute runs one command line and releases the app afterwards.
func execute(ctx context.Context, buildInfo models.AppBuildInfo, args []string, in io.Reader, out io.Writer) error {
	c := &cli{buildInfo: buildInfo.OrDevelopment()}
	defer func() { _ = c.close() }()

	root := c.newRootCmd()
	root.SetArgs(args)
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(out)
	return root.ExecuteContext(ctx)
}

func (c *cli) newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "meal-log",
		Short: "Log meals against the meal API",
		Long: `meal-log records meals for this device against the meal API.

Each device gets an anonymous identity on first use. Every meal is stored
under that identity, so meals logged on another device are not visible here.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	c.flags = config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(
		c.newWhoamiCmd(),
		c.newAddCmd(),
		c.newListCmd(),
		c.newTodayCmd(),
		c.newUpdateCmd(),
		c.newDeleteCmd(),
		c.newFoodCmd(),
		c.newImportCmd(),
		c.newHealthCmd(),
		c.newVersionCmd(),
	)
	return root
}

// open builds the client app on first use. Commands that never touch the
// API or the local database do not call it.
func (c *cli) open(cmd *cobra.Command) (*client.App, error) {
	if c.app != nil {
		return c.app, nil
	}

	cfg, err := config.GetClientConfig(c.flags)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log := logger.NewClientLogger(appName, cfg.App.LogPath)
	log.Debug().Str("func", "*cli.open").Str("build", c.buildInfo.String()).Str("command", cmd.CommandPath()).Msg("starting")
	streams := client.Streams{In: cmd.InOrStdin(), Out: cmd.OutOrStdout()}

	app, err := client.NewApp(cmd.Context(), cfg, c.buildInfo, streams, log)
	if err != nil {
		log.Err(err).Str("func", "*cli.open").Msg("init client app error")
		return nil, err
	}

	c.app = app
	return app, nil
}

func (c *cli) close() error {
	if c.app == nil {
		return nil
	}
	err := c.app.Close()
	c.app = nil
	return err
}
