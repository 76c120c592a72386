package client

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/go-meal-log/internal/adapter"
	"github.com/MKhiriev/go-meal-log/internal/config"
	"github.com/MKhiriev/go-meal-log/internal/importer"
	"github.com/MKhiriev/go-meal-log/internal/logger"
	"github.com/MKhiriev/go-meal-log/internal/service"
	"github.com/MKhiriev/go-meal-log/internal/store"
	"github.com/MKhiriev/go-meal-log/internal/tui"
	"github.com/MKhiriev/go-meal-log/internal/workers"
	"github.com/MKhiriev/go-meal-log/models"
)

var ErrImportDirNotSet = errors.New("import directory is not configured")

// Streams are the terminal streams the app talks to.
type Streams struct {
	In  io.Reader
	Out io.Writer
}

type App struct {
	cfg      *config.ClientConfig
	storages *store.ClientStorages
	services *service.ClientServices
	ui       *tui.TUI
	importer *importer.Importer
	workers  *workers.Workers
	logger   *logger.Logger
}

func NewApp(ctx context.Context, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, streams Streams, logger *logger.Logger) (*App, error) {
	ui, err := tui.New(cfg.App.AlertMode, streams.In, streams.Out, logger)
	if err != nil {
		return nil, fmt.Errorf("create ui: %w", err)
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter)
	if err != nil {
		return nil, fmt.Errorf("create server adapter: %w", err)
	}

	storages, err := store.NewClientStorages(ctx, cfg.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	services, err := service.NewClientServices(storages, serverAdapter, ui, *cfg, buildInfo, logger)
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("create client services: %w", err)
	}

	imp := importer.NewImporter(services.MealService, logger)

	var ws *workers.Workers
	if cfg.Workers.ImportDir != "" {
		ws = workers.NewWorkers(logger, importer.NewWatcher(cfg.Workers.ImportDir, imp, logger))
	} else {
		ws = workers.NewWorkers(logger)
	}

	return &App{
		cfg:      cfg,
		storages: storages,
		services: services,
		ui:       ui,
		importer: imp,
		workers:  ws,
		logger:   logger,
	}, nil
}

func (a *App) Services() *service.ClientServices {
	return a.services
}

func (a *App) UI() *tui.TUI {
	return a.ui
}

func (a *App) Importer() *importer.Importer {
	return a.importer
}

func (a *App) Config() *config.ClientConfig {
	return a.cfg
}

// Run runs the import watcher until ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	if a.workers.Len() == 0 {
		return ErrImportDirNotSet
	}

	a.logger.Info().Str("func", "*App.Run").Int("workers", a.workers.Len()).Msg("starting workers")
	if err := a.workers.Run(ctx); err != nil {
		return fmt.Errorf("run workers: %w", err)
	}
	return nil
}

func (a *App) Close() error {
	return a.storages.Close()
}
