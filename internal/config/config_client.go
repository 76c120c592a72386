package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// AlertMode selects how failure alerts are shown.
	AlertMode string
	// Location is the time zone used for day boundaries.
	Location *time.Location
	// LogPath is the log destination.
	LogPath string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the meal API base URL.
	HTTPAddress string
	// RequestTimeout is the timeout for outbound requests, zero for none.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite connection string used by the client.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
	// IdentityKey is the key of the persisted device identity.
	IdentityKey string
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// ImportDir is the watched CSV drop directory, empty when unused.
	ImportDir string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps the fields
// relevant to the client runtime, resolves the time zone and validates the
// resulting [ClientConfig].
func GetClientConfig(flags *Flags) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(flags)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	loc, err := loadLocation(cfg.App.Timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: timezone %q: %v", ErrInvalidAppConfigs, cfg.App.Timezone, err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			AlertMode: cfg.App.AlertMode,
			Location:  loc,
			LogPath:   cfg.App.LogPath,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
			IdentityKey: cfg.Storage.IdentityKey,
		},
		Workers: ClientWorkers{ImportDir: cfg.Workers.ImportDir},
	}

	return clientCfg, clientCfg.validate()
}

func loadLocation(name string) (*time.Location, error) {
	if name == "" || name == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(name)
}
