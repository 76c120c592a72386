// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Alert modes select how blocking failure notifications are shown.
const (
	// AlertModeTUI shows a modal terminal box and waits for the user to
	// dismiss it.
	AlertModeTUI = "tui"
	// AlertModePlain prints the message without waiting.
	AlertModePlain = "plain"
	// AlertModeNone only logs the failure.
	AlertModeNone = "none"
)

// Built-in defaults, the lowest-priority configuration layer.
const (
	DefaultHTTPAddress = "http://localhost:5000"
	DefaultDSN         = "meal-log.db"
	DefaultIdentityKey = "lifestats_userId"
	DefaultAlertMode   = AlertModeTUI
)

// StructuredConfig is the top-level configuration container for the
// meal-log client. It aggregates all sub-configurations and is populated by
// merging defaults, an optional config file, environment variables and
// command-line flags.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds user-facing runtime settings.
	App App `envPrefix:"APP_"`

	// Storage holds configuration of the local key/value database that keeps
	// the device identity.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds the meal API endpoint settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for background workers.
	Workers Workers `envPrefix:"WORKERS_"`

	// FilePath is the optional path to a JSON or YAML configuration file.
	// Populated via the CONFIG environment variable or the -c / --config flag.
	FilePath string `env:"CONFIG"`
}

// App holds user-facing runtime settings.
type App struct {
	// AlertMode is one of AlertModeTUI, AlertModePlain or AlertModeNone.
	// Env: APP_ALERT_MODE
	AlertMode string `env:"ALERT_MODE"`

	// Timezone is the IANA zone used to compute "today". Empty or "Local"
	// means the system zone.
	// Env: APP_TIMEZONE
	Timezone string `env:"TIMEZONE"`

	// LogPath is the log file path. Empty means a "logs" file next to the
	// executable, "-" means stderr.
	// Env: APP_LOG_PATH
	LogPath string `env:"LOG_PATH"`
}

// Storage groups the local storage settings.
type Storage struct {
	// DB holds the SQLite database connection settings.
	DB DB `envPrefix:"DB_"`

	// IdentityKey is the key under which the device identity is persisted.
	// Env: STORAGE_IDENTITY_KEY
	IdentityKey string `env:"IDENTITY_KEY"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the SQLite file path or DSN (e.g. "meal-log.db").
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Adapter holds the meal API endpoint settings.
type Adapter struct {
	// HTTPAddress is the base URL of the meal API (e.g.
	// "http://localhost:5000"). A bare host:port is accepted.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single outbound request. Zero disables the
	// timeout.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background workers.
type Workers struct {
	// ImportDir is the drop directory watched for CSV meal exports.
	// Env: WORKERS_IMPORT_DIR
	ImportDir string `env:"IMPORT_DIR"`
}

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			AlertMode: DefaultAlertMode,
		},
		Storage: Storage{
			DB:          DB{DSN: DefaultDSN},
			IdentityKey: DefaultIdentityKey,
		},
		Adapter: Adapter{
			HTTPAddress: DefaultHTTPAddress,
		},
	}
}

// GetStructuredConfig loads and merges the configuration from all available
// sources in the following priority order (last source wins for non-zero
// fields):
//  1. Built-in defaults
//  2. Config file (path resolved from env and flags)
//  3. Environment variables
//  4. Command-line flags
//
// flags may be nil when no command line is involved.
func GetStructuredConfig(flags *Flags) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(flags).
		withFile().
		build()
}
