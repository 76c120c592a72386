// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the meal-log environment: CONFIG, APP_ALERT_MODE,
// APP_TIMEZONE, APP_LOG_PATH, STORAGE_DB_DSN, STORAGE_IDENTITY_KEY,
// ADAPTER_ADDRESS, ADAPTER_REQUEST_TIMEOUT and WORKERS_IMPORT_DIR.
//
// The alert mode is lowercased and a leading "~/" in the database, log and
// import paths is expanded to the user's home directory.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	cfg.App.AlertMode = strings.ToLower(strings.TrimSpace(cfg.App.AlertMode))

	for _, p := range []*string{&cfg.Storage.DB.DSN, &cfg.App.LogPath, &cfg.Workers.ImportDir} {
		expanded, err := expandHome(*p)
		if err != nil {
			return fmt.Errorf("error getting env configs: %w", err)
		}
		*p = expanded
	}

	return nil
}

func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("expand %q: %w", path, err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
