package config

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFile_JSON(t *testing.T) {
	path := writeTempConfig(t, "client.json", `{
		"app": {"alert_mode": "none", "timezone": "UTC", "log_path": "-"},
		"storage": {"db": {"dsn": "local.db"}, "identity_key": "k"},
		"adapter": {"http_address": "http://api", "request_timeout": "1m"},
		"workers": {"import_dir": "/drop"}
	}`)

	cfg, err := parseFile(path)
	require.NoError(t, err)

	assert.Equal(t, &StructuredConfig{
		App:     App{AlertMode: "none", Timezone: "UTC", LogPath: "-"},
		Storage: Storage{DB: DB{DSN: "local.db"}, IdentityKey: "k"},
		Adapter: Adapter{HTTPAddress: "http://api", RequestTimeout: time.Minute},
		Workers: Workers{ImportDir: "/drop"},
	}, cfg)
}

func TestParseFile_YAML(t *testing.T) {
	for _, name := range []string{"client.yaml", "client.YML"} {
		t.Run(name, func(t *testing.T) {
			path := writeTempConfig(t, name, `
adapter:
  http_address: http://yaml-api
  request_timeout: 15s
workers:
  import_dir: /drop
`)
			cfg, err := parseFile(path)
			require.NoError(t, err)
			assert.Equal(t, "http://yaml-api", cfg.Adapter.HTTPAddress)
			assert.Equal(t, 15*time.Second, cfg.Adapter.RequestTimeout)
			assert.Equal(t, "/drop", cfg.Workers.ImportDir)
		})
	}
}

func TestParseFile_Malformed(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		body    string
		wantMsg string
	}{
		{name: "json", file: "bad.json", body: `{"adapter":`, wantMsg: "error decoding json configs"},
		{name: "yaml", file: "bad.yaml", body: "adapter: [", wantMsg: "error decoding yaml configs"},
		{name: "yaml duration", file: "dur.yaml", body: "adapter:\n  request_timeout: soon\n", wantMsg: "error decoding yaml configs"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseFile(writeTempConfig(t, tt.file, tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestDuration_JSON(t *testing.T) {
	var d Duration
	require.NoError(t, json.Unmarshal([]byte(`"90s"`), &d))
	assert.Equal(t, 90*time.Second, time.Duration(d))

	require.NoError(t, json.Unmarshal([]byte(`1000000`), &d))
	assert.Equal(t, time.Millisecond, time.Duration(d))

	assert.Error(t, json.Unmarshal([]byte(`"later"`), &d))

	out, err := json.Marshal(Duration(2 * time.Minute))
	require.NoError(t, err)
	assert.JSONEq(t, `"2m0s"`, string(out))
}
