package config

import (
	"time"

	"github.com/spf13/pflag"
)

// Flags holds the values of the configuration flags registered on a flag
// set. Unset flags keep their zero values and therefore do not override
// lower-priority sources.
type Flags struct {
	address        string
	requestTimeout time.Duration
	dsn            string
	identityKey    string
	configPath     string
	alertMode      string
	timezone       string
	logPath        string
	importDir      string
}

// RegisterFlags registers all configuration flags on fs and returns the
// holder their values are parsed into.
//
// Flags:
//
//	-a/--address         meal API base URL (e.g. http://localhost:5000)
//	--request-timeout    per-request timeout (e.g. "10s"), 0 disables it
//	-d/--db              local SQLite database path
//	--identity-key       local storage key of the device identity
//	-c/--config          JSON or YAML config file path
//	--alert-mode         failure alert mode: tui, plain or none
//	--timezone           IANA time zone used for "today"
//	--log-path           log file path, "-" for stderr
//	--import-dir         directory watched for CSV meal exports
func RegisterFlags(fs *pflag.FlagSet) *Flags {
	f := &Flags{}

	fs.StringVarP(&f.address, "address", "a", "", "Meal API base URL")
	fs.DurationVar(&f.requestTimeout, "request-timeout", 0, "Request timeout (e.g., 10s, 1m), 0 disables it")
	fs.StringVarP(&f.dsn, "db", "d", "", "Local SQLite database path")
	fs.StringVar(&f.identityKey, "identity-key", "", "Local storage key of the device identity")
	fs.StringVarP(&f.configPath, "config", "c", "", "JSON or YAML config file path")
	fs.StringVar(&f.alertMode, "alert-mode", "", "Failure alert mode: tui, plain or none")
	fs.StringVar(&f.timezone, "timezone", "", "IANA time zone used to compute today")
	fs.StringVar(&f.logPath, "log-path", "", `Log file path, "-" for stderr`)
	fs.StringVar(&f.importDir, "import-dir", "", "Directory watched for CSV meal exports")

	return f
}

func (f *Flags) structured() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			AlertMode: f.alertMode,
			Timezone:  f.timezone,
			LogPath:   f.logPath,
		},
		Storage: Storage{
			DB:          DB{DSN: f.dsn},
			IdentityKey: f.identityKey,
		},
		Adapter: Adapter{
			HTTPAddress:    f.address,
			RequestTimeout: f.requestTimeout,
		},
		Workers: Workers{
			ImportDir: f.importDir,
		},
		FilePath: f.configPath,
	}
}
