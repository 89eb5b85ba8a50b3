package config

import (
	"fmt"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

// Config is populated from environment variables. AUTH_USERS and
// AUTH_API_KEYS are comma-separated username:value pairs; the defaults are
// demo credentials where "auditor" deliberately has no provisioned key.
type Config struct {
	Port     string `env:"PORT" envDefault:"8080"`
	Env      string `env:"APP_ENV" envDefault:"development"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	DataDir string `env:"DATA_DIR" envDefault:"data"`
	DBFile  string `env:"DB_FILE_NAME" envDefault:"salary-sqlite.db"`

	AuthUsers   map[string]string `env:"AUTH_USERS" envDefault:"hruser:hrpass123,auditor:auditpass456"`
	AuthAPIKeys map[string]string `env:"AUTH_API_KEYS" envDefault:"hruser:8cc3cfd2f8a34c04a1b6037a5a26ee05"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("error parsing env config: %w", err)
	}
	return cfg, nil
}

// DBPath is the sqlite file location under the data directory.
func (c Config) DBPath() string {
	return filepath.Join(c.DataDir, c.DBFile)
}

func (c Config) IsProduction() bool {
	return c.Env == "production"
}
