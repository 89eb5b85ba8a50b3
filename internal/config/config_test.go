package config_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/paambaati/sqlary/internal/config"
)

func TestLoad(t *testing.T) {
	t.Run("reads environment overrides", func(t *testing.T) {
		t.Setenv("PORT", "9090")
		t.Setenv("APP_ENV", "production")
		t.Setenv("DATA_DIR", "/var/lib/sqlary")
		t.Setenv("DB_FILE_NAME", "salaries.db")
		t.Setenv("AUTH_USERS", "alice:s3cret,bob:hunter2")
		t.Setenv("AUTH_API_KEYS", "alice:key-alice")

		cfg, err := config.Load()

		assert.NoError(t, err)
		assert.Equal(t, "9090", cfg.Port)
		assert.True(t, cfg.IsProduction())
		assert.Equal(t, filepath.Join("/var/lib/sqlary", "salaries.db"), cfg.DBPath())
		assert.Equal(t, map[string]string{"alice": "s3cret", "bob": "hunter2"}, cfg.AuthUsers)
		assert.Equal(t, map[string]string{"alice": "key-alice"}, cfg.AuthAPIKeys)
	})

	t.Run("demo defaults include a user without a key", func(t *testing.T) {
		t.Setenv("AUTH_USERS", "hruser:hrpass123,auditor:auditpass456")
		t.Setenv("AUTH_API_KEYS", "hruser:8cc3cfd2f8a34c04a1b6037a5a26ee05")

		cfg, err := config.Load()

		assert.NoError(t, err)
		_, hasPassword := cfg.AuthUsers["auditor"]
		_, hasKey := cfg.AuthAPIKeys["auditor"]
		assert.True(t, hasPassword)
		assert.False(t, hasKey)
	})
}
