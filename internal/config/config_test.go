package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gamestats.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefaultsMatchExistingDeployment(t *testing.T) {
	cfg := Default()

	assert.Equal(t, StoreMongo, cfg.Store)
	assert.Equal(t, "mongodb://localhost:27017", cfg.Mongo.URI)
	assert.Equal(t, "tempFromCompass", cfg.Mongo.Database)
	assert.Equal(t, "players", cfg.Mongo.Collection)
	assert.Equal(t, "plaintext", cfg.Credentials)
	assert.NoError(t, cfg.Validate())
}

func TestLoadWithoutFileUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadReadsYAML(t *testing.T) {
	path := writeFile(t, `
store: redis
redis:
  url: redis://cache:6379/2
credentials: bcrypt
log_level: debug
operation_timeout: 5s
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, StoreRedis, cfg.Store)
	assert.Equal(t, "redis://cache:6379/2", cfg.Redis.URL)
	assert.Equal(t, 10, cfg.Redis.PoolSize, "unset keys keep defaults")
	assert.Equal(t, "bcrypt", cfg.Credentials)
	assert.Equal(t, 5*time.Second, cfg.OperationTimeout)

	level, err := cfg.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestLoadMissingFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadMalformedFileFails(t *testing.T) {
	_, err := Load(writeFile(t, "store: [unterminated"))
	assert.Error(t, err)
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeFile(t, "store: redis\n")
	t.Setenv("GAMESTATS_STORE", "sqlite")
	t.Setenv("SQLITE_PATH", "/tmp/stats.db")
	t.Setenv("MONGO_DATABASE", "prod")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, StoreSQLite, cfg.Store)
	assert.Equal(t, "/tmp/stats.db", cfg.SQLite.Path)
	assert.Equal(t, "prod", cfg.Mongo.Database)
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown store", func(c *Config) { c.Store = "postgres" }},
		{"unknown scheme", func(c *Config) { c.Credentials = "md5" }},
		{"unknown level", func(c *Config) { c.LogLevel = "loud" }},
		{"negative timeout", func(c *Config) { c.OperationTimeout = -time.Second }},
		{"zero mongo connect timeout", func(c *Config) { c.Mongo.ConnectTimeout = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}
