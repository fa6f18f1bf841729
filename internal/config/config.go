package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/mcoot/gamestats/internal/services/credentials"
	mongostorage "github.com/mcoot/gamestats/internal/storage/mongo"
	redisstorage "github.com/mcoot/gamestats/internal/storage/redis"
	sqlitestorage "github.com/mcoot/gamestats/internal/storage/sqlite"
)

// Store type constants
const (
	StoreMemory = "memory"
	StoreMongo  = "mongo"
	StoreRedis  = "redis"
	StoreSQLite = "sqlite"
)

// ErrInvalidConfig wraps every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// Config holds application configuration
type Config struct {
	// Store selects the backend: mongo, redis, sqlite or memory
	Store string `yaml:"store"`

	Mongo  mongostorage.Config  `yaml:"mongo"`
	Redis  redisstorage.Config  `yaml:"redis"`
	SQLite sqlitestorage.Config `yaml:"sqlite"`

	// Credentials selects the password scheme: plaintext or bcrypt
	Credentials string `yaml:"credentials"`

	LogLevel string `yaml:"log_level"`

	// OperationTimeout bounds each store call made for one console action.
	// Zero disables the bound.
	OperationTimeout time.Duration `yaml:"operation_timeout"`
}

// Default returns a Config with default values
func Default() *Config {
	return &Config{
		Store:            StoreMongo,
		Mongo:            mongostorage.DefaultConfig(),
		Redis:            redisstorage.DefaultConfig(),
		SQLite:           sqlitestorage.DefaultConfig(),
		Credentials:      credentials.SchemePlaintext,
		LogLevel:         "warn",
		OperationTimeout: 30 * time.Second,
	}
}

// Load builds a Config from defaults, then the YAML file at path (if set),
// then environment overrides
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config: %w", err)
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("GAMESTATS_STORE"); v != "" {
		c.Store = v
	}
	if v := os.Getenv("MONGO_URI"); v != "" {
		c.Mongo.URI = v
	}
	if v := os.Getenv("MONGO_DATABASE"); v != "" {
		c.Mongo.Database = v
	}
	if v := os.Getenv("MONGO_COLLECTION"); v != "" {
		c.Mongo.Collection = v
	}
	if v := os.Getenv("REDIS_URL"); v != "" {
		c.Redis.URL = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		c.SQLite.Path = v
	}
	if v := os.Getenv("GAMESTATS_CREDENTIALS"); v != "" {
		c.Credentials = v
	}
	if v := os.Getenv("GAMESTATS_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
}

// Validate checks the values that would otherwise fail later at startup
func (c *Config) Validate() error {
	switch c.Store {
	case StoreMemory, StoreMongo, StoreRedis, StoreSQLite:
	default:
		return fmt.Errorf("%w: store must be one of mongo, redis, sqlite, memory (got %q)", ErrInvalidConfig, c.Store)
	}
	if _, err := credentials.New(c.Credentials); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, err := c.SlogLevel(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.OperationTimeout < 0 {
		return fmt.Errorf("%w: operation_timeout must not be negative", ErrInvalidConfig)
	}
	if c.Store == StoreMongo && c.Mongo.ConnectTimeout <= 0 {
		return fmt.Errorf("%w: mongo.connect_timeout must be positive", ErrInvalidConfig)
	}
	return nil
}

// SlogLevel parses LogLevel
func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return 0, err
	}
	return level, nil
}
