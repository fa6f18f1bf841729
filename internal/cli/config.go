package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mcoot/gamestats/internal/config"
)

// Options holds command-line settings layered over the config file
type Options struct {
	ConfigPath string
	Store      string
	LogLevel   string
	Output     string
}

// DefaultOptions returns Options with default values
func DefaultOptions() *Options {
	return &Options{
		ConfigPath: os.Getenv("GAMESTATS_CONFIG"),
		Output:     getEnvOrDefault("GAMESTATS_OUTPUT", "text"),
	}
}

// LoadConfig reads the config file and environment, then applies any
// flags that were set
func (o *Options) LoadConfig() (*config.Config, error) {
	cfg, err := config.Load(o.ConfigPath)
	if err != nil {
		return nil, err
	}

	if o.Store != "" {
		cfg.Store = o.Store
	}
	if o.LogLevel != "" {
		cfg.LogLevel = o.LogLevel
	}
	if o.Output != "text" && o.Output != "json" {
		return nil, fmt.Errorf("%w: unknown output format %q", config.ErrInvalidConfig, o.Output)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// NewLogger builds the JSON logger for the configured level
func NewLogger(cfg *config.Config, w io.Writer) (*slog.Logger, error) {
	level, err := cfg.SlogLevel()
	if err != nil {
		return nil, err
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	})), nil
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
