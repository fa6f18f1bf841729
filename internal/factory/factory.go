package factory

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/mcoot/gamestats/internal/config"
	"github.com/mcoot/gamestats/internal/services/accounts"
	"github.com/mcoot/gamestats/internal/services/credentials"
	"github.com/mcoot/gamestats/internal/services/leaderboard"
	"github.com/mcoot/gamestats/internal/storage"
	"github.com/mcoot/gamestats/internal/storage/memory"
	mongostorage "github.com/mcoot/gamestats/internal/storage/mongo"
	redisstorage "github.com/mcoot/gamestats/internal/storage/redis"
	sqlitestorage "github.com/mcoot/gamestats/internal/storage/sqlite"
)

// App contains all wired application components
type App struct {
	// Storage is the single long-lived store handle
	Storage storage.Storage

	// Services
	AccountService     *accounts.Service
	LeaderboardService *leaderboard.Service

	Logger *slog.Logger
}

// New creates a new application with all dependencies wired.
// Store connection failures are returned; callers treat them as fatal.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	// Use no-op logger if not provided
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	scheme, err := credentials.New(cfg.Credentials)
	if err != nil {
		return nil, err
	}

	store, err := openStore(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", cfg.Store, err)
	}
	logger.Debug("store connected", slog.String("store", cfg.Store))

	return newWithDependencies(store, scheme, logger), nil
}

func openStore(ctx context.Context, cfg *config.Config) (storage.Storage, error) {
	switch cfg.Store {
	case config.StoreMemory:
		return memory.New(), nil
	case config.StoreMongo:
		return mongostorage.New(ctx, cfg.Mongo)
	case config.StoreRedis:
		return redisstorage.New(cfg.Redis)
	case config.StoreSQLite:
		return sqlitestorage.New(ctx, cfg.SQLite)
	}
	return nil, fmt.Errorf("%w: unknown store %q", config.ErrInvalidConfig, cfg.Store)
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, scheme credentials.Scheme, logger *slog.Logger) *App {
	return &App{
		Storage:            store,
		AccountService:     accounts.New(store, scheme, logger),
		LeaderboardService: leaderboard.New(store),
		Logger:             logger,
	}
}

// Close releases the store
func (a *App) Close(ctx context.Context) error {
	return a.Storage.Close(ctx)
}
