package storage

//go:generate mockgen -destination=mocks/mock_storage.go -package=mocks github.com/mcoot/gamestats/internal/storage Storage

import (
	"context"

	"github.com/mcoot/gamestats/internal/model"
)

// Storage defines the interface for the player account and statistics store.
//
// Names are not unique: lookups, deletes and increments act on every record
// with a matching name.
type Storage interface {
	// InsertPlayer appends a new record. The store assigns the ID if empty.
	InsertPlayer(ctx context.Context, player *model.Player) error

	// DeletePlayersByName removes every record with the name and returns how
	// many were removed. Zero is not an error.
	DeletePlayersByName(ctx context.Context, name string) (int64, error)

	// FindPlayersByName returns every record with the name
	FindPlayersByName(ctx context.Context, name string) ([]*model.Player, error)

	// IncrementStats atomically adds one game played, and one won if won is
	// set, to every record with the name. Returns the number of records matched.
	IncrementStats(ctx context.Context, name string, game model.Game, won bool) (int64, error)

	// TopPlayers returns at most n records in leaderboard order for the game
	TopPlayers(ctx context.Context, game model.Game, n int) ([]*model.Player, error)

	// Describe lists what the store holds (database names for MongoDB)
	Describe(ctx context.Context) ([]string, error)

	// Ping verifies the store is reachable
	Ping(ctx context.Context) error

	// Close releases the connection
	Close(ctx context.Context) error
}
