package factory

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/gamestats/internal/config"
	"github.com/mcoot/gamestats/internal/model"
	"github.com/mcoot/gamestats/internal/testutil"
)

func TestNewWiresEachStore(t *testing.T) {
	mini := miniredis.RunT(t)

	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"memory", func(c *config.Config) { c.Store = config.StoreMemory }},
		{"redis", func(c *config.Config) {
			c.Store = config.StoreRedis
			c.Redis.URL = "redis://" + mini.Addr()
		}},
		{"sqlite", func(c *config.Config) {
			c.Store = config.StoreSQLite
			c.SQLite.Path = filepath.Join(t.TempDir(), "stats.db")
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			cfg := config.Default()
			tt.mutate(cfg)

			app, err := New(ctx, cfg, testutil.NopLogger())
			require.NoError(t, err)
			defer app.Close(ctx)

			_, err = app.AccountService.Register(ctx, "alice", "pw")
			require.NoError(t, err)
			_, err = app.AccountService.RecordOutcome(ctx, "alice", model.OutcomeC4Win)
			require.NoError(t, err)

			board, err := app.LeaderboardService.Top(ctx, model.GameC4, 4)
			require.NoError(t, err)
			require.Len(t, board.Entries, 1)
			assert.Equal(t, 1, board.Entries[0].Won)
		})
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Store = "postgres"

	_, err := New(context.Background(), cfg, nil)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestNewFailsWhenStoreUnreachable(t *testing.T) {
	mini, err := miniredis.Run()
	require.NoError(t, err)
	addr := mini.Addr()
	mini.Close()

	cfg := config.Default()
	cfg.Store = config.StoreRedis
	cfg.Redis.URL = "redis://" + addr

	_, err = New(context.Background(), cfg, nil)
	assert.ErrorIs(t, err, model.ErrStoreUnavailable)
}

func TestTestAppUsesSequentialIDs(t *testing.T) {
	app := NewTestApp()

	p, err := app.AccountService.Register(context.Background(), "alice", "pw")
	require.NoError(t, err)
	assert.Equal(t, model.PlayerID("p-0001"), p.ID)
}
