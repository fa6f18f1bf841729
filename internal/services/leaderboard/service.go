package leaderboard

import (
	"context"
	"fmt"

	"github.com/mcoot/gamestats/internal/model"
	"github.com/mcoot/gamestats/internal/ranking"
	"github.com/mcoot/gamestats/internal/storage"
)

// Board sizes shown by the console
const (
	DefaultC4Top   = 4
	DefaultTootTop = 3
)

// Service builds leaderboards from the store
type Service struct {
	storage storage.Storage
}

// New creates a new leaderboard Service
func New(storage storage.Storage) *Service {
	return &Service{storage: storage}
}

// Top returns the n best players for a game. The store pre-sorts and
// limits; entries are re-ranked here so every backend agrees.
func (s *Service) Top(ctx context.Context, game model.Game, n int) (*model.Leaderboard, error) {
	if n <= 0 {
		return nil, model.ErrInvalidLimit
	}

	players, err := s.storage.TopPlayers(ctx, game, n)
	if err != nil {
		return nil, fmt.Errorf("load %s leaderboard: %w", game, err)
	}

	return &model.Leaderboard{
		Game:    game,
		Top:     n,
		Entries: ranking.Rank(game, players, n),
	}, nil
}

// Standard returns the two boards the console shows: c4 top 4, toot top 3
func (s *Service) Standard(ctx context.Context) ([]*model.Leaderboard, error) {
	c4, err := s.Top(ctx, model.GameC4, DefaultC4Top)
	if err != nil {
		return nil, err
	}
	toot, err := s.Top(ctx, model.GameToot, DefaultTootTop)
	if err != nil {
		return nil, err
	}
	return []*model.Leaderboard{c4, toot}, nil
}
