package memory

import (
	"context"
	"sync"

	"github.com/mcoot/gamestats/internal/dependencies/ids"
	"github.com/mcoot/gamestats/internal/model"
	"github.com/mcoot/gamestats/internal/ranking"
	"github.com/mcoot/gamestats/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu  sync.RWMutex
	ids ids.Generator

	// insertion order is kept so FindPlayersByName is stable
	players []*model.Player
}

// New creates a new in-memory storage instance
func New() *Storage {
	return NewWithIDs(ids.New())
}

// NewWithIDs creates an in-memory storage with a custom id generator (for testing)
func NewWithIDs(gen ids.Generator) *Storage {
	return &Storage{ids: gen}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) InsertPlayer(ctx context.Context, player *model.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if player.ID == "" {
		id, err := s.ids.NewPlayerID()
		if err != nil {
			return err
		}
		player.ID = id
	}
	s.players = append(s.players, player.Clone())
	return nil
}

func (s *Storage) DeletePlayersByName(ctx context.Context, name string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.players[:0]
	var removed int64
	for _, p := range s.players {
		if p.Name == name {
			removed++
			continue
		}
		kept = append(kept, p)
	}
	s.players = kept
	return removed, nil
}

func (s *Storage) FindPlayersByName(ctx context.Context, name string) ([]*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var found []*model.Player
	for _, p := range s.players {
		if p.Name == name {
			found = append(found, p.Clone())
		}
	}
	return found, nil
}

func (s *Storage) IncrementStats(ctx context.Context, name string, game model.Game, won bool) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	outcome := model.Outcome{Game: game, Won: won}
	var matched int64
	for _, p := range s.players {
		if p.Name == name {
			p.Apply(outcome)
			matched++
		}
	}
	return matched, nil
}

func (s *Storage) TopPlayers(ctx context.Context, game model.Game, n int) ([]*model.Player, error) {
	s.mu.RLock()
	snapshot := make([]*model.Player, 0, len(s.players))
	for _, p := range s.players {
		snapshot = append(snapshot, p.Clone())
	}
	s.mu.RUnlock()

	return ranking.Top(game, snapshot, n), nil
}

func (s *Storage) Describe(ctx context.Context) ([]string, error) {
	return []string{"memory"}, nil
}

func (s *Storage) Ping(ctx context.Context) error {
	return nil
}

func (s *Storage) Close(ctx context.Context) error {
	return nil
}
