package accounts

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mcoot/gamestats/internal/model"
	"github.com/mcoot/gamestats/internal/services/credentials"
	"github.com/mcoot/gamestats/internal/storage"
)

// Service handles account registration, removal, sign-in and stat recording
type Service struct {
	storage storage.Storage
	scheme  credentials.Scheme
	logger  *slog.Logger
}

// New creates a new accounts Service
func New(storage storage.Storage, scheme credentials.Scheme, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		scheme:  scheme,
		logger:  logger,
	}
}

// Register creates a new account with zeroed statistics.
// Names are not checked for uniqueness.
func (s *Service) Register(ctx context.Context, name, password string) (*model.Player, error) {
	stored, err := s.scheme.Encode(password)
	if err != nil {
		return nil, fmt.Errorf("encode password: %w", err)
	}

	player := model.NewPlayer("", name, stored)
	if err := s.storage.InsertPlayer(ctx, player); err != nil {
		return nil, fmt.Errorf("insert player: %w", err)
	}

	s.logger.Info("player registered",
		slog.String("name", name),
		slog.String("id", string(player.ID)))
	return player, nil
}

// Delete removes every account with the name and returns how many went.
// Deleting an unknown name succeeds.
func (s *Service) Delete(ctx context.Context, name string) (int64, error) {
	removed, err := s.storage.DeletePlayersByName(ctx, name)
	if err != nil {
		return 0, fmt.Errorf("delete players: %w", err)
	}

	s.logger.Info("players deleted",
		slog.String("name", name),
		slog.Int64("removed", removed))
	return removed, nil
}

// Authenticate returns the first account with the name whose stored password
// matches. Unknown names and wrong passwords both yield ErrInvalidCredentials.
func (s *Service) Authenticate(ctx context.Context, name, password string) (*model.Player, error) {
	candidates, err := s.storage.FindPlayersByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("find players: %w", err)
	}

	for _, p := range candidates {
		if s.scheme.Matches(p.Password, password) {
			s.logger.Debug("player signed in", slog.String("name", name))
			return p, nil
		}
	}
	return nil, model.ErrInvalidCredentials
}

// RecordOutcome counts one finished game for every account with the name
func (s *Service) RecordOutcome(ctx context.Context, name string, outcome model.Outcome) (int64, error) {
	matched, err := s.storage.IncrementStats(ctx, name, outcome.Game, outcome.Won)
	if err != nil {
		return 0, fmt.Errorf("increment stats: %w", err)
	}

	s.logger.Info("outcome recorded",
		slog.String("name", name),
		slog.String("outcome", outcome.String()),
		slog.Int64("matched", matched))
	return matched, nil
}
