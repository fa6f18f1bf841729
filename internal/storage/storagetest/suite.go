// Package storagetest holds the behaviour every storage backend must share.
package storagetest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/gamestats/internal/model"
	"github.com/mcoot/gamestats/internal/storage"
)

// Suite runs the storage contract against a backend.
// Set NewStorage to build a fresh, empty store for each test.
type Suite struct {
	suite.Suite
	NewStorage func(t *testing.T) storage.Storage

	Storage storage.Storage
	ctx     context.Context
}

func (s *Suite) SetupTest() {
	s.Storage = s.NewStorage(s.T())
	s.ctx = context.Background()
}

func (s *Suite) TearDownTest() {
	if s.Storage != nil {
		_ = s.Storage.Close(s.ctx)
	}
}

func (s *Suite) insert(name, password string) *model.Player {
	p := model.NewPlayer("", name, password)
	s.Require().NoError(s.Storage.InsertPlayer(s.ctx, p))
	return p
}

func (s *Suite) record(name string, game model.Game, won bool, times int) {
	for i := 0; i < times; i++ {
		_, err := s.Storage.IncrementStats(s.ctx, name, game, won)
		s.Require().NoError(err)
	}
}

func (s *Suite) only(name string) *model.Player {
	found, err := s.Storage.FindPlayersByName(s.ctx, name)
	s.Require().NoError(err)
	s.Require().Len(found, 1)
	return found[0]
}

// Insert / find

func (s *Suite) TestInsertAssignsID() {
	p := s.insert("alice", "pw")
	s.NotEmpty(p.ID)
}

func (s *Suite) TestInsertedPlayerStartsAtZero() {
	s.insert("alice", "secret")

	p := s.only("alice")
	s.Equal("alice", p.Name)
	s.Equal("secret", p.Password)
	s.Zero(p.C4GamesPlayed)
	s.Zero(p.C4GamesWon)
	s.Zero(p.TootGamesPlayed)
	s.Zero(p.TootGamesWon)
}

func (s *Suite) TestDuplicateNamesAreAllowed() {
	first := s.insert("alice", "one")
	second := s.insert("alice", "two")

	s.NotEqual(first.ID, second.ID)

	found, err := s.Storage.FindPlayersByName(s.ctx, "alice")
	s.Require().NoError(err)
	s.Len(found, 2)
}

func (s *Suite) TestFindUnknownNameReturnsEmpty() {
	found, err := s.Storage.FindPlayersByName(s.ctx, "nobody")
	s.Require().NoError(err)
	s.Empty(found)
}

func (s *Suite) TestFindIsCaseSensitive() {
	s.insert("Alice", "pw")

	found, err := s.Storage.FindPlayersByName(s.ctx, "alice")
	s.Require().NoError(err)
	s.Empty(found)
}

// Delete

func (s *Suite) TestDeleteRemovesEveryMatch() {
	s.insert("alice", "one")
	s.insert("alice", "two")
	s.insert("bob", "pw")

	removed, err := s.Storage.DeletePlayersByName(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal(int64(2), removed)

	found, err := s.Storage.FindPlayersByName(s.ctx, "alice")
	s.Require().NoError(err)
	s.Empty(found)

	s.only("bob")
}

func (s *Suite) TestDeleteUnknownNameIsNoop() {
	s.insert("bob", "pw")

	removed, err := s.Storage.DeletePlayersByName(s.ctx, "nobody")
	s.Require().NoError(err)
	s.Zero(removed)

	s.only("bob")
}

// Increment

func (s *Suite) TestIncrementLossOnlyTouchesPlayed() {
	s.insert("alice", "pw")

	matched, err := s.Storage.IncrementStats(s.ctx, "alice", model.GameC4, false)
	s.Require().NoError(err)
	s.Equal(int64(1), matched)

	p := s.only("alice")
	s.Equal(1, p.C4GamesPlayed)
	s.Zero(p.C4GamesWon)
	s.Zero(p.TootGamesPlayed)
	s.Zero(p.TootGamesWon)
}

func (s *Suite) TestIncrementWinTouchesBothCounters() {
	s.insert("alice", "pw")

	s.record("alice", model.GameToot, true, 2)

	p := s.only("alice")
	s.Equal(2, p.TootGamesPlayed)
	s.Equal(2, p.TootGamesWon)
	s.Zero(p.C4GamesPlayed)
	s.Zero(p.C4GamesWon)
}

func (s *Suite) TestIncrementAppliesToEveryMatch() {
	s.insert("alice", "one")
	s.insert("alice", "two")
	s.insert("bob", "pw")

	matched, err := s.Storage.IncrementStats(s.ctx, "alice", model.GameC4, true)
	s.Require().NoError(err)
	s.Equal(int64(2), matched)

	found, err := s.Storage.FindPlayersByName(s.ctx, "alice")
	s.Require().NoError(err)
	for _, p := range found {
		s.Equal(1, p.C4GamesWon)
		s.Equal(1, p.C4GamesPlayed)
	}
	s.Zero(s.only("bob").C4GamesPlayed)
}

func (s *Suite) TestIncrementUnknownNameMatchesNothing() {
	matched, err := s.Storage.IncrementStats(s.ctx, "nobody", model.GameC4, true)
	s.Require().NoError(err)
	s.Zero(matched)
}

// Leaderboard

func (s *Suite) TestTopPlayersOrdersByWonThenFewestPlayed() {
	s.insert("A", "pw")
	s.insert("B", "pw")
	s.insert("C", "pw")
	s.record("A", model.GameC4, true, 5)
	s.record("A", model.GameC4, false, 5)
	s.record("B", model.GameC4, true, 5)
	s.record("B", model.GameC4, false, 3)
	s.record("C", model.GameC4, true, 3)

	top, err := s.Storage.TopPlayers(s.ctx, model.GameC4, 4)
	s.Require().NoError(err)
	s.Require().Len(top, 3)
	s.Equal("B", top[0].Name)
	s.Equal("A", top[1].Name)
	s.Equal("C", top[2].Name)
	s.Equal(8, top[0].C4GamesPlayed)
}

func (s *Suite) TestTopPlayersBreaksTiesByName() {
	s.insert("zed", "pw")
	s.insert("amy", "pw")
	s.insert("kim", "pw")

	top, err := s.Storage.TopPlayers(s.ctx, model.GameToot, 3)
	s.Require().NoError(err)
	s.Require().Len(top, 3)
	s.Equal("amy", top[0].Name)
	s.Equal("kim", top[1].Name)
	s.Equal("zed", top[2].Name)
}

func (s *Suite) TestTopPlayersLimitsResults() {
	for _, name := range []string{"a", "b", "c", "d", "e"} {
		s.insert(name, "pw")
	}

	top, err := s.Storage.TopPlayers(s.ctx, model.GameC4, 3)
	s.Require().NoError(err)
	s.Len(top, 3)
}

func (s *Suite) TestTopPlayersUsesRequestedGame() {
	s.insert("c4fan", "pw")
	s.insert("tootfan", "pw")
	s.record("c4fan", model.GameC4, true, 3)
	s.record("tootfan", model.GameToot, true, 1)

	top, err := s.Storage.TopPlayers(s.ctx, model.GameToot, 1)
	s.Require().NoError(err)
	s.Require().Len(top, 1)
	s.Equal("tootfan", top[0].Name)
}

func (s *Suite) TestTopPlayersExcludesDeleted() {
	s.insert("gone", "pw")
	s.insert("stay", "pw")
	s.record("gone", model.GameC4, true, 10)

	_, err := s.Storage.DeletePlayersByName(s.ctx, "gone")
	s.Require().NoError(err)

	top, err := s.Storage.TopPlayers(s.ctx, model.GameC4, 4)
	s.Require().NoError(err)
	s.Require().Len(top, 1)
	s.Equal("stay", top[0].Name)
}

func (s *Suite) TestTopPlayersOnEmptyStore() {
	top, err := s.Storage.TopPlayers(s.ctx, model.GameC4, 4)
	s.Require().NoError(err)
	s.Empty(top)
}

// Health

func (s *Suite) TestPingAndDescribe() {
	s.Require().NoError(s.Storage.Ping(s.ctx))

	names, err := s.Storage.Describe(s.ctx)
	s.Require().NoError(err)
	s.NotEmpty(names)
}
