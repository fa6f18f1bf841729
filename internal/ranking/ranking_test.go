package ranking

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/mcoot/gamestats/internal/model"
)

func c4Player(id, name string, won, played int) *model.Player {
	return &model.Player{
		ID:            model.PlayerID(id),
		Name:          name,
		C4GamesWon:    won,
		C4GamesPlayed: played,
	}
}

func names(entries []*model.LeaderboardEntry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Name)
	}
	return out
}

func TestRankOrdersByWonThenFewestPlayed(t *testing.T) {
	players := []*model.Player{
		c4Player("1", "A", 5, 10),
		c4Player("2", "B", 5, 8),
		c4Player("3", "C", 3, 3),
	}

	entries := Rank(model.GameC4, players, 10)

	assert.Equal(t, []string{"B", "A", "C"}, names(entries))
}

func TestRankAssignsOneBasedPositions(t *testing.T) {
	players := []*model.Player{
		c4Player("1", "A", 1, 4),
		c4Player("2", "B", 3, 4),
	}

	got := Rank(model.GameC4, players, 2)
	want := []*model.LeaderboardEntry{
		{Rank: 1, Name: "B", Won: 3, Played: 4, WinRate: 75},
		{Rank: 2, Name: "A", Won: 1, Played: 4, WinRate: 25},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Rank() mismatch (-want +got):\n%s", diff)
	}
}

func TestRankBreaksFullTiesByNameThenID(t *testing.T) {
	players := []*model.Player{
		c4Player("9", "zed", 2, 2),
		c4Player("5", "amy", 2, 2),
		c4Player("3", "amy", 2, 2),
	}

	top := Top(model.GameC4, players, 3)

	ids := []model.PlayerID{top[0].ID, top[1].ID, top[2].ID}
	assert.Equal(t, []model.PlayerID{"3", "5", "9"}, ids)
}

func TestRankIsDeterministicAcrossInputOrders(t *testing.T) {
	a := c4Player("a", "same", 1, 2)
	b := c4Player("b", "same", 1, 2)
	c := c4Player("c", "other", 1, 2)

	first := Top(model.GameC4, []*model.Player{a, b, c}, 3)
	second := Top(model.GameC4, []*model.Player{c, b, a}, 3)

	assert.Equal(t, first, second)
}

func TestRankLimitsToN(t *testing.T) {
	players := []*model.Player{
		c4Player("1", "A", 1, 1),
		c4Player("2", "B", 2, 2),
		c4Player("3", "C", 3, 3),
		c4Player("4", "D", 4, 4),
	}

	assert.Len(t, Rank(model.GameC4, players, 3), 3)
	assert.Empty(t, Rank(model.GameC4, players, 0))
	assert.Empty(t, Rank(model.GameC4, nil, 4))
}

func TestRankUsesRequestedGameOnly(t *testing.T) {
	players := []*model.Player{
		{ID: "1", Name: "c4star", C4GamesWon: 9, C4GamesPlayed: 9},
		{ID: "2", Name: "tootstar", TootGamesWon: 1, TootGamesPlayed: 1},
	}

	assert.Equal(t, []string{"tootstar", "c4star"}, names(Rank(model.GameToot, players, 2)))
}

func TestTopDoesNotReorderInput(t *testing.T) {
	players := []*model.Player{
		c4Player("1", "A", 0, 0),
		c4Player("2", "B", 1, 1),
	}

	_ = Top(model.GameC4, players, 2)

	assert.Equal(t, model.PlayerID("1"), players[0].ID)
}

func TestWinRate(t *testing.T) {
	assert.Equal(t, 0.0, WinRate(0, 0))
	assert.Equal(t, 0.0, WinRate(0, 5))
	assert.Equal(t, 100.0, WinRate(3, 3))
	assert.InDelta(t, 62.5, WinRate(5, 8), 1e-9)
}

func TestWinRateNeverUndefined(t *testing.T) {
	for played := 0; played < 5; played++ {
		for won := 0; won <= played; won++ {
			rate := WinRate(won, played)
			assert.False(t, math.IsNaN(rate))
			assert.GreaterOrEqual(t, rate, 0.0)
		}
	}
}

func TestZeroPlayedDisplaysZero(t *testing.T) {
	entries := Rank(model.GameC4, []*model.Player{c4Player("1", "new", 0, 0)}, 1)

	assert.Equal(t, "0", entries[0].WinRatePercent())
}
