// Package ranking orders player records into leaderboards.
//
// Order is games won descending, then games played ascending, then name
// ascending, then id ascending. Ids are unique, so the order is total and
// repeated runs over the same records always agree.
package ranking

import (
	"sort"

	"github.com/mcoot/gamestats/internal/model"
)

// Less reports whether a ranks above b for the given game
func Less(game model.Game, a, b *model.Player) bool {
	aWon, aPlayed := a.Stats(game)
	bWon, bPlayed := b.Stats(game)

	if aWon != bWon {
		return aWon > bWon
	}
	if aPlayed != bPlayed {
		return aPlayed < bPlayed
	}
	if a.Name != b.Name {
		return a.Name < b.Name
	}
	return a.ID < b.ID
}

// Sort orders players in place, best first
func Sort(game model.Game, players []*model.Player) {
	sort.SliceStable(players, func(i, j int) bool {
		return Less(game, players[i], players[j])
	})
}

// Top returns the first n players in rank order without modifying the input
func Top(game model.Game, players []*model.Player, n int) []*model.Player {
	sorted := make([]*model.Player, len(players))
	copy(sorted, players)
	Sort(game, sorted)
	if n >= 0 && len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// WinRate returns won/played as a percentage.
// Anything that is not a positive number, including the NaN from played == 0, is 0.
func WinRate(won, played int) float64 {
	rate := float64(won) / float64(played) * 100
	if !(rate > 0) {
		return 0
	}
	return rate
}

// Rank builds the top-n leaderboard entries for a game
func Rank(game model.Game, players []*model.Player, n int) []*model.LeaderboardEntry {
	top := Top(game, players, n)
	entries := make([]*model.LeaderboardEntry, 0, len(top))
	for i, p := range top {
		won, played := p.Stats(game)
		entries = append(entries, &model.LeaderboardEntry{
			Rank:    i + 1,
			Name:    p.Name,
			Won:     won,
			Played:  played,
			WinRate: WinRate(won, played),
		})
	}
	return entries
}
