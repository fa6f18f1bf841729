package model

import "fmt"

// LeaderboardEntry is one ranked line of a leaderboard
type LeaderboardEntry struct {
	Rank    int     `json:"rank"`
	Name    string  `json:"name"`
	Won     int     `json:"won"`
	Played  int     `json:"played"`
	WinRate float64 `json:"win_rate"`
}

// Leaderboard is the top-N view of one game
type Leaderboard struct {
	Game    Game                `json:"game"`
	Top     int                 `json:"top"`
	Entries []*LeaderboardEntry `json:"entries"`
}

// WinRatePercent formats the win rate with no decimals
func (e *LeaderboardEntry) WinRatePercent() string {
	return fmt.Sprintf("%.0f", e.WinRate)
}
