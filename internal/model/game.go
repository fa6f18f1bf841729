package model

import "strings"

// Game identifies one of the two supported games
type Game string

const (
	GameC4   Game = "c4"
	GameToot Game = "toot"
)

// Games lists every supported game in display order
var Games = []Game{GameC4, GameToot}

// ParseGame parses a game tag
func ParseGame(s string) (Game, error) {
	switch Game(strings.ToLower(strings.TrimSpace(s))) {
	case GameC4:
		return GameC4, nil
	case GameToot:
		return GameToot, nil
	}
	return "", ErrInvalidGame
}

// Title is the heading used on leaderboards
func (g Game) Title() string {
	switch g {
	case GameC4:
		return "C4"
	case GameToot:
		return "TOOTOTTO"
	}
	return strings.ToUpper(string(g))
}

// PlayedField is the stored counter name for games played
func (g Game) PlayedField() string {
	return string(g) + "gamesplayed"
}

// WonField is the stored counter name for games won
func (g Game) WonField() string {
	return string(g) + "gameswon"
}

// Outcome is the result of one completed game
type Outcome struct {
	Game Game
	Won  bool
}

// Outcome tags
var (
	OutcomeC4Win    = Outcome{Game: GameC4, Won: true}
	OutcomeC4Loss   = Outcome{Game: GameC4, Won: false}
	OutcomeTootWin  = Outcome{Game: GameToot, Won: true}
	OutcomeTootLoss = Outcome{Game: GameToot, Won: false}
)

var outcomeTags = map[string]Outcome{
	"c4-win":    OutcomeC4Win,
	"c4-loss":   OutcomeC4Loss,
	"toot-win":  OutcomeTootWin,
	"toot-loss": OutcomeTootLoss,
	// short tags typed at the console
	"cy": OutcomeC4Win,
	"cn": OutcomeC4Loss,
	"ty": OutcomeTootWin,
	"tn": OutcomeTootLoss,
}

// ParseOutcome accepts the long tags (c4-win) and the console short tags (cy).
// Matching is exact; the caller trims input.
func ParseOutcome(tag string) (Outcome, error) {
	o, ok := outcomeTags[tag]
	if !ok {
		return Outcome{}, ErrInvalidOutcome
	}
	return o, nil
}

// String returns the long tag
func (o Outcome) String() string {
	if o.Won {
		return string(o.Game) + "-win"
	}
	return string(o.Game) + "-loss"
}
