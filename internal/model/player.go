package model

// PlayerID identifies a stored record. Names are not unique, ids are.
type PlayerID string

// Player is one account together with its per-game statistics
type Player struct {
	ID       PlayerID `json:"id"`
	Name     string   `json:"name"`
	Password string   `json:"-"`

	C4GamesPlayed   int `json:"c4_games_played"`
	C4GamesWon      int `json:"c4_games_won"`
	TootGamesPlayed int `json:"toot_games_played"`
	TootGamesWon    int `json:"toot_games_won"`
}

// NewPlayer returns a record with all counters at zero
func NewPlayer(id PlayerID, name, password string) *Player {
	return &Player{
		ID:       id,
		Name:     name,
		Password: password,
	}
}

// Stats returns the (won, played) pair for a game
func (p *Player) Stats(game Game) (won, played int) {
	switch game {
	case GameC4:
		return p.C4GamesWon, p.C4GamesPlayed
	case GameToot:
		return p.TootGamesWon, p.TootGamesPlayed
	}
	return 0, 0
}

// Apply records an outcome on an in-process copy of the record.
// Stores that cannot increment server-side call this while holding their own lock.
func (p *Player) Apply(o Outcome) {
	switch o.Game {
	case GameC4:
		p.C4GamesPlayed++
		if o.Won {
			p.C4GamesWon++
		}
	case GameToot:
		p.TootGamesPlayed++
		if o.Won {
			p.TootGamesWon++
		}
	}
}

// Clone returns a copy safe to hand out of a store
func (p *Player) Clone() *Player {
	c := *p
	return &c
}
