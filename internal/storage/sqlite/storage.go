package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/mcoot/gamestats/internal/model"
	"github.com/mcoot/gamestats/internal/storage"
)

//go:embed schema.sql
var ddl string

// Config holds SQLite settings
type Config struct {
	// Path is the database file
	Path string `yaml:"path"`
}

// DefaultConfig returns the default SQLite configuration
func DefaultConfig() Config {
	return Config{Path: "gamestats.db"}
}

// Storage is a SQLite-backed implementation of the storage interface
type Storage struct {
	db   *sql.DB
	path string
}

// New opens (or creates) the database file and ensures the schema exists
func New(ctx context.Context, cfg Config) (*Storage, error) {
	db, err := sql.Open("sqlite3", cfg.Path)
	if err != nil {
		return nil, err
	}
	// Need to ping the database to check if the file could be opened
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: %w", model.ErrStoreUnavailable, err)
	}
	if err := InitializeTables(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Storage{db: db, path: cfg.Path}, nil
}

// InitializeTables creates the players table if missing
func InitializeTables(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, ddl)
	return err
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) InsertPlayer(ctx context.Context, player *model.Player) error {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO players (name, password, c4gamesplayed, c4gameswon, tootgamesplayed, tootgameswon)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		player.Name, player.Password,
		player.C4GamesPlayed, player.C4GamesWon,
		player.TootGamesPlayed, player.TootGamesWon,
	)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	player.ID = formatID(id)
	return nil
}

func (s *Storage) DeletePlayersByName(ctx context.Context, name string) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM players WHERE name = ?`, name)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (s *Storage) FindPlayersByName(ctx context.Context, name string) ([]*model.Player, error) {
	return s.query(ctx, selectPlayers+` WHERE name = ? ORDER BY id`, name)
}

// IncrementStats updates in a single statement; SQLite applies it atomically
func (s *Storage) IncrementStats(ctx context.Context, name string, game model.Game, won bool) (int64, error) {
	// column names come from model.Game, never from user input
	played := game.PlayedField()
	set := fmt.Sprintf("%s = %s + 1", played, played)
	if won {
		wonCol := game.WonField()
		set += fmt.Sprintf(", %s = %s + 1", wonCol, wonCol)
	}

	res, err := s.db.ExecContext(ctx, `UPDATE players SET `+set+` WHERE name = ?`, name)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (s *Storage) TopPlayers(ctx context.Context, game model.Game, n int) ([]*model.Player, error) {
	if n <= 0 {
		return nil, nil
	}
	order := fmt.Sprintf(" ORDER BY %s DESC, %s ASC, name ASC, id ASC LIMIT ?",
		game.WonField(), game.PlayedField())
	return s.query(ctx, selectPlayers+order, n)
}

func (s *Storage) Describe(ctx context.Context) ([]string, error) {
	return []string{"sqlite:" + s.path}, nil
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the database handle
func (s *Storage) Close(ctx context.Context) error {
	return s.db.Close()
}

// formatID zero-pads the rowid so ids compare as strings the way the
// table orders them
func formatID(id int64) model.PlayerID {
	return model.PlayerID(fmt.Sprintf("%020d", id))
}

const selectPlayers = `SELECT id, name, password, c4gamesplayed, c4gameswon, tootgamesplayed, tootgameswon FROM players`

func (s *Storage) query(ctx context.Context, query string, args ...any) ([]*model.Player, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var players []*model.Player
	for rows.Next() {
		var (
			id int64
			p  model.Player
		)
		if err := rows.Scan(&id, &p.Name, &p.Password,
			&p.C4GamesPlayed, &p.C4GamesWon, &p.TootGamesPlayed, &p.TootGamesWon); err != nil {
			return nil, err
		}
		p.ID = formatID(id)
		players = append(players, &p)
	}
	return players, rows.Err()
}
