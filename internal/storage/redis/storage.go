package redis

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mcoot/gamestats/internal/dependencies/ids"
	"github.com/mcoot/gamestats/internal/model"
	"github.com/mcoot/gamestats/internal/ranking"
	"github.com/mcoot/gamestats/internal/storage"
)

// playerHash is the HASH layout of one record
type playerHash struct {
	Name            string `redis:"name"`
	Password        string `redis:"password"`
	C4GamesPlayed   int    `redis:"c4gamesplayed"`
	C4GamesWon      int    `redis:"c4gameswon"`
	TootGamesPlayed int    `redis:"tootgamesplayed"`
	TootGamesWon    int    `redis:"tootgameswon"`
}

func (h *playerHash) toModel(id string) *model.Player {
	return &model.Player{
		ID:              model.PlayerID(id),
		Name:            h.Name,
		Password:        h.Password,
		C4GamesPlayed:   h.C4GamesPlayed,
		C4GamesWon:      h.C4GamesWon,
		TootGamesPlayed: h.TootGamesPlayed,
		TootGamesWon:    h.TootGamesWon,
	}
}

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	ids    ids.Generator
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("%w: %w", model.ErrStoreUnavailable, err)
	}

	return NewWithClient(client, ids.New()), nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, gen ids.Generator) *Storage {
	return &Storage{
		client: client,
		ids:    gen,
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) InsertPlayer(ctx context.Context, player *model.Player) error {
	if player.ID == "" {
		id, err := s.ids.NewPlayerID()
		if err != nil {
			return err
		}
		player.ID = id
	}
	id := string(player.ID)

	// Use transaction for atomic save + index update
	pipe := s.client.TxPipeline()
	pipe.HSet(ctx, playerKey(id), map[string]any{
		"name":                       player.Name,
		"password":                   player.Password,
		model.GameC4.PlayedField():   player.C4GamesPlayed,
		model.GameC4.WonField():      player.C4GamesWon,
		model.GameToot.PlayedField(): player.TootGamesPlayed,
		model.GameToot.WonField():    player.TootGamesWon,
	})
	pipe.SAdd(ctx, nameIndexKey(player.Name), id)
	pipe.SAdd(ctx, allPlayersKey(), id)
	_, err := pipe.Exec(ctx)
	return err
}

func (s *Storage) DeletePlayersByName(ctx context.Context, name string) (int64, error) {
	return deleteByNameScript.Run(ctx, s.client,
		[]string{nameIndexKey(name), allPlayersKey()},
		playerKeyPrefix,
	).Int64()
}

func (s *Storage) FindPlayersByName(ctx context.Context, name string) ([]*model.Player, error) {
	memberIDs, err := s.client.SMembers(ctx, nameIndexKey(name)).Result()
	if err != nil {
		return nil, err
	}
	players, err := s.loadPlayers(ctx, memberIDs)
	if err != nil {
		return nil, err
	}

	// ids are time ordered, so this is registration order
	sort.Slice(players, func(i, j int) bool { return players[i].ID < players[j].ID })
	return players, nil
}

func (s *Storage) IncrementStats(ctx context.Context, name string, game model.Game, won bool) (int64, error) {
	wonField := ""
	if won {
		wonField = game.WonField()
	}
	return incrementByNameScript.Run(ctx, s.client,
		[]string{nameIndexKey(name)},
		playerKeyPrefix, game.PlayedField(), wonField,
	).Int64()
}

func (s *Storage) TopPlayers(ctx context.Context, game model.Game, n int) ([]*model.Player, error) {
	memberIDs, err := s.client.SMembers(ctx, allPlayersKey()).Result()
	if err != nil {
		return nil, err
	}
	players, err := s.loadPlayers(ctx, memberIDs)
	if err != nil {
		return nil, err
	}
	return ranking.Top(game, players, n), nil
}

func (s *Storage) Describe(ctx context.Context) ([]string, error) {
	opts := s.client.Options()
	return []string{fmt.Sprintf("redis://%s/%d", opts.Addr, opts.DB)}, nil
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close closes the Redis connection
func (s *Storage) Close(ctx context.Context) error {
	return s.client.Close()
}

// loadPlayers fetches the hashes for ids in one round trip.
// Ids whose hash has gone are skipped.
func (s *Storage) loadPlayers(ctx context.Context, memberIDs []string) ([]*model.Player, error) {
	if len(memberIDs) == 0 {
		return nil, nil
	}

	pipe := s.client.Pipeline()
	cmds := make([]*redis.MapStringStringCmd, len(memberIDs))
	for i, id := range memberIDs {
		cmds[i] = pipe.HGetAll(ctx, playerKey(id))
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, err
	}

	players := make([]*model.Player, 0, len(memberIDs))
	for i, cmd := range cmds {
		if len(cmd.Val()) == 0 {
			continue
		}
		var h playerHash
		if err := cmd.Scan(&h); err != nil {
			return nil, fmt.Errorf("failed to decode player %s: %w", memberIDs[i], err)
		}
		players = append(players, h.toModel(memberIDs[i]))
	}
	return players, nil
}
