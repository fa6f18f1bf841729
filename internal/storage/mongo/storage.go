package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mcoot/gamestats/internal/model"
	"github.com/mcoot/gamestats/internal/storage"
)

// Storage is a MongoDB-backed implementation of the storage interface.
// One collection holds one document per player.
type Storage struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// New connects to MongoDB and verifies the connection
func New(ctx context.Context, cfg Config) (*Storage, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", model.ErrStoreUnavailable, err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("%w: %w", model.ErrStoreUnavailable, err)
	}

	return NewWithCollection(client.Database(cfg.Database).Collection(cfg.Collection)), nil
}

// NewWithCollection creates a storage over an existing collection (for testing)
func NewWithCollection(coll *mongo.Collection) *Storage {
	return &Storage{
		client: coll.Database().Client(),
		coll:   coll,
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func byName(name string) bson.D {
	return bson.D{{Key: "name", Value: name}}
}

func (s *Storage) InsertPlayer(ctx context.Context, player *model.Player) error {
	doc, err := newPlayerDocument(player)
	if err != nil {
		return err
	}

	res, err := s.coll.InsertOne(ctx, doc)
	if err != nil {
		return err
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return errors.New("unexpected inserted id type")
	}
	player.ID = model.PlayerID(oid.Hex())
	return nil
}

func (s *Storage) DeletePlayersByName(ctx context.Context, name string) (int64, error) {
	res, err := s.coll.DeleteMany(ctx, byName(name))
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (s *Storage) FindPlayersByName(ctx context.Context, name string) ([]*model.Player, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	return s.find(ctx, byName(name), opts)
}

// IncrementStats applies a single $inc with updateMany, so concurrent
// clients never lose an update.
func (s *Storage) IncrementStats(ctx context.Context, name string, game model.Game, won bool) (int64, error) {
	inc := bson.D{{Key: game.PlayedField(), Value: int32(1)}}
	if won {
		inc = append(inc, bson.E{Key: game.WonField(), Value: int32(1)})
	}

	res, err := s.coll.UpdateMany(ctx, byName(name), bson.D{{Key: "$inc", Value: inc}})
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}

// TopPlayers delegates ordering and limiting to the server. The sort keys
// are the ones ranking.Less uses.
func (s *Storage) TopPlayers(ctx context.Context, game model.Game, n int) ([]*model.Player, error) {
	if n <= 0 {
		return nil, nil
	}

	opts := options.Find().
		SetSort(bson.D{
			{Key: game.WonField(), Value: -1},
			{Key: game.PlayedField(), Value: 1},
			{Key: "name", Value: 1},
			{Key: "_id", Value: 1},
		}).
		SetLimit(int64(n))
	return s.find(ctx, bson.D{}, opts)
}

func (s *Storage) Describe(ctx context.Context) ([]string, error) {
	return s.client.ListDatabaseNames(ctx, bson.D{})
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}

// Close disconnects the client
func (s *Storage) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func (s *Storage) find(ctx context.Context, filter bson.D, opts *options.FindOptions) ([]*model.Player, error) {
	cursor, err := s.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}

	var docs []playerDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	players := make([]*model.Player, 0, len(docs))
	for i := range docs {
		players = append(players, docs[i].toModel())
	}
	return players, nil
}
