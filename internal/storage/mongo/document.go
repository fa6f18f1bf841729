package mongo

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mcoot/gamestats/internal/model"
)

// playerDocument is the stored shape of a record. Counters are int32 to
// match documents already in the collection.
type playerDocument struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	Name            string             `bson:"name"`
	Password        string             `bson:"password"`
	C4GamesPlayed   int32              `bson:"c4gamesplayed"`
	C4GamesWon      int32              `bson:"c4gameswon"`
	TootGamesPlayed int32              `bson:"tootgamesplayed"`
	TootGamesWon    int32              `bson:"tootgameswon"`
}

func newPlayerDocument(p *model.Player) (*playerDocument, error) {
	doc := &playerDocument{
		Name:            p.Name,
		Password:        p.Password,
		C4GamesPlayed:   int32(p.C4GamesPlayed),
		C4GamesWon:      int32(p.C4GamesWon),
		TootGamesPlayed: int32(p.TootGamesPlayed),
		TootGamesWon:    int32(p.TootGamesWon),
	}
	if p.ID != "" {
		oid, err := primitive.ObjectIDFromHex(string(p.ID))
		if err != nil {
			return nil, err
		}
		doc.ID = oid
	}
	return doc, nil
}

func (d *playerDocument) toModel() *model.Player {
	return &model.Player{
		ID:              model.PlayerID(d.ID.Hex()),
		Name:            d.Name,
		Password:        d.Password,
		C4GamesPlayed:   int(d.C4GamesPlayed),
		C4GamesWon:      int(d.C4GamesWon),
		TootGamesPlayed: int(d.TootGamesPlayed),
		TootGamesWon:    int(d.TootGamesWon),
	}
}
