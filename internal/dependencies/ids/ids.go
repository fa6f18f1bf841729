package ids

import (
	"github.com/google/uuid"

	"github.com/mcoot/gamestats/internal/model"
)

// Generator produces record ids that can be mocked for testing
type Generator interface {
	NewPlayerID() (model.PlayerID, error)
}

// UUIDGenerator issues UUIDv7 ids, which sort in creation order
type UUIDGenerator struct{}

// New creates a new UUIDGenerator
func New() *UUIDGenerator {
	return &UUIDGenerator{}
}

// NewPlayerID returns a fresh time-ordered id
func (g *UUIDGenerator) NewPlayerID() (model.PlayerID, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return model.PlayerID(id.String()), nil
}
