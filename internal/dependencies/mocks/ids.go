package mocks

import (
	"fmt"

	"github.com/mcoot/gamestats/internal/dependencies/ids"
	"github.com/mcoot/gamestats/internal/model"
)

// MockIDs hands out sequential ids (p-0001, p-0002, ...)
type MockIDs struct {
	next int

	// Err, if set, is returned instead of an id
	Err error
}

// Ensure MockIDs implements Generator
var _ ids.Generator = (*MockIDs)(nil)

// NewMockIDs creates a new MockIDs
func NewMockIDs() *MockIDs {
	return &MockIDs{}
}

// NewPlayerID returns the next sequential id
func (m *MockIDs) NewPlayerID() (model.PlayerID, error) {
	if m.Err != nil {
		return "", m.Err
	}
	m.next++
	return model.PlayerID(fmt.Sprintf("p-%04d", m.next)), nil
}
