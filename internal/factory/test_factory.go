package factory

import (
	"github.com/mcoot/gamestats/internal/dependencies/mocks"
	"github.com/mcoot/gamestats/internal/services/credentials"
	"github.com/mcoot/gamestats/internal/storage/memory"
	"github.com/mcoot/gamestats/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Memory is the backing store, for direct assertions
	Memory *memory.Storage
	// MockIDs controls the ids assigned on insert
	MockIDs *mocks.MockIDs
}

// NewTestApp creates an App over an in-memory store with sequential ids
func NewTestApp() *TestApp {
	mockIDs := mocks.NewMockIDs()
	store := memory.NewWithIDs(mockIDs)

	app := newWithDependencies(store, credentials.Plaintext{}, testutil.NopLogger())

	return &TestApp{
		App:     app,
		Memory:  store,
		MockIDs: mockIDs,
	}
}
