package factory

import (
	"time"

	"github.com/sweepstats/sweepstats/internal/dependencies/mocks"
	"github.com/sweepstats/sweepstats/internal/services/token"
	"github.com/sweepstats/sweepstats/internal/storage/memory"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock *mocks.MockClock
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() (*TestApp, error) {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))

	app, err := newWithDependencies(store, mockClock, token.Config{
		Secret: []byte("test-secret"),
	})
	if err != nil {
		return nil, err
	}

	return &TestApp{
		App:       app,
		MockClock: mockClock,
	}, nil
}
