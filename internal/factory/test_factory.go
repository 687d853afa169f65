package factory

import (
	"time"

	"github.com/ffcommunity/banwatch/internal/dependencies/mocks"
	"github.com/ffcommunity/banwatch/internal/services/lookup"
	"github.com/ffcommunity/banwatch/internal/storage/memory"
	"github.com/ffcommunity/banwatch/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock *mocks.MockClock
}

// NewTestApp creates an App configured for testing with mocked dependencies.
// The resolver has no endpoints and falls back to deterministic demo data.
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))

	lookupCfg := lookup.Config{
		AllowMockFallback: true,
		RequestTimeout:    time.Second,
		ConnectTimeout:    time.Second,
	}

	app := newWithDependencies(store, mockClock, lookupCfg, "!", "", testutil.NopLogger())

	return &TestApp{
		App:       app,
		MockClock: mockClock,
	}
}
