package factory

import (
	"time"

	"github.com/mcoot/boardnight/internal/dependencies/mocks"
	"github.com/mcoot/boardnight/internal/storage/memory"
	"github.com/mcoot/boardnight/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with memory storage and
// mocked dependencies
func NewTestApp() *TestApp {
	st := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	app := newWithDependencies(st, mockClock, mockRandom, testutil.NopLogger())

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}
