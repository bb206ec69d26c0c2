package location

import (
	"context"
	"sync"
)

// MockProvider is a test double for the geolocation boundary.
type MockProvider struct {
	CurrentFn func(ctx context.Context) (Fix, error)
	callCount int
	mu        sync.Mutex
}

// Current delegates to CurrentFn, counting calls.
func (m *MockProvider) Current(ctx context.Context) (Fix, error) {
	m.mu.Lock()
	m.callCount++
	m.mu.Unlock()

	if m.CurrentFn != nil {
		return m.CurrentFn(ctx)
	}
	return Fix{}, nil
}

// CallCount returns how many lookups were made.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.callCount
}
