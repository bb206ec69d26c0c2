package backend

import (
	"context"
	"encoding/json"
	"sync"
)

// MockInvoker is a test double for the backend boundary.
type MockInvoker struct {
	InvokeFn func(ctx context.Context, action string, payload any) (json.RawMessage, error)
	calls    []string
	mu       sync.Mutex
}

// Invoke records the call and delegates to InvokeFn.
func (m *MockInvoker) Invoke(ctx context.Context, action string, payload any) (json.RawMessage, error) {
	m.mu.Lock()
	m.calls = append(m.calls, action)
	m.mu.Unlock()

	if m.InvokeFn != nil {
		return m.InvokeFn(ctx, action, payload)
	}
	return json.RawMessage(`{}`), nil
}

// Calls returns the actions invoked so far.
func (m *MockInvoker) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.calls))
	copy(out, m.calls)
	return out
}
