package email

import (
	"context"
	"sync"
)

// MockProvider records every message. Set Err to make Send fail.
type MockProvider struct {
	mu   sync.Mutex
	sent []Email
	Err  error
}

func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

func (m *MockProvider) Name() string { return "mock" }

func (m *MockProvider) Send(_ context.Context, email *Email) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, *email)
	return m.Err
}

// Sent returns a copy of all attempted messages, failed ones included.
func (m *MockProvider) Sent() []Email {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Email(nil), m.sent...)
}

func (m *MockProvider) Reset() {
	m.mu.Lock()
	m.sent = nil
	m.mu.Unlock()
}
