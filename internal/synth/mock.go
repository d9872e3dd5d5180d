package synth

import (
	"context"
	"sync"
)

// MockEngine implements Engine for testing. It produces deterministic fake
// MP3 bytes and records every request it receives.
type MockEngine struct {
	mu sync.Mutex

	// Control for testing
	failWith    error
	validateErr error
	requests    []Request
}

// NewMock creates a mock engine.
func NewMock() *MockEngine {
	return &MockEngine{}
}

// Name implements Engine.
func (e *MockEngine) Name() string { return "mock" }

// Synthesize returns fake audio derived from the request text.
func (e *MockEngine) Synthesize(_ context.Context, req Request) ([]byte, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.requests = append(e.requests, req)
	if e.failWith != nil {
		return nil, e.failWith
	}
	if req.Text == "" {
		return nil, ErrEmptyText
	}
	return []byte("MP3:" + req.Language + ":" + req.Text), nil
}

// Validate implements Engine.
func (e *MockEngine) Validate() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.validateErr
}

// FailWith makes subsequent Synthesize calls return err. Pass nil to
// restore normal behavior.
func (e *MockEngine) FailWith(err error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.failWith = err
}

// FailValidation makes Validate return err.
func (e *MockEngine) FailValidation(err error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.validateErr = err
}

// Requests returns a copy of every request seen so far.
func (e *MockEngine) Requests() []Request {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]Request, len(e.requests))
	copy(out, e.requests)
	return out
}

// CallCount returns the number of Synthesize calls, including failures.
func (e *MockEngine) CallCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.requests)
}

var _ Engine = (*MockEngine)(nil)
