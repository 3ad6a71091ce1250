package tokenstore

import (
	"context"
	"sync"
)

// Memory is an in-process Store implementation. The zero value is ready to
// use; it is also the backend of choice for tests.
type Memory struct {
	mu    sync.RWMutex
	token string
	set   bool
}

// NewMemory creates an empty in-memory token store.
func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Get(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	if !m.set {
		return "", ErrNotFound
	}
	return m.token, nil
}

func (m *Memory) Set(ctx context.Context, token string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if token == "" {
		return ErrEmptyToken
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.token = token
	m.set = true
	return nil
}

func (m *Memory) Delete(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.token = ""
	m.set = false
	return nil
}
