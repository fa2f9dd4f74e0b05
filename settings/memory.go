// Package settings provides key-value stores for persisting field sets.
package settings

import (
	"context"
	"sync"
)

// Memory is a process-local store, mostly useful for tests and the CLI's dry runs
type Memory struct {
	mu     sync.Mutex
	values map[string]string
}

func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

func (m *Memory) Setting(_ context.Context, key, def string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if v, ok := m.values[key]; ok {
		return v, nil
	}
	return def, nil
}

func (m *Memory) SetSetting(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.values[key] = value
	return nil
}
