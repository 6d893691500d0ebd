package sessionstore

import (
	"context"
	"sync"
)

// Memory is a process-local Store. Fail* hooks let tests simulate a broken
// device store.
type Memory struct {
	mu   sync.Mutex
	data map[string]string

	FailGet    error
	FailSet    error
	FailRemove error
}

func NewMemory() *Memory {
	return &Memory{data: make(map[string]string)}
}

func (m *Memory) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailGet != nil {
		return "", false, m.FailGet
	}
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *Memory) Set(ctx context.Context, key, value string) error {
	return m.MultiSet(ctx, []KV{{Key: key, Value: value}})
}

func (m *Memory) MultiSet(_ context.Context, pairs []KV) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailSet != nil {
		return m.FailSet
	}
	for _, p := range pairs {
		m.data[p.Key] = p.Value
	}
	return nil
}

func (m *Memory) MultiRemove(_ context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailRemove != nil {
		return m.FailRemove
	}
	for _, k := range keys {
		delete(m.data, k)
	}
	return nil
}

// Len reports how many keys are stored.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.data)
}
