package storage

import (
	"context"
	"sync"
)

// Memory is an in-process Backend. It is used when persistence is disabled
// and as a test double; FailWith makes every Put return the given error.
type Memory struct {
	mu     sync.Mutex
	values map[string][]byte
	puts   map[string]int
	err    error
}

func NewMemory() *Memory {
	return &Memory{
		values: make(map[string][]byte),
		puts:   make(map[string]int),
	}
}

func (m *Memory) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	v, ok := m.values[key]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

func (m *Memory) Put(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.puts[key]++
	if m.err != nil {
		return m.err
	}
	m.values[key] = append([]byte(nil), value...)
	return nil
}

func (m *Memory) Close() error { return nil }

// FailWith makes later writes fail with err. A nil err restores writes.
func (m *Memory) FailWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// Puts reports how many writes were attempted for key.
func (m *Memory) Puts(key string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.puts[key]
}
