package source

import (
	"context"
	"fmt"
	"io/fs"
	"sync"
)

// Memory is a map-backed Source for tests and embedded samples.
type Memory struct {
	mu      sync.RWMutex
	objects map[string][]byte
}

func NewMemory() *Memory {
	return &Memory{objects: make(map[string][]byte)}
}

// Put stores a copy of data under key, replacing any previous value.
func (m *Memory) Put(key string, data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[key] = append([]byte(nil), data...)
}

func (m *Memory) Driver() Driver { return DriverMemory }

func (m *Memory) Read(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	b, ok := m.objects[key]
	if !ok {
		return nil, fmt.Errorf("memory object %s: %w", key, fs.ErrNotExist)
	}
	return append([]byte(nil), b...), nil
}
