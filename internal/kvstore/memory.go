package kvstore

import "context"

// Memory is an in-process Store for tests and ephemeral sessions.
type Memory struct {
	values map[string][]byte
}

func NewMemory() *Memory {
	return &Memory{values: make(map[string][]byte)}
}

func (m *Memory) Get(_ context.Context, key string) ([]byte, error) {
	v, ok := m.values[key]
	if !ok {
		return nil, ErrNotFound
	}
	return v, nil
}

func (m *Memory) Set(_ context.Context, key string, value []byte) error {
	cp := make([]byte, len(value))
	copy(cp, value)
	m.values[key] = cp
	return nil
}

func (m *Memory) Delete(_ context.Context, key string) error {
	delete(m.values, key)
	return nil
}
