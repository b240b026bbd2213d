package kitchen

import "context"

// Settings is a per-user key-value store for string blobs.
type Settings interface {
	GetString(ctx context.Context, key string) (string, bool, error)
	SetString(ctx context.Context, key, value string) error
}

// MemorySettings keeps settings in a map. It is used when no persistent
// store is available and in tests.
type MemorySettings struct {
	values map[string]string
	Writes int
}

func NewMemorySettings() *MemorySettings {
	return &MemorySettings{values: make(map[string]string)}
}

func (m *MemorySettings) GetString(_ context.Context, key string) (string, bool, error) {
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *MemorySettings) SetString(_ context.Context, key, value string) error {
	m.values[key] = value
	m.Writes++
	return nil
}
