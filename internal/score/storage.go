package score

import (
	"context"
	"sync"
)

// Storage is the key-value persistence collaborator for the player record.
type Storage interface {
	// Load returns the stored bytes for key, or nil if nothing is stored.
	Load(ctx context.Context, key string) ([]byte, error)

	// Save replaces the stored bytes for key.
	Save(ctx context.Context, key string, data []byte) error
}

// Deleter is implemented by storage that can drop a key. ResetAllData
// uses it so a reset leaves nothing behind.
type Deleter interface {
	Delete(ctx context.Context, key string) error
}

// MemoryStorage keeps records in process memory. It is used when the
// on-disk store cannot be opened, so the game stays playable.
type MemoryStorage struct {
	mu   sync.Mutex
	data map[string][]byte
}

// NewMemoryStorage creates an empty MemoryStorage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{data: make(map[string][]byte)}
}

func (m *MemoryStorage) Load(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

func (m *MemoryStorage) Save(_ context.Context, key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	v := make([]byte, len(data))
	copy(v, data)
	m.data[key] = v
	return nil
}

func (m *MemoryStorage) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}
