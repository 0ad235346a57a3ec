package store

import (
	"context"

	"github.com/patrickmn/go-cache"
)

// MemoryStore keeps records in-process. It is the default backend and the one
// tests inject.
type MemoryStore struct {
	c *cache.Cache
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{c: cache.New(cache.NoExpiration, 0)}
}

func (m *MemoryStore) Save(_ context.Context, key string, value any) error {
	raw, err := encode(value)
	if err != nil {
		return err
	}
	m.c.Set(key, raw, cache.NoExpiration)
	return nil
}

func (m *MemoryStore) Load(_ context.Context, key string, dest any) (bool, error) {
	v, found := m.c.Get(key)
	if !found {
		return false, nil
	}
	return decodeRecord(v.([]byte), dest)
}

func (m *MemoryStore) Clear(_ context.Context, key string) error {
	m.c.Delete(key)
	return nil
}
