package memory

import (
	"context"
	"sync"

	"vet-clinic-portal/internal/ports/kv"
)

type store struct {
	mu   sync.RWMutex
	data map[string]string
}

// New crea un KV en memoria (default para dev y tests).
func New() kv.Store {
	return &store{data: make(map[string]string)}
}

func (s *store) Get(ctx context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.data[key]
	return v, ok, nil
}

func (s *store) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = value
	return nil
}

func (s *store) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.data, key)
	return nil
}
