package prefs

import (
	"context"
	"sync"
)

type InMemoryRepository struct {
	mu   sync.Mutex
	code string
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

func (r *InMemoryRepository) Get(ctx context.Context) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.code, nil
}

func (r *InMemoryRepository) Set(ctx context.Context, code string) error {
	r.mu.Lock()
	r.code = code
	r.mu.Unlock()
	return nil
}
