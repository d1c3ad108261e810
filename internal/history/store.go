package history

import (
	"context"
	"sync"

	"github.com/bingyoan/sausage-menu-ai/internal/cart"
	"github.com/bingyoan/sausage-menu-ai/internal/menu"
)

// Store owns the persisted order history. Records are loaded once at
// startup and the full list is written back through the repository on
// every mutation.
type Store struct {
	mu      sync.Mutex
	repo    Repository
	records []Record
}

func NewStore(ctx context.Context, repo Repository) (*Store, error) {
	records, err := repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	if records == nil {
		records = []Record{}
	}
	return &Store{repo: repo, records: records}, nil
}

// Records returns the current list, most recent first.
func (s *Store) Records() []Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out
}

// Append finalizes a cart into a new record and persists the updated list.
// Returns nil (and persists nothing) for an empty cart.
func (s *Store) Append(ctx context.Context, c cart.Cart, catalog *menu.Catalog) (*Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	updated, rec := Append(s.records, c, catalog)
	if rec == nil {
		return nil, nil
	}
	if err := s.repo.Save(ctx, updated); err != nil {
		return nil, err
	}
	s.records = updated
	return rec, nil
}

// Remove deletes a record by id and persists. Unknown ids are a no-op that
// still succeeds.
func (s *Store) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	updated := Remove(s.records, id)
	if len(updated) == len(s.records) {
		return nil
	}
	if err := s.repo.Save(ctx, updated); err != nil {
		return err
	}
	s.records = updated
	return nil
}
