package history

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/bingyoan/sausage-menu-ai/internal/logger"
)

// InMemoryRepository keeps the history document in process memory. Used in
// tests and when no DATABASE_URL is configured. It stores the serialized
// document, not the live slice, so it round-trips exactly like a real store.
type InMemoryRepository struct {
	mu  sync.Mutex
	doc []byte
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

func (r *InMemoryRepository) Load(ctx context.Context) ([]Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.doc) == 0 {
		return []Record{}, nil
	}

	var records []Record
	if err := json.Unmarshal(r.doc, &records); err != nil {
		logger.L.Warn("history document corrupt, resetting to empty", "error", err)
		return []Record{}, nil
	}
	return records, nil
}

func (r *InMemoryRepository) Save(ctx context.Context, records []Record) error {
	doc, err := json.Marshal(records)
	if err != nil {
		return err
	}

	r.mu.Lock()
	r.doc = doc
	r.mu.Unlock()
	return nil
}
