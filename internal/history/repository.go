package history

import "context"

// StorageKey is the fixed key the full history document lives under,
// matching the client's original local-storage layout.
const StorageKey = "order_history"

// Repository persists the whole record list as one document: read once at
// startup, rewritten in full on every mutation.
type Repository interface {
	Load(ctx context.Context) ([]Record, error)
	Save(ctx context.Context, records []Record) error
}
