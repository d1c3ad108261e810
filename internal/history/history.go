package history

import (
	"time"

	"github.com/google/uuid"

	"github.com/bingyoan/sausage-menu-ai/internal/cart"
	"github.com/bingyoan/sausage-menu-ai/internal/currency"
	"github.com/bingyoan/sausage-menu-ai/internal/menu"
)

// Append finalizes the current cart into a new record prepended to records
// (most-recent-first, so consumers never re-sort). An empty cart, or one
// whose entries all miss the catalog, records nothing and returns the input
// unchanged with a nil record. Neither input slice nor cart is mutated.
func Append(records []Record, c cart.Cart, catalog *menu.Catalog) ([]Record, *Record) {
	if len(c) == 0 || catalog == nil {
		return records, nil
	}

	var items []RecordItem
	var total float64
	// walk the catalog so record items keep menu order
	for _, item := range catalog.Items {
		entry, ok := c[item.ID]
		if !ok {
			continue
		}
		items = append(items, RecordItem{Item: freeze(item), Quantity: entry.Quantity})
		total += item.Price * float64(entry.Quantity)
	}
	if len(items) == 0 {
		return records, nil
	}

	code := catalog.OriginalCurrency
	if code == "" {
		code = currency.DefaultCode
	}

	rec := Record{
		ID:                 uuid.New().String(),
		Timestamp:          time.Now().UnixMilli(),
		Items:              items,
		TotalOriginalPrice: total,
		Currency:           code,
	}

	out := make([]Record, 0, len(records)+1)
	out = append(out, rec)
	out = append(out, records...)
	return out, &rec
}

// Remove filters out the record with the given id. Unknown ids are a no-op.
func Remove(records []Record, id string) []Record {
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if r.ID != id {
			out = append(out, r)
		}
	}
	return out
}

func freeze(item menu.Item) menu.Item {
	copied := item
	copied.DietaryTags = append([]string{}, item.DietaryTags...)
	return copied
}
