package prefs

import "context"

// StorageKey is the fixed key the target-currency preference lives under.
const StorageKey = "target_currency"

// DefaultTargetCurrency applies until the user picks one.
const DefaultTargetCurrency = "USD"

// Repository persists the single last-used target-currency string, read at
// startup and rewritten whole on change.
type Repository interface {
	Get(ctx context.Context) (string, error)
	Set(ctx context.Context, code string) error
}
