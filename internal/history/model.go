package history

import "github.com/bingyoan/sausage-menu-ai/internal/menu"

// RecordItem is a frozen copy of a menu item plus the quantity ordered.
type RecordItem struct {
	Item     menu.Item `json:"item"`
	Quantity int       `json:"quantity"`
}

// Record is one finalized order. Immutable once created; later catalog
// replacement cannot touch it because every item is a deep copy.
type Record struct {
	ID                 string       `json:"id"`
	Timestamp          int64        `json:"timestamp"` // epoch millis
	Items              []RecordItem `json:"items"`
	TotalOriginalPrice float64      `json:"totalOriginalPrice"`
	Currency           string       `json:"currency"`
}
