package cart

import (
	"math"

	"github.com/bingyoan/sausage-menu-ai/internal/menu"
)

// Summary is the derived view of the current order. Never persisted as-is;
// finalization copies it into a history record.
type Summary struct {
	TotalOriginal     float64 `json:"totalOriginal"`
	TotalConverted    float64 `json:"totalConverted"`
	ItemCount         int     `json:"itemCount"`
	SplitCount        int     `json:"splitCount"`
	PerPersonOriginal float64 `json:"perPersonOriginal,omitempty"`
}

// Summarize derives totals from the cart against the catalog. Entries whose
// item is gone from the catalog contribute nothing. The per-person share
// uses a ceiling so the shares always cover the bill; splitCount < 2 means
// no split.
func Summarize(c Cart, catalog *menu.Catalog, exchangeRate float64, splitCount int) Summary {
	s := Summary{SplitCount: splitCount}
	if splitCount < 1 {
		s.SplitCount = 1
	}

	if catalog != nil {
		for _, e := range c {
			item, ok := catalog.Find(e.ItemID)
			if !ok {
				continue
			}
			s.TotalOriginal += item.Price * float64(e.Quantity)
			s.ItemCount += e.Quantity
		}
	}

	s.TotalConverted = s.TotalOriginal * exchangeRate

	if s.SplitCount > 1 {
		s.PerPersonOriginal = math.Ceil(s.TotalOriginal / float64(s.SplitCount))
	}
	return s
}
