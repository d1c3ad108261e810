package cart

import "github.com/bingyoan/sausage-menu-ai/internal/menu"

// Entry is one selected menu item. Quantity is always >= 1; an entry that
// would drop to zero is removed from the cart instead. Entries hold only
// the item id; item attributes are resolved through the catalog so a
// catalog swap can never leave stale prices in the cart.
type Entry struct {
	ItemID   string `json:"itemId"`
	Quantity int    `json:"quantity"`
}

// Cart maps item id to its entry.
type Cart map[string]Entry

func New() Cart {
	return Cart{}
}

// UpdateQuantity applies a signed quantity delta for one item and returns
// the resulting cart, leaving the input untouched. Callers must replace
// their stored cart with the return value; this read/compute/replace shape
// is what keeps rapid repeated taps from losing deltas.
//
// Adding an id the catalog does not know is ignored: a cart that races a
// catalog swap just drops the tap rather than failing.
func UpdateQuantity(c Cart, itemID string, delta int, catalog *menu.Catalog) Cart {
	current := 0
	entry, exists := c[itemID]
	if exists {
		current = entry.Quantity
	}
	next := current + delta

	if next <= 0 {
		if !exists {
			return c
		}
		out := c.clone()
		delete(out, itemID)
		return out
	}

	if !exists {
		if catalog == nil {
			return c
		}
		if _, ok := catalog.Find(itemID); !ok {
			return c
		}
		entry = Entry{ItemID: itemID}
	}

	entry.Quantity = next
	out := c.clone()
	out[itemID] = entry
	return out
}

func (c Cart) clone() Cart {
	out := make(Cart, len(c))
	for id, e := range c {
		out[id] = e
	}
	return out
}
