package session

import (
	"testing"

	"github.com/bingyoan/sausage-menu-ai/internal/menu"
)

func testCatalog() *menu.Catalog {
	return &menu.Catalog{
		Items: []menu.Item{
			{ID: "A", TranslatedName: "Ramen", Price: 100},
			{ID: "B", TranslatedName: "Gyoza", Price: 450},
		},
		OriginalCurrency: "JPY",
		TargetCurrency:   "USD",
		ExchangeRate:     0.0067,
	}
}

func TestManagerLifecycle(t *testing.T) {
	m := NewManager()
	id := m.Create()

	if _, _, err := m.Snapshot(id); err != nil {
		t.Fatalf("snapshot of fresh session failed: %v", err)
	}
	if _, _, err := m.Snapshot("ghost"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestManagerSetCatalogClearsCartAndBumpsGeneration(t *testing.T) {
	m := NewManager()
	id := m.Create()

	gen1, err := m.SetCatalog(id, testCatalog())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := m.UpdateCart(id, "A", 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	gen2, _ := m.SetCatalog(id, testCatalog())
	if gen2 <= gen1 {
		t.Fatalf("generation did not advance: %d -> %d", gen1, gen2)
	}

	c, _, _ := m.Snapshot(id)
	if len(c) != 0 {
		t.Fatal("new catalog must clear the cart")
	}
}

func TestManagerUpdateCartAppliesEveryDelta(t *testing.T) {
	m := NewManager()
	id := m.Create()
	m.SetCatalog(id, testCatalog())

	// rapid repeated taps: every delta must land
	for i := 0; i < 10; i++ {
		if _, err := m.UpdateCart(id, "A", 1); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	c, _, _ := m.Snapshot(id)
	if got := c["A"].Quantity; got != 10 {
		t.Fatalf("quantity = %d, want 10", got)
	}
}

func TestManagerTakeCartClearsAtomically(t *testing.T) {
	m := NewManager()
	id := m.Create()
	m.SetCatalog(id, testCatalog())
	m.UpdateCart(id, "A", 2)

	taken, catalog, _, err := m.TakeCart(id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if taken["A"].Quantity != 2 || catalog == nil {
		t.Fatalf("taken = %+v", taken)
	}

	// the same ledger cannot be taken twice
	again, _, _, _ := m.TakeCart(id)
	if len(again) != 0 {
		t.Fatalf("second take returned %+v, want empty", again)
	}

	if _, _, _, err := m.TakeCart("ghost"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestManagerRestoreCartMergesLaterTaps(t *testing.T) {
	m := NewManager()
	id := m.Create()
	m.SetCatalog(id, testCatalog())
	m.UpdateCart(id, "A", 2)

	taken, _, gen, _ := m.TakeCart(id)

	// a tap lands while the finalization is in flight
	m.UpdateCart(id, "A", 1)
	m.UpdateCart(id, "B", 1)

	if err := m.RestoreCart(id, taken, gen); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	c, _, _ := m.Snapshot(id)
	if c["A"].Quantity != 3 {
		t.Fatalf("quantity A = %d, want 2 restored + 1 new = 3", c["A"].Quantity)
	}
	if c["B"].Quantity != 1 {
		t.Fatalf("quantity B = %d, want 1", c["B"].Quantity)
	}
}

func TestManagerRestoreCartSkipsStaleGeneration(t *testing.T) {
	m := NewManager()
	id := m.Create()
	m.SetCatalog(id, testCatalog())
	m.UpdateCart(id, "A", 2)

	taken, _, gen, _ := m.TakeCart(id)

	// new scan supersedes the taken cart
	m.SetCatalog(id, testCatalog())

	if err := m.RestoreCart(id, taken, gen); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c, _, _ := m.Snapshot(id)
	if len(c) != 0 {
		t.Fatalf("stale restore repopulated the cart: %+v", c)
	}
}

func TestManagerClearCart(t *testing.T) {
	m := NewManager()
	id := m.Create()
	m.SetCatalog(id, testCatalog())
	m.UpdateCart(id, "A", 1)

	if err := m.ClearCart(id); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c, _, _ := m.Snapshot(id)
	if len(c) != 0 {
		t.Fatal("cart not cleared")
	}

	if err := m.ClearCart("ghost"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
