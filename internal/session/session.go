package session

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/bingyoan/sausage-menu-ai/internal/cart"
	"github.com/bingyoan/sausage-menu-ai/internal/menu"
)

var ErrNotFound = errors.New("session not found")

// Session is the live ordering state for one device: the catalog from the
// most recent scan and the cart built against it.
type Session struct {
	ID         string
	Catalog    *menu.Catalog
	Cart       cart.Cart
	Generation int // bumped on every catalog replacement
}

// Manager owns all live sessions. Every mutation runs as
// read-current/compute/replace under the lock, so rapid repeated cart taps
// can never lose a delta to a stale snapshot.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

func NewManager() *Manager {
	return &Manager{sessions: make(map[string]*Session)}
}

// Create starts a new empty session and returns its id.
func (m *Manager) Create() string {
	id := uuid.New().String()

	m.mu.Lock()
	m.sessions[id] = &Session{ID: id, Cart: cart.New()}
	m.mu.Unlock()

	return id
}

// SetCatalog installs a freshly scanned catalog wholesale and clears the
// cart; returns the new catalog generation. A caller holding results from
// an older scan compares generations and discards them.
func (m *Manager) SetCatalog(id string, catalog *menu.Catalog) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return 0, ErrNotFound
	}

	s.Catalog = catalog
	s.Cart = cart.New()
	s.Generation++
	return s.Generation, nil
}

// UpdateCart applies one quantity delta and returns the resulting cart.
func (m *Manager) UpdateCart(id, itemID string, delta int) (cart.Cart, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}

	s.Cart = cart.UpdateQuantity(s.Cart, itemID, delta, s.Catalog)
	return s.Cart, nil
}

// Snapshot returns the session's current cart and catalog. The cart value
// is safe to read concurrently because every mutation replaces it instead
// of editing in place.
func (m *Manager) Snapshot(id string) (cart.Cart, *menu.Catalog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return nil, nil, ErrNotFound
	}
	return s.Cart, s.Catalog, nil
}

// TakeCart atomically removes and returns the cart for finalization,
// together with the catalog and generation it was built against. The
// session is left with a fresh empty cart in the same lock acquisition, so
// a concurrent finish can only ever take an already-empty cart and a tap
// arriving after the take lands in the new cart instead of being wiped.
func (m *Manager) TakeCart(id string) (cart.Cart, *menu.Catalog, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return nil, nil, 0, ErrNotFound
	}

	taken := s.Cart
	s.Cart = cart.New()
	return taken, s.Catalog, s.Generation, nil
}

// RestoreCart merges a taken cart back after a failed finalization.
// Quantities add onto whatever taps landed since the take, so nothing is
// lost in either direction. A catalog swapped in since the take discards
// the restore, matching the cart reset every new scan performs.
func (m *Manager) RestoreCart(id string, taken cart.Cart, generation int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return ErrNotFound
	}
	if s.Generation != generation {
		return nil
	}

	merged := make(cart.Cart, len(s.Cart)+len(taken))
	for itemID, e := range s.Cart {
		merged[itemID] = e
	}
	for itemID, e := range taken {
		e.Quantity += merged[itemID].Quantity
		merged[itemID] = e
	}
	s.Cart = merged
	return nil
}

// ClearCart empties the cart on session reset, recording nothing.
func (m *Manager) ClearCart(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return ErrNotFound
	}
	s.Cart = cart.New()
	return nil
}
