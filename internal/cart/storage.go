package cart

import (
	"context"
	"sync"
)

// Storage is the persistence port for the cart mirror: a single durable
// key-value entry holding the whole serialized cart. Implementations live
// outside the UI path; the in-memory cart stays authoritative even when a
// write fails.
type Storage interface {
	// Get returns the persisted cart, reporting false when no entry exists.
	Get(ctx context.Context) (Cart, bool, error)
	Set(ctx context.Context, c Cart) error
	Clear(ctx context.Context) error
}

// MemoryStorage keeps the mirror in process memory. It backs tests and
// single-process runs that have no Redis.
type MemoryStorage struct {
	mu   sync.Mutex
	cart Cart
	set  bool
}

func NewMemoryStorage() *MemoryStorage { return &MemoryStorage{} }

func (m *MemoryStorage) Get(ctx context.Context) (Cart, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.set {
		return Cart{}, false, nil
	}
	return m.cart.snapshot(), true, nil
}

func (m *MemoryStorage) Set(ctx context.Context, c Cart) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cart = c.snapshot()
	m.set = true
	return nil
}

func (m *MemoryStorage) Clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cart = Cart{}
	m.set = false
	return nil
}
