package cart

import (
	"context"
	"errors"
	"log"
	"sync"

	"github.com/valeriach30/Arquitectura/internal/catalog"
)

// ErrInvalidQuantity rejects AddToCart calls with a quantity below one. The
// upstream storefront accepted any quantity and let totals drift negative;
// this port makes the guard explicit.
var ErrInvalidQuantity = errors.New("quantity must be at least 1")

// Listener receives a snapshot of the full cart after every mutation.
type Listener func(Cart)

type subscription struct {
	id int
	fn Listener
}

// Service owns the authoritative cart for one storefront. It is constructed
// once at startup and passed by reference to every consumer; there is no
// global instance.
//
// Every mutation recomputes the derived totals, writes the whole cart
// through the storage port and notifies subscribers synchronously, in
// registration order, before the mutating call returns. A slow listener
// therefore delays that call. Listeners run outside the state lock, so they
// may call back into the service.
type Service struct {
	mu      sync.Mutex
	cart    Cart
	storage Storage
	subs    []subscription
	nextSub int
}

// New builds the service and primes it from storage. A missing or unreadable
// entry yields an empty cart; the read error is logged and swallowed, after
// which the in-memory cart is authoritative.
func New(ctx context.Context, storage Storage) *Service {
	s := &Service{cart: emptyCart(), storage: storage}
	c, ok, err := storage.Get(ctx)
	if err != nil {
		log.Printf("cart: load persisted cart: %v", err)
		return s
	}
	if ok {
		if c.Items == nil {
			c.Items = []CartItem{}
		}
		c.recomputeTotals()
		s.cart = c
	}
	return s
}

// GetCart returns a snapshot of the current cart. No side effects.
func (s *Service) GetCart() Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.snapshot()
}

// AddToCart merges quantity into an existing line for the same product id,
// or appends a new line built from the product's fields.
func (s *Service) AddToCart(ctx context.Context, p catalog.Product, quantity int) (Cart, error) {
	if quantity < 1 {
		return s.GetCart(), ErrInvalidQuantity
	}

	s.mu.Lock()
	found := false
	for i := range s.cart.Items {
		if s.cart.Items[i].ID == p.ID {
			s.cart.Items[i].Quantity += quantity
			found = true
			break
		}
	}
	if !found {
		s.cart.Items = append(s.cart.Items, itemFromProduct(p, quantity))
	}
	snap, subs := s.commitLocked(ctx)
	s.mu.Unlock()

	notify(snap, subs)
	return snap, nil
}

// UpdateQuantity sets the line's quantity to the given absolute value. A
// quantity of zero or less removes the line. Unknown ids are a no-op with
// no persistence or notification.
func (s *Service) UpdateQuantity(ctx context.Context, productID string, quantity int) Cart {
	if quantity <= 0 {
		return s.RemoveFromCart(ctx, productID)
	}

	s.mu.Lock()
	for i := range s.cart.Items {
		if s.cart.Items[i].ID == productID {
			s.cart.Items[i].Quantity = quantity
			snap, subs := s.commitLocked(ctx)
			s.mu.Unlock()

			notify(snap, subs)
			return snap
		}
	}
	snap := s.cart.snapshot()
	s.mu.Unlock()
	return snap
}

// RemoveFromCart drops the line for the given product id. Removing an
// absent id leaves the cart unchanged but still persists and re-notifies,
// matching the upstream storefront.
func (s *Service) RemoveFromCart(ctx context.Context, productID string) Cart {
	s.mu.Lock()
	kept := s.cart.Items[:0]
	for _, it := range s.cart.Items {
		if it.ID != productID {
			kept = append(kept, it)
		}
	}
	s.cart.Items = kept
	snap, subs := s.commitLocked(ctx)
	s.mu.Unlock()

	notify(snap, subs)
	return snap
}

// ClearCart resets to an empty cart.
func (s *Service) ClearCart(ctx context.Context) Cart {
	s.mu.Lock()
	s.cart = emptyCart()
	snap, subs := s.commitLocked(ctx)
	s.mu.Unlock()

	notify(snap, subs)
	return snap
}

// Subscribe registers a listener and returns a function that removes
// exactly that registration. Subscribers are independent: unsubscribing one
// does not disturb the others, and delivery follows registration order.
func (s *Service) Subscribe(fn Listener) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSub
	s.nextSub++
	s.subs = append(s.subs, subscription{id: id, fn: fn})

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

// commitLocked recomputes totals and persists, returning the snapshot and
// the subscriber list to notify after the lock is released. Storage failures
// are logged only; the in-memory cart stays authoritative. Caller holds mu.
func (s *Service) commitLocked(ctx context.Context) (Cart, []subscription) {
	s.cart.recomputeTotals()
	if err := s.storage.Set(ctx, s.cart); err != nil {
		log.Printf("cart: persist cart: %v", err)
	}
	return s.cart.snapshot(), append([]subscription(nil), s.subs...)
}

func notify(snap Cart, subs []subscription) {
	for _, sub := range subs {
		sub.fn(snap.snapshot())
	}
}
