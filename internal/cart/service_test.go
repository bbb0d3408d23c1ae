package cart

import (
	"context"
	"errors"
	"testing"
)

// failingStorage simulates a broken persistence backend. Cart operations
// must keep working against the in-memory state.
type failingStorage struct{}

func (failingStorage) Get(ctx context.Context) (Cart, bool, error) {
	return Cart{}, false, errors.New("backend down")
}
func (failingStorage) Set(ctx context.Context, c Cart) error { return errors.New("backend down") }
func (failingStorage) Clear(ctx context.Context) error       { return errors.New("backend down") }

func newTestService(t *testing.T) *Service {
	t.Helper()
	return New(context.Background(), NewMemoryStorage())
}

// verifyTotals recomputes the aggregates from the items and compares them
// with the stored ones.
func verifyTotals(t *testing.T, c Cart) {
	t.Helper()
	items, price := 0, 0.0
	for _, it := range c.Items {
		items += it.Quantity
		price += it.Price * float64(it.Quantity)
	}
	if c.TotalItems != items {
		t.Fatalf("totalItems inconsistent: stored %d, recomputed %d", c.TotalItems, items)
	}
	if !almostEqual(c.TotalPrice, price) {
		t.Fatalf("totalPrice inconsistent: stored %v, recomputed %v", c.TotalPrice, price)
	}
}

func TestAddToCart(t *testing.T) {
	ctx := context.Background()

	t.Run("same product id accumulates into one line", func(t *testing.T) {
		svc := newTestService(t)
		p := testProduct("1", 89.99)

		if _, err := svc.AddToCart(ctx, p, 2); err != nil {
			t.Fatalf("AddToCart: %v", err)
		}
		c, err := svc.AddToCart(ctx, p, 3)
		if err != nil {
			t.Fatalf("AddToCart: %v", err)
		}

		if len(c.Items) != 1 {
			t.Fatalf("expected 1 line, got %d", len(c.Items))
		}
		if c.Items[0].Quantity != 5 {
			t.Fatalf("quantity: want 5, got %d", c.Items[0].Quantity)
		}
		if c.TotalItems != 5 {
			t.Fatalf("totalItems: want 5, got %d", c.TotalItems)
		}
		if !almostEqual(c.TotalPrice, 449.95) {
			t.Fatalf("totalPrice: want 449.95, got %v", c.TotalPrice)
		}
		verifyTotals(t, c)
	})

	t.Run("distinct products keep insertion order", func(t *testing.T) {
		svc := newTestService(t)
		_, _ = svc.AddToCart(ctx, testProduct("b", 2), 1)
		_, _ = svc.AddToCart(ctx, testProduct("a", 1), 1)
		c, _ := svc.AddToCart(ctx, testProduct("c", 3), 1)

		if len(c.Items) != 3 {
			t.Fatalf("expected 3 lines, got %d", len(c.Items))
		}
		for i, want := range []string{"b", "a", "c"} {
			if c.Items[i].ID != want {
				t.Fatalf("order: item %d want id %s, got %s", i, want, c.Items[i].ID)
			}
		}
		verifyTotals(t, c)
	})

	t.Run("quantity below one is rejected", func(t *testing.T) {
		svc := newTestService(t)
		notified := 0
		svc.Subscribe(func(Cart) { notified++ })

		for _, qty := range []int{0, -1} {
			if _, err := svc.AddToCart(ctx, testProduct("1", 1), qty); !errors.Is(err, ErrInvalidQuantity) {
				t.Fatalf("qty=%d: want ErrInvalidQuantity, got %v", qty, err)
			}
		}
		if got := svc.GetCart(); len(got.Items) != 0 {
			t.Fatalf("cart should stay empty, got %d items", len(got.Items))
		}
		if notified != 0 {
			t.Fatalf("rejected add must not notify, got %d notifications", notified)
		}
	})
}

func TestUpdateQuantity(t *testing.T) {
	ctx := context.Background()

	t.Run("sets absolute quantity", func(t *testing.T) {
		svc := newTestService(t)
		_, _ = svc.AddToCart(ctx, testProduct("1", 10), 2)

		c := svc.UpdateQuantity(ctx, "1", 7)
		if c.Items[0].Quantity != 7 {
			t.Fatalf("quantity: want 7, got %d", c.Items[0].Quantity)
		}
		verifyTotals(t, c)
	})

	t.Run("zero and negative remove the line", func(t *testing.T) {
		for _, qty := range []int{0, -1} {
			svc := newTestService(t)
			_, _ = svc.AddToCart(ctx, testProduct("1", 10), 2)

			c := svc.UpdateQuantity(ctx, "1", qty)
			if len(c.Items) != 0 {
				t.Fatalf("qty=%d: expected empty cart, got %d items", qty, len(c.Items))
			}
			verifyTotals(t, c)
		}
	})

	t.Run("unknown id is a silent no-op", func(t *testing.T) {
		svc := newTestService(t)
		_, _ = svc.AddToCart(ctx, testProduct("1", 10), 2)

		notified := 0
		svc.Subscribe(func(Cart) { notified++ })

		c := svc.UpdateQuantity(ctx, "nope", 5)
		if len(c.Items) != 1 || c.Items[0].Quantity != 2 {
			t.Fatalf("cart changed on unknown id: %+v", c)
		}
		if notified != 0 {
			t.Fatalf("no-op update must not notify, got %d", notified)
		}
	})
}

func TestRemoveFromCart(t *testing.T) {
	ctx := context.Background()

	t.Run("removes the matching line", func(t *testing.T) {
		svc := newTestService(t)
		_, _ = svc.AddToCart(ctx, testProduct("1", 10), 2)
		_, _ = svc.AddToCart(ctx, testProduct("2", 5), 1)

		c := svc.RemoveFromCart(ctx, "1")
		if len(c.Items) != 1 || c.Items[0].ID != "2" {
			t.Fatalf("unexpected items after remove: %+v", c.Items)
		}
		verifyTotals(t, c)
	})

	t.Run("absent id leaves cart unchanged but re-notifies", func(t *testing.T) {
		svc := newTestService(t)
		_, _ = svc.AddToCart(ctx, testProduct("1", 10), 2)

		notified := 0
		svc.Subscribe(func(Cart) { notified++ })

		c := svc.RemoveFromCart(ctx, "nope")
		if len(c.Items) != 1 || c.Items[0].Quantity != 2 {
			t.Fatalf("cart changed on absent id: %+v", c)
		}
		if notified != 1 {
			t.Fatalf("expected idempotent re-notify, got %d notifications", notified)
		}
	})
}

func TestClearCart(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	_, _ = svc.AddToCart(ctx, testProduct("1", 10), 2)
	_, _ = svc.AddToCart(ctx, testProduct("2", 5), 3)

	c := svc.ClearCart(ctx)
	if len(c.Items) != 0 || c.TotalItems != 0 || c.TotalPrice != 0 {
		t.Fatalf("cart not empty after clear: %+v", c)
	}
}

func TestSubscribe(t *testing.T) {
	ctx := context.Background()

	t.Run("delivers in registration order", func(t *testing.T) {
		svc := newTestService(t)
		var order []string
		svc.Subscribe(func(Cart) { order = append(order, "first") })
		svc.Subscribe(func(Cart) { order = append(order, "second") })

		_, _ = svc.AddToCart(ctx, testProduct("1", 1), 1)
		if len(order) != 2 || order[0] != "first" || order[1] != "second" {
			t.Fatalf("delivery order: %v", order)
		}
	})

	t.Run("unsubscribe removes exactly that listener", func(t *testing.T) {
		svc := newTestService(t)
		a, b := 0, 0
		unsubA := svc.Subscribe(func(Cart) { a++ })
		svc.Subscribe(func(Cart) { b++ })

		_, _ = svc.AddToCart(ctx, testProduct("1", 1), 1)
		unsubA()
		unsubA() // second call is harmless
		_, _ = svc.AddToCart(ctx, testProduct("1", 1), 1)

		if a != 1 {
			t.Fatalf("unsubscribed listener called %d times, want 1", a)
		}
		if b != 2 {
			t.Fatalf("remaining listener called %d times, want 2", b)
		}
	})

	t.Run("listener sees the full cart after every mutation", func(t *testing.T) {
		svc := newTestService(t)
		var last Cart
		svc.Subscribe(func(c Cart) { last = c })

		_, _ = svc.AddToCart(ctx, testProduct("1", 10), 2)
		svc.UpdateQuantity(ctx, "1", 5)
		verifyTotals(t, last)
		if last.TotalItems != 5 {
			t.Fatalf("listener cart totalItems: want 5, got %d", last.TotalItems)
		}

		svc.RemoveFromCart(ctx, "1")
		if len(last.Items) != 0 {
			t.Fatalf("listener cart should be empty, got %+v", last.Items)
		}
	})

	t.Run("listener may call back into the service", func(t *testing.T) {
		svc := newTestService(t)
		var seen Cart
		svc.Subscribe(func(Cart) { seen = svc.GetCart() })

		_, _ = svc.AddToCart(ctx, testProduct("1", 10), 2)
		if seen.TotalItems != 2 {
			t.Fatalf("reentrant GetCart totalItems: want 2, got %d", seen.TotalItems)
		}
	})
}

func TestSnapshotIsolation(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	_, _ = svc.AddToCart(ctx, testProduct("1", 10), 2)

	snap := svc.GetCart()
	snap.Items[0].Quantity = 99

	if got := svc.GetCart(); got.Items[0].Quantity != 2 {
		t.Fatalf("snapshot mutation leaked into service state: %+v", got.Items[0])
	}
}

func TestPersistence(t *testing.T) {
	ctx := context.Background()

	t.Run("mutations survive a restart", func(t *testing.T) {
		storage := NewMemoryStorage()
		svc := New(ctx, storage)
		_, _ = svc.AddToCart(ctx, testProduct("1", 89.99), 5)

		revived := New(ctx, storage)
		c := revived.GetCart()
		if len(c.Items) != 1 || c.Items[0].Quantity != 5 {
			t.Fatalf("revived cart: %+v", c)
		}
		if c.TotalItems != 5 || !almostEqual(c.TotalPrice, 449.95) {
			t.Fatalf("revived totals: items=%d price=%v", c.TotalItems, c.TotalPrice)
		}
	})

	t.Run("absent entry starts empty", func(t *testing.T) {
		svc := New(ctx, NewMemoryStorage())
		if c := svc.GetCart(); len(c.Items) != 0 {
			t.Fatalf("expected empty cart, got %+v", c)
		}
	})

	t.Run("broken storage is swallowed", func(t *testing.T) {
		svc := New(ctx, failingStorage{})
		if c := svc.GetCart(); len(c.Items) != 0 {
			t.Fatalf("expected empty cart after load failure, got %+v", c)
		}

		// writes fail too; the in-memory cart stays authoritative
		c, err := svc.AddToCart(ctx, testProduct("1", 10), 1)
		if err != nil {
			t.Fatalf("AddToCart must not surface storage errors: %v", err)
		}
		if c.TotalItems != 1 {
			t.Fatalf("totalItems: want 1, got %d", c.TotalItems)
		}
	})
}
