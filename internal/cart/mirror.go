package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"

	kafkax "github.com/valeriach30/Arquitectura/internal/kafka"
	"github.com/valeriach30/Arquitectura/internal/redisx"
)

// Mirror is a consumer-side read replica of the shared cart. Front-end
// processes that must not talk to the cart service on every render follow
// the cart.updated stream instead and read the mirror locally.
//
// The mirror is read-only: it never persists and never publishes.
type Mirror struct {
	Redis       *redis.Client // event dedup; nil disables dedup
	ServiceName string

	mu      sync.Mutex
	cart    Cart
	subs    []subscription
	nextSub int
}

// Cart returns the last replicated cart state.
func (m *Mirror) Cart() Cart {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cart.snapshot()
}

// Subscribe mirrors Service.Subscribe for consumers of the replica.
func (m *Mirror) Subscribe(fn Listener) (unsubscribe func()) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.nextSub
	m.nextSub++
	m.subs = append(m.subs, subscription{id: id, fn: fn})

	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		for i, sub := range m.subs {
			if sub.id == id {
				m.subs = append(m.subs[:i], m.subs[i+1:]...)
				return
			}
		}
	}
}

// HandleCartUpdated is the consumer handler. It decodes the envelope,
// skips foreign event types, dedups by event id and replaces the replica
// with the cart carried in the payload.
func (m *Mirror) HandleCartUpdated(ctx context.Context, msg kafkago.Message) error {
	var env Envelope
	if err := json.Unmarshal(msg.Value, &env); err != nil {
		return err
	}
	if env.EventType != EventCartUpdated {
		return nil
	}

	if m.Redis != nil {
		name := m.ServiceName
		if name == "" {
			name = "cartmirror"
		}
		dkey := fmt.Sprintf(redisx.KeyDedup, name, env.EventID)
		exists, _ := redisx.Exists(ctx, m.Redis, dkey)
		if exists {
			return nil
		}
		_ = m.Redis.Set(ctx, dkey, "1", redisx.TTLDedup).Err()
	}

	p, err := kafkax.UnwrapPayload[CartUpdatedPayload](env.Payload)
	if err != nil {
		return err
	}
	c := p.Cart
	if c.Items == nil {
		c.Items = []CartItem{}
	}

	m.mu.Lock()
	m.cart = c
	snap := m.cart.snapshot()
	subs := append([]subscription(nil), m.subs...)
	m.mu.Unlock()

	notify(snap, subs)
	return nil
}
