package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/valeriach30/Arquitectura/internal/redisx"
)

// RedisStorage persists the cart mirror as one JSON value under a fixed
// key, the durable stand-in for the original storefront's localStorage
// entry. No TTL: the cart survives until cleared.
type RedisStorage struct {
	Client *redis.Client
	Key    string // defaults to redisx.KeyCart
}

func (r *RedisStorage) key() string {
	if r.Key != "" {
		return r.Key
	}
	return redisx.KeyCart
}

func (r *RedisStorage) Get(ctx context.Context) (Cart, bool, error) {
	raw, err := r.Client.Get(ctx, r.key()).Result()
	if errors.Is(err, redis.Nil) {
		return Cart{}, false, nil
	}
	if err != nil {
		return Cart{}, false, fmt.Errorf("redis get %s: %w", r.key(), err)
	}
	var c Cart
	if err := json.Unmarshal([]byte(raw), &c); err != nil {
		return Cart{}, false, fmt.Errorf("decode cart %s: %w", r.key(), err)
	}
	return c, true, nil
}

func (r *RedisStorage) Set(ctx context.Context, c Cart) error {
	b, err := json.Marshal(c)
	if err != nil {
		return err
	}
	if err := r.Client.Set(ctx, r.key(), b, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", r.key(), err)
	}
	return nil
}

func (r *RedisStorage) Clear(ctx context.Context) error {
	if err := r.Client.Del(ctx, r.key()).Err(); err != nil {
		return fmt.Errorf("redis del %s: %w", r.key(), err)
	}
	return nil
}
