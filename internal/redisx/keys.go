package redisx

import "time"

const (
	// The whole serialized cart lives under this one key, mirroring the
	// localStorage entry of the original storefront.
	KeyCart = "f1-cart"

	// Dedup event processing: dedup:{service}:{event_id}
	KeyDedup = "dedup:%s:%s"
)

var (
	TTLDedup = 48 * time.Hour
)
