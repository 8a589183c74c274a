package redisx

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/laes18/go-restaurant-pos/internal/pos"
)

// StatusCache keeps a short-lived copy of each order's status so the
// high-frequency ready polls do not hit postgres on every tick.
type StatusCache struct{ R *redis.Client }

func (c *StatusCache) Set(ctx context.Context, orderID string, st pos.Status) {
	key := fmt.Sprintf(KeyOrderStatus, orderID)
	_ = c.R.Set(ctx, key, string(st), TTLStatusCache).Err()
}

func (c *StatusCache) Get(ctx context.Context, orderID string) (pos.Status, bool) {
	key := fmt.Sprintf(KeyOrderStatus, orderID)
	v, err := c.R.Get(ctx, key).Result()
	if err != nil || v == "" {
		return "", false
	}
	return pos.Status(v), true
}
