package redisx

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Numbering hands out the human-facing sequential order number, restarting
// at 1 each calendar day. Distinct from the persistent order id.
type Numbering struct{ R *redis.Client }

func (n *Numbering) Next(ctx context.Context, day time.Time) (int, error) {
	key := fmt.Sprintf(KeyDailyNumber, day.Format("2006-01-02"))
	v, err := n.R.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	// TTL only matters on the first increment of the day
	if v == 1 {
		_ = n.R.Expire(ctx, key, TTLDailyNumber).Err()
	}
	return int(v), nil
}
