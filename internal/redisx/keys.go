package redisx

import "time"

const (
	// Session token: pos:session:{token} -> user record JSON
	KeySession = "pos:session:%s"

	// Per-day order counter: pos:daily_number:{YYYY-MM-DD} -> last issued number
	KeyDailyNumber = "pos:daily_number:%s"

	// Order status cache: pos:order_status:{order_id} -> {"status": "..."}
	KeyOrderStatus = "pos:order_status:%s"

	// Consumer dedup: pos:dedup:{service}:{event_id}
	KeyDedup = "pos:dedup:%s:%s"
)

var (
	TTLSession     = 12 * time.Hour
	TTLDailyNumber = 48 * time.Hour
	TTLStatusCache = 5 * time.Minute
	TTLDedup       = 48 * time.Hour
)
