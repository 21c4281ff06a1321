package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented cache for assembled read results. A miss is
// reported as (nil, nil); cache failures must never fail a read, the
// caller falls through to the store.
type Cache interface {
	// Get retrieves a cached payload. Returns (nil, nil) on a miss.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set stores a payload with a TTL.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete drops a cached payload.
	Delete(ctx context.Context, key string) error
}

// LogbookKey addresses the assembled full logbook of one owner-day.
func LogbookKey(ownerID, date string) string {
	return "logbook:full:" + ownerID + ":" + date
}

// GraphKey addresses the warm keyword graph of one owner.
func GraphKey(ownerID string) string {
	return "logbook:graph:" + ownerID
}
