package usecase

import (
	"context"
	"time"
)

// ListingCache sits in front of the published-jobs read path. Implementations
// must degrade to a no-op when the cache backend is unavailable.
type ListingCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	DeleteByPattern(ctx context.Context, pattern string) error
}

// ListingNotifier is told after a successful write so connected list views can
// refresh. Delivery is best effort.
type ListingNotifier interface {
	JobsUpdated(reason string)
}
