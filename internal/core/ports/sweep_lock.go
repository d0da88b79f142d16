package ports

import (
	"context"
	"time"
)

// SweepLock serializes the quote expiration sweep across service instances.
// Only the instance holding the lock runs a sweep; the others skip the
// cycle and retry on the next schedule.
type SweepLock interface {
	// TryAcquire attempts to take the lock for ttl. Returns false without
	// error when another instance holds it.
	TryAcquire(ctx context.Context, ttl time.Duration) (bool, error)

	// Release frees the lock early. Safe to call when the lock has already
	// expired.
	Release(ctx context.Context) error
}
