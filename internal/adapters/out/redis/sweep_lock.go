// Package redis implements the sweep lock that serializes the quote
// expiration sweep across service instances.
package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// SweepLock is a Redis-backed advisory lock. TryAcquire uses SET NX with a
// TTL so a crashed holder never blocks the sweep forever.
type SweepLock struct {
	client *redis.Client
	key    string
	token  string
}

// NewSweepLock creates a lock stored under key. Each service instance
// passes its own token so Release only frees a lock it still holds.
func NewSweepLock(client *redis.Client, key, token string) *SweepLock {
	return &SweepLock{
		client: client,
		key:    key,
		token:  token,
	}
}

// TryAcquire attempts to take the lock for ttl. Returns false without error
// when another instance holds it.
func (l *SweepLock) TryAcquire(ctx context.Context, ttl time.Duration) (bool, error) {
	return l.client.SetNX(ctx, l.key, l.token, ttl).Result()
}

// releaseScript deletes the key only when it still carries this instance's
// token, so an expired-and-reacquired lock is never freed from under the
// new holder.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
    return redis.call("DEL", KEYS[1])
end
return 0
`)

// Release frees the lock early. Safe to call when the lock has already
// expired or was taken over by another instance.
func (l *SweepLock) Release(ctx context.Context) error {
	return releaseScript.Run(ctx, l.client, []string{l.key}, l.token).Err()
}
