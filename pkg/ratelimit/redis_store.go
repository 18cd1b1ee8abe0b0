package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// incrScript advances the window counter and stamps the expiry atomically.
// The expiry is only set when the increment opened the window, so the reset
// boundary stays fixed for the window's lifetime.
var incrScript = redis.NewScript(`
local count = redis.call('INCR', KEYS[1])
if count == 1 then
	redis.call('PEXPIRE', KEYS[1], ARGV[1])
end
local ttl = redis.call('PTTL', KEYS[1])
return {count, ttl}
`)

// RedisStore keeps window counters in Redis so multiple service instances
// share rate-limit state. Expired windows vanish with their key TTL; no
// explicit sweeping is needed.
type RedisStore struct {
	client    redis.UniversalClient
	keyPrefix string
}

// RedisStoreOption configures a RedisStore.
type RedisStoreOption func(*RedisStore)

// WithKeyPrefix sets the namespace prepended to every window key.
func WithKeyPrefix(prefix string) RedisStoreOption {
	return func(s *RedisStore) {
		if prefix != "" {
			s.keyPrefix = prefix
		}
	}
}

// NewRedisStore creates a Redis-backed window store.
func NewRedisStore(client redis.UniversalClient, opts ...RedisStoreOption) (*RedisStore, error) {
	if client == nil {
		return nil, ErrStoreRequired
	}

	s := &RedisStore{client: client, keyPrefix: "ratelimit:"}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Increment advances the counter for key's current window.
func (s *RedisStore) Increment(ctx context.Context, key string, windowLen time.Duration) (int64, time.Time, error) {
	now := time.Now()

	res, err := incrScript.Run(ctx, s.client, []string{s.keyPrefix + key}, windowLen.Milliseconds()).Slice()
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("ratelimit: redis increment: %w", err)
	}
	if len(res) != 2 {
		return 0, time.Time{}, fmt.Errorf("ratelimit: redis increment: unexpected reply %v", res)
	}

	count, _ := res[0].(int64)
	ttlMillis, _ := res[1].(int64)

	resetAt := now.Add(windowLen)
	if ttlMillis > 0 {
		resetAt = now.Add(time.Duration(ttlMillis) * time.Millisecond)
	}

	return count, resetAt, nil
}

// Delete removes the window state for key.
func (s *RedisStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.keyPrefix+key).Err(); err != nil {
		return fmt.Errorf("ratelimit: redis delete: %w", err)
	}
	return nil
}
