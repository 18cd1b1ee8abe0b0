package ratelimit_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/svgforge/svgforge/pkg/ratelimit"
)

func newTestLimiter(t *testing.T, limit int, window time.Duration) (*ratelimit.FixedWindow, *ratelimit.MemoryStore) {
	t.Helper()

	store := ratelimit.NewMemoryStore(ratelimit.WithCleanupInterval(0))
	t.Cleanup(store.Close)

	fw, err := ratelimit.NewFixedWindow(store, limit, window)
	require.NoError(t, err)
	return fw, store
}

func TestNewFixedWindow(t *testing.T) {
	store := ratelimit.NewMemoryStore(ratelimit.WithCleanupInterval(0))
	defer store.Close()

	t.Run("requires a store", func(t *testing.T) {
		_, err := ratelimit.NewFixedWindow(nil, 5, time.Minute)
		assert.ErrorIs(t, err, ratelimit.ErrStoreRequired)
	})

	t.Run("requires a positive limit", func(t *testing.T) {
		_, err := ratelimit.NewFixedWindow(store, 0, time.Minute)
		assert.ErrorIs(t, err, ratelimit.ErrInvalidLimit)
	})
}

func TestFixedWindow_Allow(t *testing.T) {
	ctx := context.Background()

	t.Run("admits up to the limit and rejects the next", func(t *testing.T) {
		fw, _ := newTestLimiter(t, 5, time.Minute)
		cred := ratelimit.Credential{Key: "api-key-1"}

		for i := 0; i < 5; i++ {
			res, err := fw.Allow(ctx, cred)
			require.NoError(t, err)
			assert.True(t, res.Allowed, "request %d should be admitted", i+1)
			assert.Equal(t, 5-(i+1), res.Remaining)
		}

		res, err := fw.Allow(ctx, cred)
		require.NoError(t, err)
		assert.False(t, res.Allowed)
		assert.Equal(t, 0, res.Remaining)
		assert.Greater(t, res.RetryAfterSeconds(), 0)
		assert.LessOrEqual(t, res.RetryAfterSeconds(), 60)
	})

	t.Run("fresh window after expiry resets the count", func(t *testing.T) {
		fw, _ := newTestLimiter(t, 1, 50*time.Millisecond)
		cred := ratelimit.Credential{Key: "api-key-2"}

		res, err := fw.Allow(ctx, cred)
		require.NoError(t, err)
		require.True(t, res.Allowed)

		res, err = fw.Allow(ctx, cred)
		require.NoError(t, err)
		require.False(t, res.Allowed)

		time.Sleep(60 * time.Millisecond)

		res, err = fw.Allow(ctx, cred)
		require.NoError(t, err)
		assert.True(t, res.Allowed)
		assert.Equal(t, 0, res.Remaining) // count restarted at 1 of 1
	})

	t.Run("rejected requests still advance the counter", func(t *testing.T) {
		fw, store := newTestLimiter(t, 2, time.Minute)
		cred := ratelimit.Credential{Key: "api-key-3"}

		for i := 0; i < 5; i++ {
			_, err := fw.Allow(ctx, cred)
			require.NoError(t, err)
		}

		count, _, err := store.Increment(ctx, cred.Key, time.Minute)
		require.NoError(t, err)
		assert.Equal(t, int64(6), count)
	})

	t.Run("credential limit overrides the default", func(t *testing.T) {
		fw, _ := newTestLimiter(t, 100, time.Minute)
		cred := ratelimit.Credential{Key: "api-key-4", Limit: 1}

		res, err := fw.Allow(ctx, cred)
		require.NoError(t, err)
		assert.True(t, res.Allowed)
		assert.Equal(t, 1, res.Limit)

		res, err = fw.Allow(ctx, cred)
		require.NoError(t, err)
		assert.False(t, res.Allowed)
	})

	t.Run("credentials are independent", func(t *testing.T) {
		fw, _ := newTestLimiter(t, 1, time.Minute)

		res, err := fw.Allow(ctx, ratelimit.Credential{Key: "a"})
		require.NoError(t, err)
		require.True(t, res.Allowed)

		res, err = fw.Allow(ctx, ratelimit.Credential{Key: "b"})
		require.NoError(t, err)
		assert.True(t, res.Allowed)
	})

	t.Run("empty key is rejected", func(t *testing.T) {
		fw, _ := newTestLimiter(t, 1, time.Minute)

		_, err := fw.Allow(ctx, ratelimit.Credential{})
		assert.ErrorIs(t, err, ratelimit.ErrKeyRequired)
	})
}

func TestFixedWindow_Reset(t *testing.T) {
	ctx := context.Background()
	fw, _ := newTestLimiter(t, 1, time.Minute)
	cred := ratelimit.Credential{Key: "reset-me"}

	_, err := fw.Allow(ctx, cred)
	require.NoError(t, err)
	res, err := fw.Allow(ctx, cred)
	require.NoError(t, err)
	require.False(t, res.Allowed)

	require.NoError(t, fw.Reset(ctx, cred))

	res, err = fw.Allow(ctx, cred)
	require.NoError(t, err)
	assert.True(t, res.Allowed)
}
