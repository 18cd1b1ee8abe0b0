package ratelimit

import (
	"context"
	"time"
)

// FixedWindow is a Limiter counting requests in fixed, non-overlapping
// windows per credential.
type FixedWindow struct {
	store  Store
	limit  int
	window time.Duration
}

// NewFixedWindow creates a fixed-window limiter. limit is the default
// per-window ceiling for credentials that do not carry their own; window
// falls back to DefaultWindow when non-positive.
func NewFixedWindow(store Store, limit int, window time.Duration) (*FixedWindow, error) {
	if store == nil {
		return nil, ErrStoreRequired
	}
	if limit <= 0 {
		return nil, ErrInvalidLimit
	}
	if window <= 0 {
		window = DefaultWindow
	}

	return &FixedWindow{store: store, limit: limit, window: window}, nil
}

// Allow records one request for the credential. The underlying counter
// advances whether or not the request is admitted, so rejected traffic is
// still visible in the window's bookkeeping.
func (fw *FixedWindow) Allow(ctx context.Context, cred Credential) (*Result, error) {
	if cred.Key == "" {
		return nil, ErrKeyRequired
	}

	limit := cred.Limit
	if limit <= 0 {
		limit = fw.limit
	}

	count, resetAt, err := fw.store.Increment(ctx, cred.Key, fw.window)
	if err != nil {
		return nil, err
	}

	remaining := limit - int(count)
	if remaining < 0 {
		remaining = 0
	}

	return &Result{
		Allowed:   count <= int64(limit),
		Limit:     limit,
		Remaining: remaining,
		ResetAt:   resetAt,
	}, nil
}

// Reset clears the window state for the credential.
func (fw *FixedWindow) Reset(ctx context.Context, cred Credential) error {
	if cred.Key == "" {
		return ErrKeyRequired
	}
	return fw.store.Delete(ctx, cred.Key)
}
