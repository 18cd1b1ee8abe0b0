package ratelimit

import (
	"context"
	"math"
	"time"
)

// DefaultWindow is the fixed window length applied by NewFixedWindow when the
// caller passes a non-positive duration.
const DefaultWindow = time.Minute

// Credential identifies a caller together with its per-window request
// ceiling. The limiter references credentials by value only; ownership stays
// with the external account system. A zero Limit falls back to the limiter's
// default.
type Credential struct {
	Key   string
	Limit int
}

// Result describes the outcome of one admission check.
type Result struct {
	// Allowed reports whether the request was admitted.
	Allowed bool

	// Limit is the ceiling that applied to this check.
	Limit int

	// Remaining is the number of requests left in the current window.
	Remaining int

	// ResetAt is when the current window expires.
	ResetAt time.Time
}

// RetryAfter returns how long to wait before the next attempt, 0 when the
// request was admitted.
func (r *Result) RetryAfter() time.Duration {
	if r.Allowed {
		return 0
	}
	return time.Until(r.ResetAt)
}

// RetryAfterSeconds returns RetryAfter rounded up to whole seconds, the unit
// reported to callers and in the Retry-After header.
func (r *Result) RetryAfterSeconds() int {
	d := r.RetryAfter()
	if d <= 0 {
		return 0
	}
	return int(math.Ceil(d.Seconds()))
}

// Limiter is the admission-control interface consumed by the HTTP middleware
// and the pipeline entry points.
type Limiter interface {
	// Allow records one request for the credential and reports whether it
	// was admitted. The counter advances even for rejected requests.
	Allow(ctx context.Context, cred Credential) (*Result, error)
}

// Store is the per-key window counter backend.
type Store interface {
	// Increment advances the counter for the key's current window, opening
	// a fresh window when the previous one has expired, and returns the
	// count after the increment together with the window's reset time.
	Increment(ctx context.Context, key string, window time.Duration) (count int64, resetAt time.Time, err error)

	// Delete removes the key's window state.
	Delete(ctx context.Context, key string) error
}
