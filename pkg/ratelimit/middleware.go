package ratelimit

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
)

// LimitResolver returns the per-window ceiling for a credential key. A
// non-positive return falls back to the limiter's default. Deployments wire
// this to their account system; the limiter itself never stores credentials.
type LimitResolver func(ctx context.Context, key string) int

type middlewareConfig struct {
	resolver LimitResolver
	onError  http.HandlerFunc
}

// MiddlewareOption configures Middleware.
type MiddlewareOption func(*middlewareConfig)

// WithLimitResolver wires per-credential limits into the middleware.
func WithLimitResolver(fn LimitResolver) MiddlewareOption {
	return func(c *middlewareConfig) {
		if fn != nil {
			c.resolver = fn
		}
	}
}

// WithErrorHandler overrides the response written when the limiter backend
// fails. The default answers 500.
func WithErrorHandler(fn http.HandlerFunc) MiddlewareOption {
	return func(c *middlewareConfig) {
		if fn != nil {
			c.onError = fn
		}
	}
}

// Middleware enforces the limiter on every request. Requests without a
// resolvable key pass through unlimited; anonymous traffic control is the
// caller's concern, usually via a KeyByIP fallback in a Composite.
func Middleware(limiter Limiter, keyFunc KeyFunc, opts ...MiddlewareOption) func(http.Handler) http.Handler {
	cfg := &middlewareConfig{
		onError: func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		},
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := keyFunc(r)
			if key == "" {
				next.ServeHTTP(w, r)
				return
			}

			cred := Credential{Key: key}
			if cfg.resolver != nil {
				cred.Limit = cfg.resolver(r.Context(), key)
			}

			result, err := limiter.Allow(r.Context(), cred)
			if err != nil {
				cfg.onError(w, r)
				return
			}

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(result.Limit))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
			w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt.Unix(), 10))

			if !result.Allowed {
				retryAfter := result.RetryAfterSeconds()
				w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
				w.Header().Set("Content-Type", "application/json; charset=utf-8")
				w.WriteHeader(http.StatusTooManyRequests)
				_ = json.NewEncoder(w).Encode(map[string]any{
					"success":    false,
					"error":      ErrRateLimitExceeded.Error(),
					"retryAfter": retryAfter,
				})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
