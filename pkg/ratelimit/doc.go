// Package ratelimit provides per-credential admission control in front of the
// optimization pipeline.
//
// The limiter counts requests in fixed, non-overlapping windows (60 seconds
// by default). The first request for a credential opens a window; once the
// window elapses the next request replaces it with a fresh one. Every request
// increments the window counter for bookkeeping, admitted or not, and a
// request is rejected once the counter exceeds the credential's limit.
// Rejections report the whole seconds remaining until the window resets.
//
// Two Store backends ship with the package: an in-memory map for single
// process deployments, with opportunistic purging of expired windows, and a
// Redis-backed store for sharing state across instances.
//
// Middleware adapts a limiter to HTTP, setting the X-RateLimit-Limit,
// X-RateLimit-Remaining and X-RateLimit-Reset headers on every response and
// answering rejected requests with 429, a Retry-After header and a JSON body
// carrying the retry delay.
package ratelimit
