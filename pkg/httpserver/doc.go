// Package httpserver wraps net/http with graceful shutdown, configurable
// timeouts, lifecycle hooks and a health-check handler.
//
// Run blocks until the context is cancelled or an interrupt/TERM signal
// arrives, then drains in-flight requests within the shutdown deadline.
// Startup and shutdown failures are wrapped with ErrStart and ErrShutdown so
// callers can branch with errors.Is.
package httpserver
