// Package async provides a small Future abstraction for running side effects
// off the request path.
//
// The pipeline uses it for fire-and-forget work (audit record writes, webhook
// notifications) where the caller either ignores the result entirely or
// collects it later with Await. Fire wraps the common drop-the-error case:
// the task runs in its own goroutine, panics are recovered, and failures are
// handed to a callback instead of propagating.
package async
