// Package webhook delivers outbound JSON notifications after a pipeline
// result is produced.
//
// Deliveries are signed with HMAC-SHA256 bound to a timestamp and delivery
// ID, retried with exponential backoff on network errors and 5xx responses,
// and never retried on 4xx. Callers fire deliveries off the request path;
// a delivery failure is an observability event, not a pipeline error.
package webhook
