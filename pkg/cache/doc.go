// Package cache provides the bounded, content-addressed store for computed
// optimization results.
//
// Entries are keyed by a SHA-256 digest of the document content together with
// the option flags that influenced the result, so two requests with identical
// content and identical options map to the same key regardless of arrival
// order or caller identity. Capacity is fixed at construction; once full,
// insertion evicts the least recently used entry. A Get refreshes recency.
//
// The cache is a pure optimization: a miss is never an error, callers fall
// through to the full pipeline. Hit/miss counters and the derived hit rate
// are exposed for observability only, never the backing map itself.
//
// All operations are safe for concurrent use. Two concurrent misses for the
// same key may both compute and both Set; the values are idempotent given
// identical input, so last write wins by design.
package cache
