// Package optimize is the ingestion pipeline behind every svgforge entry
// point: CLI, web editor, browser extension and programmatic API callers all
// funnel through Service.Process.
//
// One request flows: size validation, cache lookup by (content, options),
// then on a miss sanitization (or a read-only security audit, depending on
// the caller's mode), the optimization engine, attribute case conversion and
// a cache store. Cache hits skip the sanitizer and the engine but still
// count toward rate limits and the audit trail. Audit-record writes and
// webhook notifications happen off the request path and can never fail a
// response.
//
// The optimization engine itself is an external collaborator behind the
// Optimizer interface. Engine failures surface immediately to the caller and
// are never retried; a built-in conservative Minifier ships as the default
// so the binaries work standalone.
package optimize
