// Package logger builds configured slog.Logger instances for the service
// binaries.
//
// The factory applies functional options over production-safe defaults
// (JSON output at INFO level) and can wrap the handler with context
// extractors so request-scoped values, such as the request ID, appear on
// every record logged within that request.
package logger
