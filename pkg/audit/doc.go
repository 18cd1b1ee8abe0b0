// Package audit records what the optimization pipeline did with each request.
//
// Records are written fire-and-forget: the Recorder hands them to its Storage
// backend on a separate goroutine and a storage failure is logged and
// dropped, never surfaced to the request that produced the record. The
// primary response must not depend on the audit trail being writable.
//
// Storage backends: MemoryStorage (tests, single process) and SQLiteStorage
// (embedded persistence via modernc.org/sqlite, no cgo).
package audit
