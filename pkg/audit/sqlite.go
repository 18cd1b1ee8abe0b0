package audit

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS audit_records (
	id             TEXT PRIMARY KEY,
	created_at     TIMESTAMP NOT NULL,
	credential     TEXT NOT NULL DEFAULT '',
	filename       TEXT NOT NULL DEFAULT '',
	original_size  INTEGER NOT NULL DEFAULT 0,
	optimized_size INTEGER NOT NULL DEFAULT 0,
	cached         INTEGER NOT NULL DEFAULT 0,
	sanitized      INTEGER NOT NULL DEFAULT 0,
	result         TEXT NOT NULL,
	error          TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_audit_created_at ON audit_records (created_at);
`

// SQLiteStorage persists audit records in an embedded SQLite database.
type SQLiteStorage struct {
	db *sql.DB
}

// NewSQLiteStorage opens (and initializes, if needed) the database at path.
// Use ":memory:" for an ephemeral database.
func NewSQLiteStorage(path string) (*SQLiteStorage, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("audit: open sqlite: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("audit: init schema: %w", err)
	}

	return &SQLiteStorage{db: db}, nil
}

func (s *SQLiteStorage) Store(ctx context.Context, rec Record) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO audit_records
			(id, created_at, credential, filename, original_size, optimized_size, cached, sanitized, result, error)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.CreatedAt, rec.Credential, rec.Filename,
		rec.OriginalSize, rec.OptimizedSize, rec.Cached, rec.Sanitized,
		string(rec.Result), rec.Error)
	if err != nil {
		return fmt.Errorf("audit: store record: %w", err)
	}
	return nil
}

// Recent returns up to limit records, newest first.
func (s *SQLiteStorage) Recent(ctx context.Context, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = 100
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, created_at, credential, filename, original_size, optimized_size, cached, sanitized, result, error
		FROM audit_records ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("audit: query records: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rec Record
		var result string
		if err := rows.Scan(&rec.ID, &rec.CreatedAt, &rec.Credential, &rec.Filename,
			&rec.OriginalSize, &rec.OptimizedSize, &rec.Cached, &rec.Sanitized,
			&result, &rec.Error); err != nil {
			return nil, fmt.Errorf("audit: scan record: %w", err)
		}
		rec.Result = Result(result)
		records = append(records, rec)
	}

	return records, rows.Err()
}

// Close releases the underlying database handle.
func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}
