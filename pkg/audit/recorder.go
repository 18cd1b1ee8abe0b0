package audit

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/svgforge/svgforge/pkg/async"
)

// Recorder writes audit records without ever blocking or failing the request
// that produced them.
type Recorder struct {
	storage Storage
	log     *slog.Logger
}

// NewRecorder creates a Recorder. Storage must not be nil; a nil logger
// falls back to slog.Default.
func NewRecorder(storage Storage, log *slog.Logger) *Recorder {
	if storage == nil {
		panic("audit: storage cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}
	return &Recorder{storage: storage, log: log}
}

// Record stamps the record with an ID and timestamp and stores it on a
// separate goroutine. The write survives cancellation of the request context,
// and a storage failure is logged and dropped.
func (r *Recorder) Record(ctx context.Context, rec Record) {
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}
	if rec.Result == "" {
		rec.Result = ResultSuccess
	}

	async.Fire(context.WithoutCancel(ctx), func(ctx context.Context) error {
		return r.storage.Store(ctx, rec)
	}, func(err error) {
		r.log.ErrorContext(ctx, "audit record dropped",
			slog.String("record_id", rec.ID),
			slog.String("error", err.Error()))
	})
}

// Failure records a failed request: zero optimized size, the error text, and
// ResultFailure.
func (r *Recorder) Failure(ctx context.Context, rec Record, cause error) {
	rec.Result = ResultFailure
	rec.OptimizedSize = 0
	if cause != nil {
		rec.Error = cause.Error()
	}
	r.Record(ctx, rec)
}
