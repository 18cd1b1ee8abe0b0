package optimize

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/svgforge/svgforge/pkg/audit"
	"github.com/svgforge/svgforge/pkg/cache"
	"github.com/svgforge/svgforge/pkg/sanitizer"
	"github.com/svgforge/svgforge/pkg/sizelimit"
)

// Config controls pipeline defaults. Values map to environment variables so
// deployments tune the pipeline without code changes.
type Config struct {
	MaxBytes        int    `env:"PIPELINE_MAX_BYTES" envDefault:"1048576"`
	CacheCapacity   int    `env:"PIPELINE_CACHE_CAPACITY" envDefault:"1000"`
	SanitizeDefault bool   `env:"PIPELINE_SANITIZE_DEFAULT" envDefault:"true"`
	WebhookURL      string `env:"PIPELINE_WEBHOOK_URL"`
	WebhookSecret   string `env:"PIPELINE_WEBHOOK_SECRET"`
}

// Service runs the optimization pipeline: validate, sanitize or audit,
// optimize, camelCase, cache, and record.
type Service struct {
	cfg       Config
	cache     *cache.ResultCache
	optimizer Optimizer
	recorder  *audit.Recorder
	notifier  *Notifier
	log       *slog.Logger
}

// ServiceOption customizes a Service at construction.
type ServiceOption func(*Service)

// WithOptimizer replaces the built-in minifier.
func WithOptimizer(opt Optimizer) ServiceOption {
	return func(s *Service) {
		if opt != nil {
			s.optimizer = opt
		}
	}
}

// WithCache replaces the default result cache.
func WithCache(c *cache.ResultCache) ServiceOption {
	return func(s *Service) {
		if c != nil {
			s.cache = c
		}
	}
}

// WithRecorder attaches an audit recorder. Without one, outcomes are not
// persisted.
func WithRecorder(r *audit.Recorder) ServiceOption {
	return func(s *Service) { s.recorder = r }
}

// WithNotifier attaches a webhook notifier for completed runs.
func WithNotifier(n *Notifier) ServiceOption {
	return func(s *Service) { s.notifier = n }
}

// WithLogger replaces the default logger.
func WithLogger(log *slog.Logger) ServiceOption {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// NewService builds a Service with the built-in minifier behind a lazy
// initializer and a cache sized from cfg.
func NewService(cfg Config, opts ...ServiceOption) *Service {
	if cfg.MaxBytes <= 0 {
		cfg.MaxBytes = sizelimit.DefaultMaxBytes
	}
	if cfg.CacheCapacity <= 0 {
		cfg.CacheCapacity = 1000
	}
	s := &Service{
		cfg:   cfg,
		cache: cache.New(cfg.CacheCapacity),
		optimizer: NewLazyOptimizer(func() (Optimizer, error) {
			return NewMinifier(), nil
		}),
		log: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Process runs one document through the pipeline.
func (s *Service) Process(ctx context.Context, req Request) (*Response, error) {
	content := strings.TrimSpace(req.Content)
	if !strings.HasPrefix(content, "<svg") && !strings.HasPrefix(content, "<?xml") {
		return nil, ErrInvalidContent
	}

	maxBytes := req.MaxSize
	if maxBytes <= 0 {
		maxBytes = s.cfg.MaxBytes
	}
	if err := sizelimit.Validate(req.Content, maxBytes); err != nil {
		return nil, err
	}

	sanitize := req.sanitize(s.cfg.SanitizeDefault)
	camelCase := req.camelCase()
	filename := req.filename()
	cacheOpts := cache.Options{Sanitize: sanitize, CamelCase: camelCase}

	if entry, ok := s.cache.Get(req.Content, cacheOpts); ok {
		resp := s.buildResponse(filename, entry, sanitize, camelCase, nil)
		resp.Cached = true
		s.record(ctx, req, resp, sanitize)
		return resp, nil
	}

	doc := req.Content
	var warnings []string
	if sanitize {
		outcome := sanitizer.Sanitize(doc, sanitizer.DefaultOptions())
		doc = outcome.Sanitized
		warnings = outcome.Issues
	} else {
		warnings = sanitizer.Audit(doc)
	}

	optimized, err := s.optimizer.Optimize(ctx, doc)
	if err != nil {
		s.recordFailure(ctx, req, sanitize, err)
		return nil, fmt.Errorf("%w: %w", ErrOptimizerFailed, err)
	}

	if camelCase {
		optimized = sanitizer.CamelCaseAttributes(optimized)
	}

	entry := cache.Entry{
		Result:        optimized,
		OriginalSize:  len(req.Content),
		OptimizedSize: len(optimized),
		InsertedAt:    time.Now(),
	}
	s.cache.Set(req.Content, cacheOpts, entry)

	resp := s.buildResponse(filename, entry, sanitize, camelCase, warnings)
	s.record(ctx, req, resp, sanitize)
	s.notify(ctx, resp)
	return resp, nil
}

// Stats returns a snapshot of the result cache counters.
func (s *Service) Stats() cache.Stats {
	return s.cache.Stats()
}

func (s *Service) buildResponse(filename string, entry cache.Entry, sanitized, camelCase bool, warnings []string) *Response {
	return &Response{
		Success:          true,
		Filename:         filename,
		Optimization:     newOptimization(entry.OriginalSize, entry.OptimizedSize),
		CamelCaseApplied: camelCase,
		Sanitized:        sanitized,
		SecurityWarnings: warnings,
		Result:           entry.Result,
	}
}

func (s *Service) record(ctx context.Context, req Request, resp *Response, sanitized bool) {
	if s.recorder == nil {
		return
	}
	s.recorder.Record(ctx, audit.Record{
		Credential:    req.Credential,
		Filename:      resp.Filename,
		OriginalSize:  resp.Optimization.OriginalSize,
		OptimizedSize: resp.Optimization.OptimizedSize,
		Cached:        resp.Cached,
		Sanitized:     sanitized,
	})
}

func (s *Service) recordFailure(ctx context.Context, req Request, sanitized bool, cause error) {
	if s.recorder == nil {
		return
	}
	s.recorder.Failure(ctx, audit.Record{
		Credential:   req.Credential,
		Filename:     req.filename(),
		OriginalSize: len(req.Content),
		Sanitized:    sanitized,
	}, cause)
}

func (s *Service) notify(ctx context.Context, resp *Response) {
	if s.notifier == nil {
		return
	}
	s.notifier.ResultProduced(ctx, resp)
}
