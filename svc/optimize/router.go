package optimize

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/svgforge/svgforge/pkg/ratelimit"
	"github.com/svgforge/svgforge/pkg/sizelimit"
)

// CredentialHeader carries the caller identity used for rate limiting and
// audit attribution.
const CredentialHeader = "X-API-Key"

// RouterOptions configures the HTTP surface of the pipeline.
type RouterOptions struct {
	// Limiter guards POST /optimize. Nil disables rate limiting.
	Limiter ratelimit.Limiter

	// KeyFunc extracts the rate limit key. Defaults to the credential
	// header, then the client IP.
	KeyFunc ratelimit.KeyFunc

	// LimitResolver resolves per-credential limits. Optional.
	LimitResolver ratelimit.LimitResolver

	Logger *slog.Logger
}

// Router mounts the pipeline endpoints on a chi router.
func Router(svc *Service, opts RouterOptions) chi.Router {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	r := chi.NewRouter()

	optimizeHandler := http.Handler(handleOptimize(svc, log))
	if opts.Limiter != nil {
		keyFunc := opts.KeyFunc
		if keyFunc == nil {
			keyFunc = ratelimit.Composite(ratelimit.KeyByHeader(CredentialHeader), ratelimit.KeyByIP())
		}
		var mwOpts []ratelimit.MiddlewareOption
		if opts.LimitResolver != nil {
			mwOpts = append(mwOpts, ratelimit.WithLimitResolver(opts.LimitResolver))
		}
		optimizeHandler = ratelimit.Middleware(opts.Limiter, keyFunc, mwOpts...)(optimizeHandler)
	}

	r.Method(http.MethodPost, "/optimize", optimizeHandler)
	r.Get("/stats", handleStats(svc))

	return r
}

func handleOptimize(svc *Service, log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		req.Credential = r.Header.Get(CredentialHeader)

		resp, err := svc.Process(r.Context(), req)
		if err != nil {
			status := http.StatusInternalServerError
			switch {
			case errors.Is(err, ErrInvalidContent):
				status = http.StatusBadRequest
			case errors.Is(err, sizelimit.ErrPayloadTooLarge):
				status = http.StatusRequestEntityTooLarge
			}
			if status == http.StatusInternalServerError {
				log.ErrorContext(r.Context(), "pipeline request failed", "filename", req.Filename, "error", err)
			}
			writeError(w, status, err.Error())
			return
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

func handleStats(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, svc.Stats())
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Success: false, Error: msg})
}
