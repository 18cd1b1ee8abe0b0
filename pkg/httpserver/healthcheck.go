package httpserver

import "net/http"

// HealthCheckHandler answers 200 with a minimal JSON body. Mount it as both
// the liveness and readiness probe.
func HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}
}
