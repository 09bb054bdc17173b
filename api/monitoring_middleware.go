package api

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/velascoluis/data-roster/metrics"
)

type interceptedResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func responseWriter(w http.ResponseWriter) *interceptedResponseWriter {
	return &interceptedResponseWriter{w, http.StatusOK}
}

func (lrw *interceptedResponseWriter) WriteHeader(code int) {
	lrw.statusCode = code
	lrw.ResponseWriter.WriteHeader(code)
}

// MonitoringMiddleware intercepts every response and pushes response time
// and status code to statsd.
func MonitoringMiddleware(monitor *metrics.Monitor) mux.MiddlewareFunc {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rw := responseWriter(w)
			h.ServeHTTP(rw, r)

			monitor.ResponseTime(r.Method, r.URL.Path, time.Since(start))
			monitor.ResponseStatus(r.Method, r.URL.Path, rw.statusCode)
		})
	}
}
