package server

import (
	"context"
	"net/http"
	"time"

	"github.com/budde25/partydj/internal/shared"
	"github.com/charmbracelet/log"
)

type contextKey string

// RequestIDKey is the context key under which the request ID is stored.
const RequestIDKey contextKey = "request_id"

// requestIDHeader is echoed back to clients for correlation.
const requestIDHeader = "X-Request-ID"

// RequestID assigns each request a v4 UUID, stores it on the request
// context, and echoes it in the response headers. Incoming IDs are
// honored so mobile clients can correlate retries.
func RequestID() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(requestIDHeader)
			if id == "" {
				id = shared.GenerateID()
			}

			w.Header().Set(requestIDHeader, id)
			ctx := context.WithValue(r.Context(), RequestIDKey, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// statusRecorder captures the status code written by downstream handlers.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// Logging logs one line per request: method, path, status, duration,
// and the request ID when present.
func Logging(logger *log.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(recorder, r)

			kv := []any{
				"method", r.Method,
				"path", r.URL.Path,
				"status", recorder.status,
				"duration", time.Since(start),
			}
			if id, ok := r.Context().Value(RequestIDKey).(string); ok {
				kv = append(kv, "request_id", id)
			}
			logger.Info("request", kv...)
		})
	}
}
