package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/vrpkit/vrpctl/pkg/errors"
)

type contextKey string

const (
	contextKeyRequestID contextKey = "requestId"

	// HeaderRequestID carries the request id in both directions.
	HeaderRequestID = "X-Request-Id"
)

// RequestID returns the id assigned to the request, or "" outside of a
// request handled by the server middleware.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(contextKeyRequestID).(string)
	return id
}

// statusRecorder captures the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// withMiddleware wraps an API handler with request id, version, rate
// limiting, body size, panic recovery, logging and metrics handling.
func (s *Server) withMiddleware(pattern string, h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		requestID := r.Header.Get(HeaderRequestID)
		if _, err := uuid.Parse(requestID); err != nil {
			requestID = uuid.New().String()
		}
		r = r.WithContext(context.WithValue(r.Context(), contextKeyRequestID, requestID))
		w.Header().Set(HeaderRequestID, requestID)
		w.Header().Set(HeaderAPIVersion, negotiateAPIVersion(r))

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		defer func() {
			if p := recover(); p != nil {
				panicRecoveries.Inc()
				slog.Error("panic in handler", "panic", fmt.Sprint(p), "path", r.URL.Path, "requestId", requestID)
				WriteError(rec, r, http.StatusInternalServerError, errors.ErrCodeInternal, "internal server error", true, nil)
			}

			elapsed := time.Since(start)
			httpRequestsTotal.WithLabelValues(r.Method, pattern, strconv.Itoa(rec.status)).Inc()
			httpRequestDuration.WithLabelValues(r.Method, pattern).Observe(elapsed.Seconds())
			slog.Debug("request handled",
				"method", r.Method,
				"path", r.URL.Path,
				"status", rec.status,
				"requestId", requestID,
				"duration", elapsed)
		}()

		if !s.limiter.Allow() {
			rateLimitRejects.Inc()
			rec.Header().Set("Retry-After", "1")
			WriteError(rec, r, http.StatusTooManyRequests, errors.ErrCodeRateLimitExceeded,
				"rate limit exceeded", true, map[string]any{"limit": float64(s.config.RateLimit)})
			return
		}

		if s.config.MaxBodyBytes > 0 && r.Body != nil {
			r.Body = http.MaxBytesReader(rec, r.Body, s.config.MaxBodyBytes)
		}

		h(rec, r)
	}
}
