package middleware

import (
	"clockstore-backend/pkg/logger"
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// RequestLogger logs all HTTP requests with timing, status and storefront session
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		requestID := uuid.New().String()[:8]
		reqLogger := logger.WithRequestID(requestID)
		w.Header().Set("X-Request-ID", requestID)

		// Wrap response writer to capture status code and session
		wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		ctx := logger.NewContext(r.Context(), &reqLogger)
		r = r.WithContext(context.WithValue(ctx, exchangeKey{}, wrapped))

		next.ServeHTTP(wrapped, r)

		duration := time.Since(start)

		logEvent := reqLogger.Info()
		if wrapped.statusCode >= 500 {
			logEvent = reqLogger.Error()
		} else if wrapped.statusCode >= 400 {
			logEvent = reqLogger.Warn()
		}

		logEvent.
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Str("query", r.URL.RawQuery).
			Int("status", wrapped.statusCode).
			Dur("duration_ms", duration).
			Str("ip", getClientIP(r)).
			Str("origin", r.Header.Get("Origin")).
			Str("user_agent", r.UserAgent()).
			Str("session_id", wrapped.sessionID).
			Msg("HTTP")
	})
}

type exchangeKey struct{}

// recordSession hands the resolved session id to the enclosing RequestLogger, if any.
func recordSession(ctx context.Context, sessionID string) {
	if rw, ok := ctx.Value(exchangeKey{}).(*responseWriter); ok {
		rw.sessionID = sessionID
	}
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	sessionID  string
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// getClientIP extracts client IP from request
func getClientIP(r *http.Request) string {
	// First hop of X-Forwarded-For is the original client
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		return strings.TrimSpace(first)
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	return r.RemoteAddr
}
