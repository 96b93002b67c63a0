package middleware

import (
	"net/http"
	"slices"
	"strings"

	"clockstore-backend/config"
	"clockstore-backend/pkg/utils"
)

// NewCORSMiddleware allows the configured storefront origins. ALLOWED_ORIGIN is
// a comma-separated list; "*" allows any origin, echoed back so credentials
// still work.
func NewCORSMiddleware(cfg *config.Config) func(http.Handler) http.Handler {
	allowedOrigins := strings.Split(cfg.AllowedOrigin, ",")
	for i := range allowedOrigins {
		allowedOrigins[i] = strings.TrimSpace(allowedOrigins[i])
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")

			// Credentialed requests need the exact origin, so "*" echoes it back.
			if origin != "" && slices.ContainsFunc(allowedOrigins, func(o string) bool { return o == "*" || o == origin }) {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Access-Control-Allow-Credentials", "true")
			}
			w.Header().Add("Vary", "Origin")

			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			w.Header().Set("Access-Control-Expose-Headers", utils.SessionTokenHeader+", X-Request-ID")

			// Handle Preflight requests
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
