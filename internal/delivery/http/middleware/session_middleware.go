package middleware

import (
	"clockstore-backend/config"
	"clockstore-backend/internal/domain"
	"clockstore-backend/pkg/logger"
	"clockstore-backend/pkg/utils"
	"context"
	"net/http"
)

// NewSessionMiddleware resolves the storefront session of every request.
// Requests without a token get a new session; a token that fails
// validation is rejected.
func NewSessionMiddleware(cfg *config.Config) func(http.Handler) http.Handler {
	secure := cfg.Env == "production"
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// 1. Get Token from Header or Cookie
			tokenString := utils.ExtractSessionToken(r)

			// 2. Validate or issue
			var sessionID string
			if tokenString == "" {
				id, _, err := utils.IssueSession(w, cfg.SessionTokenExpiry, secure)
				if err != nil {
					logger.WithContext(r.Context()).Error().Err(err).Msg("Failed to issue session")
					utils.WriteError(w, http.StatusInternalServerError, "Failed to start session")
					return
				}
				sessionID = id
			} else {
				id, err := utils.ValidateSessionToken(tokenString)
				if err != nil {
					utils.WriteError(w, http.StatusUnauthorized, "Unauthorized: Invalid session token")
					return
				}
				sessionID = id
			}

			// 3. Set Context
			recordSession(r.Context(), sessionID)
			ctx := context.WithValue(r.Context(), domain.SessionContextKey, sessionID)
			sessLogger := logger.WithSessionID(*logger.WithContext(ctx), sessionID)
			ctx = logger.NewContext(ctx, &sessLogger)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
