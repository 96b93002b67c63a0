package v1

import (
	"clockstore-backend/internal/domain"
	"clockstore-backend/pkg/logger"
	"clockstore-backend/pkg/utils"
	"errors"
	"net/http"
)

// writeUsecaseError maps domain errors to HTTP statuses. Anything unrecognized
// is logged and reported as a 500 without leaking details.
func writeUsecaseError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		utils.WriteFieldErrors(w, http.StatusBadRequest, "Missing required fields", verr.Missing)
	case errors.Is(err, domain.ErrCartEmpty):
		utils.WriteError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrEmailRequired):
		utils.WriteError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrProductNotFound):
		utils.WriteError(w, http.StatusNotFound, err.Error())
	default:
		logger.WithContext(r.Context()).Error().Err(err).Str("path", r.URL.Path).Msg("Request failed")
		utils.WriteError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// sessionID returns the session resolved by the session middleware, writing a
// 401 when there is none.
func sessionID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id, ok := domain.SessionIDFromContext(r.Context())
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "Unauthorized")
	}
	return id, ok
}
