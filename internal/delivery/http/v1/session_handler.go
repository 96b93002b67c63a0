package v1

import (
	"clockstore-backend/config"
	"clockstore-backend/pkg/logger"
	"clockstore-backend/pkg/utils"
	"net/http"
)

type SessionHandler struct {
	cfg *config.Config
}

func NewSessionHandler(cfg *config.Config) *SessionHandler {
	return &SessionHandler{cfg: cfg}
}

type sessionResponse struct {
	SessionID string `json:"sessionId"`
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expiresIn"`
}

// POST /api/v1/session
func (h *SessionHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	id, token, err := utils.IssueSession(w, h.cfg.SessionTokenExpiry, h.cfg.Env == "production")
	if err != nil {
		logger.WithContext(r.Context()).Error().Err(err).Msg("Failed to issue session")
		utils.WriteError(w, http.StatusInternalServerError, "Failed to start session")
		return
	}

	utils.WriteJSON(w, http.StatusCreated, sessionResponse{
		SessionID: id,
		Token:     token,
		ExpiresIn: int64(h.cfg.SessionTokenExpiry.Seconds()),
	})
}
