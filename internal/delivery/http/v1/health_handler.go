package v1

import (
	"clockstore-backend/pkg/utils"
	"net/http"
)

type HealthHandler struct {
	stateDriver string
}

func NewHealthHandler(stateDriver string) *HealthHandler {
	return &HealthHandler{stateDriver: stateDriver}
}

// GET /health and /api/v1/health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
		"state":  h.stateDriver,
	})
}
