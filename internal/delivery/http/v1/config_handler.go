package v1

import (
	"clockstore-backend/internal/usecase"
	"clockstore-backend/pkg/utils"
	"fmt"
	"net/http"
	"time"
)

type ConfigHandler struct {
	catalogUC *usecase.CatalogUsecase
	maxAge    time.Duration
}

func NewConfigHandler(catalogUC *usecase.CatalogUsecase, maxAge time.Duration) *ConfigHandler {
	return &ConfigHandler{catalogUC: catalogUC, maxAge: maxAge}
}

// GET /api/v1/config/enums
func (h *ConfigHandler) GetEnums(w http.ResponseWriter, r *http.Request) {
	enums, err := h.catalogUC.GetEnums(r.Context())
	if err != nil {
		writeUsecaseError(w, r, err)
		return
	}

	w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", int(h.maxAge.Seconds())))
	utils.WriteJSON(w, http.StatusOK, enums)
}
