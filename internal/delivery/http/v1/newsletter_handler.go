package v1

import (
	"clockstore-backend/internal/domain"
	"clockstore-backend/internal/usecase"
	"clockstore-backend/pkg/utils"
	"net/http"
)

type NewsletterHandler struct {
	newsletterUC *usecase.NewsletterUsecase
}

func NewNewsletterHandler(uc *usecase.NewsletterUsecase) *NewsletterHandler {
	return &NewsletterHandler{newsletterUC: uc}
}

type subscribeReq struct {
	Email string `json:"email"`
}

// POST /api/v1/newsletter
func (h *NewsletterHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(w, r)
	if !ok {
		return
	}
	var req subscribeReq
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	added, err := h.newsletterUC.Subscribe(r.Context(), sid, req.Email)
	if err != nil {
		writeUsecaseError(w, r, err)
		return
	}

	msg := "Subscribed"
	if !added {
		msg = "Already subscribed"
	}
	utils.WriteJSON(w, http.StatusOK, domain.Response{Success: true, Message: msg})
}

// GET /api/v1/newsletter
func (h *NewsletterHandler) ListSubscriptions(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(w, r)
	if !ok {
		return
	}
	subs, err := h.newsletterUC.Subscriptions(r.Context(), sid)
	if err != nil {
		writeUsecaseError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, domain.Response{Success: true, Data: subs})
}
