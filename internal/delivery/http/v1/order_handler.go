package v1

import (
	"clockstore-backend/internal/domain"
	"clockstore-backend/internal/usecase"
	"clockstore-backend/pkg/utils"
	"net/http"
)

type OrderHandler struct {
	checkoutUC *usecase.CheckoutUsecase
}

func NewOrderHandler(uc *usecase.CheckoutUsecase) *OrderHandler {
	return &OrderHandler{checkoutUC: uc}
}

// POST /api/v1/checkout
func (h *OrderHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(w, r)
	if !ok {
		return
	}
	var form domain.CheckoutForm
	if err := utils.DecodeJSON(r, &form); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	order, err := h.checkoutUC.PlaceOrder(r.Context(), sid, form)
	if err != nil {
		writeUsecaseError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, order)
}

type lastOrderResponse struct {
	OrderID string        `json:"orderId"`
	Order   *domain.Order `json:"order"`
}

// GET /api/v1/orders/last
func (h *OrderHandler) GetLastOrder(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(w, r)
	if !ok {
		return
	}
	order, err := h.checkoutUC.LastOrder(r.Context(), sid)
	if err != nil {
		writeUsecaseError(w, r, err)
		return
	}

	resp := lastOrderResponse{OrderID: domain.PlaceholderOrderID, Order: order}
	if order != nil && order.ID != "" {
		resp.OrderID = order.ID
	}
	utils.WriteJSON(w, http.StatusOK, resp)
}
