package v1

import (
	"clockstore-backend/internal/usecase"
	"clockstore-backend/pkg/utils"
	"net/http"
	"strings"
)

type CartHandler struct {
	cartUC   *usecase.CartUsecase
	couponUC *usecase.CouponUsecase
}

func NewCartHandler(cartUC *usecase.CartUsecase, couponUC *usecase.CouponUsecase) *CartHandler {
	return &CartHandler{
		cartUC:   cartUC,
		couponUC: couponUC,
	}
}

// --- Cart Handlers ---

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(w, r)
	if !ok {
		return
	}
	cart, err := h.cartUC.GetCart(r.Context(), sid)
	if err != nil {
		writeUsecaseError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, cart)
}

type badgeResponse struct {
	Count int     `json:"count"`
	Total float64 `json:"total"`
}

// GET /api/v1/cart/badge
func (h *CartHandler) GetBadge(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(w, r)
	if !ok {
		return
	}
	count, err := h.cartUC.Count(r.Context(), sid)
	if err != nil {
		writeUsecaseError(w, r, err)
		return
	}
	total, err := h.cartUC.Total(r.Context(), sid)
	if err != nil {
		writeUsecaseError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, badgeResponse{Count: count, Total: total})
}

type addToCartReq struct {
	ProductID string `json:"productId"`
}

func (h *CartHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(w, r)
	if !ok {
		return
	}
	var req addToCartReq
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if strings.TrimSpace(req.ProductID) == "" {
		utils.WriteError(w, http.StatusBadRequest, "Product ID required")
		return
	}

	cart, err := h.cartUC.Add(r.Context(), sid, req.ProductID)
	if err != nil {
		writeUsecaseError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, cart)
}

type updateCartReq struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

func (h *CartHandler) UpdateCart(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(w, r)
	if !ok {
		return
	}
	var req updateCartReq
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if strings.TrimSpace(req.ProductID) == "" {
		utils.WriteError(w, http.StatusBadRequest, "Product ID required")
		return
	}

	cart, err := h.cartUC.SetQuantity(r.Context(), sid, req.ProductID, req.Quantity)
	if err != nil {
		writeUsecaseError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, cart)
}

func (h *CartHandler) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(w, r)
	if !ok {
		return
	}
	cart, err := h.cartUC.Remove(r.Context(), sid, r.PathValue("productId"))
	if err != nil {
		writeUsecaseError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, cart)
}

func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(w, r)
	if !ok {
		return
	}
	cart, err := h.cartUC.Clear(r.Context(), sid)
	if err != nil {
		writeUsecaseError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, cart)
}

// --- Coupon Handlers ---

func (h *CartHandler) GetCoupon(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(w, r)
	if !ok {
		return
	}
	status, err := h.couponUC.GetCoupon(r.Context(), sid)
	if err != nil {
		writeUsecaseError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, status)
}

type applyCouponReq struct {
	Code string `json:"code"`
}

func (h *CartHandler) ApplyCoupon(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(w, r)
	if !ok {
		return
	}
	var req applyCouponReq
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	status, err := h.couponUC.ApplyCoupon(r.Context(), sid, req.Code)
	if err != nil {
		writeUsecaseError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, status)
}

func (h *CartHandler) ClearCoupon(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(w, r)
	if !ok {
		return
	}
	status, err := h.couponUC.ClearCoupon(r.Context(), sid)
	if err != nil {
		writeUsecaseError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, status)
}
