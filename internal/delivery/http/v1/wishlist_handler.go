package v1

import (
	"clockstore-backend/internal/usecase"
	"clockstore-backend/pkg/utils"
	"net/http"
)

type WishlistHandler struct {
	usecase *usecase.WishlistUsecase
}

func NewWishlistHandler(usecase *usecase.WishlistUsecase) *WishlistHandler {
	return &WishlistHandler{usecase: usecase}
}

func (h *WishlistHandler) GetWishlist(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(w, r)
	if !ok {
		return
	}

	wishlist, err := h.usecase.GetWishlist(r.Context(), sid)
	if err != nil {
		writeUsecaseError(w, r, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, wishlist)
}

type toggleWishlistResponse struct {
	ProductID  string `json:"productId"`
	InWishlist bool   `json:"inWishlist"`
}

// GET /api/v1/wishlist/{productId}
func (h *WishlistHandler) CheckWishlist(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(w, r)
	if !ok {
		return
	}

	productID := r.PathValue("productId")
	present, err := h.usecase.Has(r.Context(), sid, productID)
	if err != nil {
		writeUsecaseError(w, r, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, toggleWishlistResponse{ProductID: productID, InWishlist: present})
}

func (h *WishlistHandler) ToggleWishlist(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(w, r)
	if !ok {
		return
	}

	productID := r.PathValue("productId")
	present, err := h.usecase.Toggle(r.Context(), sid, productID)
	if err != nil {
		writeUsecaseError(w, r, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, toggleWishlistResponse{ProductID: productID, InWishlist: present})
}
