package usecase

import (
	"clockstore-backend/internal/domain"
	"context"
)

type WishlistUsecase struct {
	repo  domain.ProductRepository
	state *SessionState
}

func NewWishlistUsecase(repo domain.ProductRepository, state *SessionState) *WishlistUsecase {
	return &WishlistUsecase{
		repo:  repo,
		state: state,
	}
}

func (u *WishlistUsecase) GetWishlist(ctx context.Context, sessionID string) (*domain.Wishlist, error) {
	return u.state.loadWishlist(ctx, sessionID)
}

func (u *WishlistUsecase) Has(ctx context.Context, sessionID, productID string) (bool, error) {
	w, err := u.state.loadWishlist(ctx, sessionID)
	if err != nil {
		return false, err
	}
	return w.Has(productID), nil
}

// Toggle flips membership of productID and reports whether it is now in the wishlist.
func (u *WishlistUsecase) Toggle(ctx context.Context, sessionID, productID string) (bool, error) {
	// 1. Only catalog products can be favorited
	if _, err := u.repo.GetByID(ctx, productID); err != nil {
		return false, err
	}

	unlock := u.state.Lock(sessionID)
	defer unlock()

	// 2. Flip and persist
	w, err := u.state.loadWishlist(ctx, sessionID)
	if err != nil {
		return false, err
	}
	present := w.Toggle(productID)
	if err := saveJSON(ctx, u.state, sessionID, domain.StateKeyWishlist, w.ProductIDs); err != nil {
		return false, err
	}
	return present, nil
}
