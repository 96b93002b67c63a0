package usecase

import (
	"clockstore-backend/config"
	"clockstore-backend/internal/domain"
	"clockstore-backend/pkg/logger"
	"context"
)

// CartSummary is the cart as shown in the cart and checkout views.
type CartSummary struct {
	Items  []domain.CartLine `json:"items"`
	Count  int               `json:"count"`
	Coupon string            `json:"coupon,omitempty"`
	Totals domain.Totals     `json:"totals"`
}

type CartUsecase struct {
	repo      domain.ProductRepository
	state     *SessionState
	observers []domain.CartObserver
	maxQty    int // 0 means unlimited
}

func NewCartUsecase(repo domain.ProductRepository, state *SessionState, cfg *config.Config, observers ...domain.CartObserver) *CartUsecase {
	return &CartUsecase{
		repo:      repo,
		state:     state,
		observers: observers,
		maxQty:    cfg.MaxCartQuantity,
	}
}

func (u *CartUsecase) GetCart(ctx context.Context, sessionID string) (*CartSummary, error) {
	unlock := u.state.Lock(sessionID)
	defer unlock()

	cart, err := u.state.loadCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return u.summarize(ctx, sessionID, cart)
}

// Add puts one unit of productID in the cart.
func (u *CartUsecase) Add(ctx context.Context, sessionID, productID string) (*CartSummary, error) {
	p, err := u.repo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	return u.mutate(ctx, sessionID, func(cart *domain.Cart) {
		cart.Add(*p)
		if u.maxQty <= 0 {
			return
		}
		for _, l := range cart.Lines {
			if l.ID == p.ID && l.Qty > u.maxQty {
				cart.SetQuantity(p.ID, u.maxQty)
			}
		}
	})
}

// SetQuantity is a no-op for products not in the cart. Quantities never drop
// below 1 and, when a maximum is configured, never exceed it.
func (u *CartUsecase) SetQuantity(ctx context.Context, sessionID, productID string, qty int) (*CartSummary, error) {
	return u.mutate(ctx, sessionID, func(cart *domain.Cart) {
		if u.maxQty > 0 {
			qty = min(qty, u.maxQty)
		}
		cart.SetQuantity(productID, qty)
	})
}

func (u *CartUsecase) Remove(ctx context.Context, sessionID, productID string) (*CartSummary, error) {
	return u.mutate(ctx, sessionID, func(cart *domain.Cart) {
		cart.Remove(productID)
	})
}

func (u *CartUsecase) Clear(ctx context.Context, sessionID string) (*CartSummary, error) {
	return u.mutate(ctx, sessionID, func(cart *domain.Cart) {
		cart.Clear()
	})
}

// Count is the number of units in the cart, as shown on the badge.
func (u *CartUsecase) Count(ctx context.Context, sessionID string) (int, error) {
	cart, err := u.state.loadCart(ctx, sessionID)
	if err != nil {
		return 0, err
	}
	return cart.Count(), nil
}

// Total is the undiscounted cart value.
func (u *CartUsecase) Total(ctx context.Context, sessionID string) (float64, error) {
	cart, err := u.state.loadCart(ctx, sessionID)
	if err != nil {
		return 0, err
	}
	return cart.Total(), nil
}

// mutate loads the cart, applies fn, persists and notifies observers, all
// under the session lock.
func (u *CartUsecase) mutate(ctx context.Context, sessionID string, fn func(*domain.Cart)) (*CartSummary, error) {
	unlock := u.state.Lock(sessionID)
	defer unlock()

	cart, err := u.state.loadCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	fn(cart)
	if err := u.state.saveCart(ctx, sessionID, cart); err != nil {
		return nil, err
	}
	notifyCartChanged(ctx, u.observers, sessionID, cart.Count())
	return u.summarize(ctx, sessionID, cart)
}

func (u *CartUsecase) summarize(ctx context.Context, sessionID string, cart *domain.Cart) (*CartSummary, error) {
	coupon, err := u.state.loadCoupon(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return &CartSummary{
		Items:  cart.Snapshot(),
		Count:  cart.Count(),
		Coupon: coupon,
		Totals: domain.CalcTotals(cart.Lines, coupon),
	}, nil
}

func notifyCartChanged(ctx context.Context, observers []domain.CartObserver, sessionID string, count int) {
	for _, o := range observers {
		o.CartChanged(ctx, sessionID, count)
	}
}

// BadgeLogger is a CartObserver that logs the badge count.
type BadgeLogger struct{}

func (BadgeLogger) CartChanged(ctx context.Context, sessionID string, count int) {
	logger.WithContext(ctx).Debug().Str("session_id", sessionID).Int("count", count).Msg("Cart badge updated")
}
