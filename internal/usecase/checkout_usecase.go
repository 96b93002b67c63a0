package usecase

import (
	"clockstore-backend/internal/domain"
	"clockstore-backend/pkg/logger"
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

type CheckoutUsecase struct {
	state     *SessionState
	observers []domain.CartObserver
	newID     func() string
	now       func() time.Time
}

func NewCheckoutUsecase(state *SessionState, observers ...domain.CartObserver) *CheckoutUsecase {
	return &CheckoutUsecase{
		state:     state,
		observers: observers,
		newID:     newOrderID,
		now:       time.Now,
	}
}

// newOrderID returns six upper-case alphanumeric characters.
func newOrderID() string {
	return strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:6])
}

// PlaceOrder snapshots the cart into an order priced with the stored coupon,
// clears the cart and coupon and saves the order as the last order. Nothing is
// written when the cart is empty or the form is incomplete, and a failed write
// puts the cart and coupon back.
func (u *CheckoutUsecase) PlaceOrder(ctx context.Context, sessionID string, form domain.CheckoutForm) (*domain.Order, error) {
	unlock := u.state.Lock(sessionID)
	defer unlock()

	cart, err := u.state.loadCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(cart.Lines) == 0 {
		return nil, domain.ErrCartEmpty
	}
	if err := form.Validate(); err != nil {
		return nil, err
	}

	code, err := u.state.loadCoupon(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	totals := domain.CalcTotals(cart.Lines, code)

	order := &domain.Order{
		ID:       u.newID(),
		Items:    cart.Snapshot(),
		Subtotal: totals.Subtotal,
		Discount: totals.Discount,
		Shipping: totals.Shipping,
		Total:    totals.Total,
		Customer: domain.Customer{
			Name:  strings.TrimSpace(form.FullName),
			Email: strings.TrimSpace(form.Email),
		},
		CreatedAt: u.now().UTC(),
	}
	if c := domain.NormalizeCoupon(code); c != "" {
		order.Coupon = &c
	}

	// An order is never persisted next to a cart that still holds its lines.
	lines := cart.Lines
	cart.Clear()
	if err := u.state.saveCart(ctx, sessionID, cart); err != nil {
		return nil, err
	}
	if err := u.state.remove(ctx, sessionID, domain.StateKeyCoupon); err != nil {
		u.restore(ctx, sessionID, lines, "")
		return nil, err
	}
	if err := saveJSON(ctx, u.state, sessionID, domain.StateKeyLastOrder, order); err != nil {
		u.restore(ctx, sessionID, lines, code)
		return nil, err
	}
	notifyCartChanged(ctx, u.observers, sessionID, 0)

	logger.WithContext(ctx).Info().
		Str("order_id", order.ID).
		Int("items", len(order.Items)).
		Float64("total", order.Total).
		Msg("Order placed")
	return order, nil
}

// restore puts back the cart lines and coupon after a failed checkout write.
func (u *CheckoutUsecase) restore(ctx context.Context, sessionID string, lines []domain.CartLine, code string) {
	log := logger.WithContext(ctx)
	if err := saveJSON(ctx, u.state, sessionID, domain.StateKeyCart, lines); err != nil {
		log.Error().Err(err).Msg("Failed to restore cart after checkout error")
	}
	if code == "" {
		return
	}
	if err := saveJSON(ctx, u.state, sessionID, domain.StateKeyCoupon, code); err != nil {
		log.Error().Err(err).Msg("Failed to restore coupon after checkout error")
	}
}

// LastOrder returns the most recent order, or nil when there is none.
func (u *CheckoutUsecase) LastOrder(ctx context.Context, sessionID string) (*domain.Order, error) {
	return loadJSON[*domain.Order](ctx, u.state, sessionID, domain.StateKeyLastOrder, nil)
}
