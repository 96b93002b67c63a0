package usecase

import (
	"clockstore-backend/internal/domain"
	"context"
)

// CouponStatus reports the stored coupon and what it grants on the current cart.
type CouponStatus struct {
	Code       string              `json:"code"`
	Recognized bool                `json:"recognized"`
	Policy     domain.CouponPolicy `json:"policy"`
	Totals     domain.Totals       `json:"totals"`
}

type CouponUsecase struct {
	state *SessionState
}

func NewCouponUsecase(state *SessionState) *CouponUsecase {
	return &CouponUsecase{state: state}
}

func (u *CouponUsecase) GetCoupon(ctx context.Context, sessionID string) (*CouponStatus, error) {
	unlock := u.state.Lock(sessionID)
	defer unlock()
	return u.status(ctx, sessionID)
}

// ApplyCoupon stores the normalized code. Unrecognized codes are kept and
// reported with Recognized=false; an empty code removes the coupon.
func (u *CouponUsecase) ApplyCoupon(ctx context.Context, sessionID, code string) (*CouponStatus, error) {
	unlock := u.state.Lock(sessionID)
	defer unlock()

	code = domain.NormalizeCoupon(code)
	var err error
	if code == "" {
		err = u.state.remove(ctx, sessionID, domain.StateKeyCoupon)
	} else {
		err = saveJSON(ctx, u.state, sessionID, domain.StateKeyCoupon, code)
	}
	if err != nil {
		return nil, err
	}
	return u.status(ctx, sessionID)
}

func (u *CouponUsecase) ClearCoupon(ctx context.Context, sessionID string) (*CouponStatus, error) {
	return u.ApplyCoupon(ctx, sessionID, "")
}

func (u *CouponUsecase) status(ctx context.Context, sessionID string) (*CouponStatus, error) {
	code, err := u.state.loadCoupon(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	cart, err := u.state.loadCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	policy, ok := domain.LookupCoupon(code)
	return &CouponStatus{
		Code:       domain.NormalizeCoupon(code),
		Recognized: ok,
		Policy:     policy,
		Totals:     domain.CalcTotals(cart.Lines, code),
	}, nil
}
