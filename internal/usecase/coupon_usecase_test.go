package usecase

import (
	"clockstore-backend/internal/domain"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyCoupon(t *testing.T) {
	ctx := context.Background()
	d := newTestDeps(t)
	carts := NewCartUsecase(d.repo, d.state, d.cfg)
	uc := NewCouponUsecase(d.state)

	_, err := carts.Add(ctx, testSession, "w001")
	require.NoError(t, err)

	st, err := uc.ApplyCoupon(ctx, testSession, "  clock10 ")
	require.NoError(t, err)
	assert.Equal(t, "CLOCK10", st.Code)
	assert.True(t, st.Recognized)
	assert.Equal(t, 699.9, st.Totals.Subtotal)
	assert.Equal(t, 69.99, st.Totals.Discount)
	assert.Equal(t, 629.91, st.Totals.Total)

	raw, found, err := d.store.Get(ctx, testSession, domain.StateKeyCoupon)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `"CLOCK10"`, string(raw))
}

func TestApplyCoupon_Unrecognized(t *testing.T) {
	ctx := context.Background()
	d := newTestDeps(t)
	uc := NewCouponUsecase(d.state)

	st, err := uc.ApplyCoupon(ctx, testSession, "bogus")
	require.NoError(t, err)
	assert.Equal(t, "BOGUS", st.Code)
	assert.False(t, st.Recognized)
	assert.Equal(t, 0.0, st.Totals.Total)

	got, err := uc.GetCoupon(ctx, testSession)
	require.NoError(t, err)
	assert.Equal(t, "BOGUS", got.Code)
}

func TestClearCoupon(t *testing.T) {
	ctx := context.Background()
	d := newTestDeps(t)
	uc := NewCouponUsecase(d.state)

	_, err := uc.ApplyCoupon(ctx, testSession, "WELCOME10")
	require.NoError(t, err)

	st, err := uc.ClearCoupon(ctx, testSession)
	require.NoError(t, err)
	assert.Empty(t, st.Code)
	assert.False(t, st.Recognized)

	_, found, err := d.store.Get(ctx, testSession, domain.StateKeyCoupon)
	require.NoError(t, err)
	assert.False(t, found)

	st, err = uc.ApplyCoupon(ctx, testSession, "   ")
	require.NoError(t, err)
	assert.Empty(t, st.Code)
}
