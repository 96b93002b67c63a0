package usecase

import (
	"clockstore-backend/internal/domain"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCart_AddTwiceKeepsOneLine(t *testing.T) {
	ctx := context.Background()
	d := newTestDeps(t)
	obs := &recordingObserver{}
	uc := NewCartUsecase(d.repo, d.state, d.cfg, obs)

	_, err := uc.Add(ctx, testSession, "w007")
	require.NoError(t, err)
	sum, err := uc.Add(ctx, testSession, "w007")
	require.NoError(t, err)

	require.Len(t, sum.Items, 1)
	assert.Equal(t, 2, sum.Items[0].Qty)
	assert.Equal(t, "Runner Fit", sum.Items[0].Name)
	assert.Equal(t, "assets/imgs/relogio.png", sum.Items[0].Image)
	assert.Equal(t, 2, sum.Count)
	assert.Equal(t, []int{1, 2}, obs.counts)

	// persisted
	again, err := uc.GetCart(ctx, testSession)
	require.NoError(t, err)
	assert.Equal(t, sum.Items, again.Items)
}

func TestCart_AddUnknownProduct(t *testing.T) {
	d := newTestDeps(t)
	obs := &recordingObserver{}
	uc := NewCartUsecase(d.repo, d.state, d.cfg, obs)

	_, err := uc.Add(context.Background(), testSession, "nope")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
	assert.Empty(t, obs.counts)
}

func TestCart_SetQuantityClamps(t *testing.T) {
	ctx := context.Background()
	d := newTestDeps(t)
	uc := NewCartUsecase(d.repo, d.state, d.cfg)

	_, err := uc.Add(ctx, testSession, "w001")
	require.NoError(t, err)

	sum, err := uc.SetQuantity(ctx, testSession, "w001", -3)
	require.NoError(t, err)
	assert.Equal(t, 1, sum.Items[0].Qty)

	// no configured maximum
	sum, err = uc.SetQuantity(ctx, testSession, "w001", 150)
	require.NoError(t, err)
	assert.Equal(t, 150, sum.Items[0].Qty)

	sum, err = uc.Add(ctx, testSession, "w001")
	require.NoError(t, err)
	assert.Equal(t, 151, sum.Items[0].Qty)
	assert.Equal(t, 151, sum.Count)
}

func TestCart_ConfiguredMaximum(t *testing.T) {
	ctx := context.Background()
	d := newTestDeps(t)
	d.cfg.MaxCartQuantity = 5
	uc := NewCartUsecase(d.repo, d.state, d.cfg)

	_, err := uc.Add(ctx, testSession, "w001")
	require.NoError(t, err)

	sum, err := uc.SetQuantity(ctx, testSession, "w001", 0)
	require.NoError(t, err)
	assert.Equal(t, 1, sum.Items[0].Qty)

	sum, err = uc.SetQuantity(ctx, testSession, "w001", 50)
	require.NoError(t, err)
	assert.Equal(t, 5, sum.Items[0].Qty)

	sum, err = uc.Add(ctx, testSession, "w001")
	require.NoError(t, err)
	assert.Equal(t, 5, sum.Items[0].Qty)

	sum, err = uc.SetQuantity(ctx, testSession, "w002", 3)
	require.NoError(t, err)
	assert.Len(t, sum.Items, 1)
}

func TestCart_RemoveAndClear(t *testing.T) {
	ctx := context.Background()
	d := newTestDeps(t)
	obs := &recordingObserver{}
	uc := NewCartUsecase(d.repo, d.state, d.cfg, obs)

	for _, id := range []string{"w001", "w002", "w003"} {
		_, err := uc.Add(ctx, testSession, id)
		require.NoError(t, err)
	}

	sum, err := uc.Remove(ctx, testSession, "w002")
	require.NoError(t, err)
	require.Len(t, sum.Items, 2)
	assert.Equal(t, "w001", sum.Items[0].ID)
	assert.Equal(t, "w003", sum.Items[1].ID)

	sum, err = uc.Remove(ctx, testSession, "w002")
	require.NoError(t, err)
	assert.Len(t, sum.Items, 2)

	sum, err = uc.Clear(ctx, testSession)
	require.NoError(t, err)
	assert.Empty(t, sum.Items)
	assert.Equal(t, 0, obs.last())

	total, err := uc.Total(ctx, testSession)
	require.NoError(t, err)
	assert.Equal(t, 0.0, total)
}

func TestCart_SummaryAppliesStoredCoupon(t *testing.T) {
	ctx := context.Background()
	d := newTestDeps(t)
	uc := NewCartUsecase(d.repo, d.state, d.cfg)
	coupons := NewCouponUsecase(d.state)

	sum, err := uc.Add(ctx, testSession, "w007")
	require.NoError(t, err)
	assert.Equal(t, 299.0, sum.Totals.Subtotal)
	assert.Equal(t, 19.9, sum.Totals.Shipping)
	assert.Equal(t, 318.9, sum.Totals.Total)

	_, err = coupons.ApplyCoupon(ctx, testSession, "fretegratis")
	require.NoError(t, err)

	sum, err = uc.GetCart(ctx, testSession)
	require.NoError(t, err)
	assert.Equal(t, "FRETEGRATIS", sum.Coupon)
	assert.Equal(t, 0.0, sum.Totals.Shipping)
	assert.Equal(t, 299.0, sum.Totals.Total)

	total, err := uc.Total(ctx, testSession)
	require.NoError(t, err)
	assert.Equal(t, 299.0, total)
}

func TestCart_StoreFailure(t *testing.T) {
	d := newTestDeps(t)
	uc := NewCartUsecase(d.repo, NewSessionState(failingStore{}), d.cfg)

	_, err := uc.Add(context.Background(), testSession, "w001")
	assert.ErrorIs(t, err, errStoreDown)
}
