package usecase

import (
	"clockstore-backend/internal/domain"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCheckout(d *testDeps, observers ...domain.CartObserver) *CheckoutUsecase {
	uc := NewCheckoutUsecase(d.state, observers...)
	uc.newID = func() string { return "AB12CD" }
	uc.now = func() time.Time { return time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC) }
	return uc
}

func TestPlaceOrder(t *testing.T) {
	ctx := context.Background()
	d := newTestDeps(t)
	obs := &recordingObserver{}
	carts := NewCartUsecase(d.repo, d.state, d.cfg, obs)
	coupons := NewCouponUsecase(d.state)
	uc := newTestCheckout(d, obs)

	_, err := carts.Add(ctx, testSession, "w007")
	require.NoError(t, err)
	_, err = carts.Add(ctx, testSession, "w007")
	require.NoError(t, err)
	_, err = coupons.ApplyCoupon(ctx, testSession, "clock10")
	require.NoError(t, err)

	order, err := uc.PlaceOrder(ctx, testSession, validForm())
	require.NoError(t, err)

	assert.Equal(t, "AB12CD", order.ID)
	assert.Equal(t, 598.0, order.Subtotal)
	assert.Equal(t, 59.8, order.Discount)
	assert.Equal(t, 0.0, order.Shipping)
	assert.Equal(t, 538.2, order.Total)
	require.NotNil(t, order.Coupon)
	assert.Equal(t, "CLOCK10", *order.Coupon)
	assert.Equal(t, "Maria Souza", order.Customer.Name)
	assert.Equal(t, "maria@example.com", order.Customer.Email)
	require.Len(t, order.Items, 1)
	assert.Equal(t, 2, order.Items[0].Qty)

	// cart and coupon are cleared
	sum, err := carts.GetCart(ctx, testSession)
	require.NoError(t, err)
	assert.Empty(t, sum.Items)
	assert.Empty(t, sum.Coupon)
	assert.Equal(t, 0, obs.last())

	last, err := uc.LastOrder(ctx, testSession)
	require.NoError(t, err)
	require.NotNil(t, last)
	assert.Equal(t, "AB12CD", last.ID)
	assert.True(t, order.CreatedAt.Equal(last.CreatedAt))
}

func TestPlaceOrder_WithoutCoupon(t *testing.T) {
	ctx := context.Background()
	d := newTestDeps(t)
	carts := NewCartUsecase(d.repo, d.state, d.cfg)
	uc := newTestCheckout(d)

	_, err := carts.Add(ctx, testSession, "w019")
	require.NoError(t, err)

	order, err := uc.PlaceOrder(ctx, testSession, validForm())
	require.NoError(t, err)
	assert.Nil(t, order.Coupon)
	assert.Equal(t, 309.0, order.Total)
}

func TestPlaceOrder_EmptyCart(t *testing.T) {
	d := newTestDeps(t)
	uc := newTestCheckout(d)

	_, err := uc.PlaceOrder(context.Background(), testSession, validForm())
	assert.ErrorIs(t, err, domain.ErrCartEmpty)
}

func TestPlaceOrder_BlankFieldPersistsNothing(t *testing.T) {
	ctx := context.Background()
	d := newTestDeps(t)
	carts := NewCartUsecase(d.repo, d.state, d.cfg)
	uc := newTestCheckout(d)

	_, err := carts.Add(ctx, testSession, "w001")
	require.NoError(t, err)

	form := validForm()
	form.CardCVV = "  "
	form.City = ""
	_, err = uc.PlaceOrder(ctx, testSession, form)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"city", "cardCvv"}, verr.Missing)

	last, err := uc.LastOrder(ctx, testSession)
	require.NoError(t, err)
	assert.Nil(t, last)

	n, err := carts.Count(ctx, testSession)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestPlaceOrder_CartWriteFailureLeavesNoOrder(t *testing.T) {
	ctx := context.Background()
	d := newTestDeps(t)
	store := &keyFailingStore{StateStore: d.store}
	d.state = NewSessionState(store)
	obs := &recordingObserver{}
	carts := NewCartUsecase(d.repo, d.state, d.cfg)
	coupons := NewCouponUsecase(d.state)
	uc := newTestCheckout(d, obs)

	_, err := carts.Add(ctx, testSession, "w001")
	require.NoError(t, err)
	_, err = coupons.ApplyCoupon(ctx, testSession, "CLOCK10")
	require.NoError(t, err)

	store.failSet = domain.StateKeyCart
	_, err = uc.PlaceOrder(ctx, testSession, validForm())
	require.ErrorIs(t, err, errStoreDown)
	store.failSet = ""

	last, err := uc.LastOrder(ctx, testSession)
	require.NoError(t, err)
	assert.Nil(t, last)

	sum, err := carts.GetCart(ctx, testSession)
	require.NoError(t, err)
	require.Len(t, sum.Items, 1)
	assert.Equal(t, "w001", sum.Items[0].ID)
	assert.Equal(t, "CLOCK10", sum.Coupon)
	assert.Empty(t, obs.counts)

	// the retry goes through once the store recovers
	order, err := uc.PlaceOrder(ctx, testSession, validForm())
	require.NoError(t, err)
	require.NotNil(t, order.Coupon)
	assert.Equal(t, "CLOCK10", *order.Coupon)
}

func TestPlaceOrder_OrderWriteFailureRestoresCart(t *testing.T) {
	ctx := context.Background()
	d := newTestDeps(t)
	store := &keyFailingStore{StateStore: d.store}
	d.state = NewSessionState(store)
	carts := NewCartUsecase(d.repo, d.state, d.cfg)
	coupons := NewCouponUsecase(d.state)
	uc := newTestCheckout(d)

	_, err := carts.Add(ctx, testSession, "w007")
	require.NoError(t, err)
	_, err = carts.Add(ctx, testSession, "w007")
	require.NoError(t, err)
	_, err = coupons.ApplyCoupon(ctx, testSession, "FRETEGRATIS")
	require.NoError(t, err)

	store.failSet = domain.StateKeyLastOrder
	_, err = uc.PlaceOrder(ctx, testSession, validForm())
	require.ErrorIs(t, err, errStoreDown)

	last, err := uc.LastOrder(ctx, testSession)
	require.NoError(t, err)
	assert.Nil(t, last)

	sum, err := carts.GetCart(ctx, testSession)
	require.NoError(t, err)
	require.Len(t, sum.Items, 1)
	assert.Equal(t, 2, sum.Items[0].Qty)
	assert.Equal(t, "FRETEGRATIS", sum.Coupon)
}

func TestNewOrderID(t *testing.T) {
	id := newOrderID()
	assert.Len(t, id, 6)
	assert.Regexp(t, `^[0-9A-F]{6}$`, id)
}
