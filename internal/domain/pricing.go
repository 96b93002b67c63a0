package domain

import "github.com/shopspring/decimal"

var (
	freeShippingThreshold = decimal.NewFromFloat(FreeShippingThreshold)
	flatShippingFee       = decimal.NewFromFloat(FlatShippingFee)
)

// Totals is the price summary of a set of cart lines under a coupon.
type Totals struct {
	Subtotal      float64 `json:"subtotal"`
	Discount      float64 `json:"discount"`
	AfterDiscount float64 `json:"afterDiscount"`
	Shipping      float64 `json:"shipping"`
	Total         float64 `json:"total"`
}

// CalcTotals prices lines under coupon. Amounts are computed in decimal and
// rounded to cents; the discount is rounded before it is subtracted so the
// displayed figures always add up.
func CalcTotals(lines []CartLine, coupon string) Totals {
	policy, _ := LookupCoupon(coupon)

	subtotal := decimal.Zero
	for _, l := range lines {
		subtotal = subtotal.Add(decimal.NewFromFloat(l.Price).Mul(decimal.NewFromInt(int64(l.Qty))))
	}
	subtotal = subtotal.Round(2)

	discount := subtotal.Mul(policy.DiscountPercent).Round(2)
	after := decimal.Max(decimal.Zero, subtotal.Sub(discount))
	shipping := calcShipping(policy, after)

	return Totals{
		Subtotal:      subtotal.InexactFloat64(),
		Discount:      discount.InexactFloat64(),
		AfterDiscount: after.InexactFloat64(),
		Shipping:      shipping.InexactFloat64(),
		Total:         after.Add(shipping).InexactFloat64(),
	}
}

func calcShipping(policy CouponPolicy, afterDiscount decimal.Decimal) decimal.Decimal {
	switch {
	case !afterDiscount.IsPositive():
		return decimal.Zero
	case policy.FreeShipping:
		return decimal.Zero
	case afterDiscount.GreaterThanOrEqual(freeShippingThreshold):
		return decimal.Zero
	default:
		return flatShippingFee
	}
}

func roundCents(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
