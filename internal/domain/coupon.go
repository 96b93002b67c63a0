package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// CouponPolicy is what a recognized coupon grants.
type CouponPolicy struct {
	Code            string          `json:"code"`
	DiscountPercent decimal.Decimal `json:"discountPercent"`
	FreeShipping    bool            `json:"freeShipping"`
}

// NoCoupon is the policy of an absent or unrecognized code.
var NoCoupon = CouponPolicy{DiscountPercent: decimal.Zero}

var couponPolicies = map[string]CouponPolicy{
	"CLOCK10":     {Code: "CLOCK10", DiscountPercent: decimal.RequireFromString("0.10")},
	"WELCOME10":   {Code: "WELCOME10", DiscountPercent: decimal.RequireFromString("0.10")},
	"FRETEGRATIS": {Code: "FRETEGRATIS", DiscountPercent: decimal.Zero, FreeShipping: true},
}

// NormalizeCoupon trims and upper-cases a coupon code.
func NormalizeCoupon(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// LookupCoupon resolves code against the closed coupon table.
// Unrecognized codes yield NoCoupon and false.
func LookupCoupon(code string) (CouponPolicy, bool) {
	p, ok := couponPolicies[NormalizeCoupon(code)]
	if !ok {
		return NoCoupon, false
	}
	return p, true
}
