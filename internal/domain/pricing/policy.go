// Package pricing holds the customer tier model and the pure pricing rules:
// tier discount rates, the tax rate, and the shipping cost policy.
package pricing

import "github.com/shopspring/decimal"

// TaxRate is the flat tax rate applied to the discounted subtotal.
var TaxRate = decimal.NewFromFloat(0.19)

// StandardShipping is the flat shipping cost when no free-shipping rule matches.
var StandardShipping = decimal.NewFromFloat(9.99)

var (
	premiumFreeShippingMin = decimal.NewFromInt(100)
	freeShippingMin        = decimal.NewFromInt(200)

	discountRates = map[Tier]decimal.Decimal{
		TierRegular:  decimal.Zero,
		TierPremium:  decimal.NewFromFloat(0.10),
		TierVIP:      decimal.NewFromFloat(0.20),
		TierEmployee: decimal.NewFromFloat(0.30),
		TierUnknown:  decimal.Zero,
	}
)

// Policy computes tier-dependent discount rates and shipping costs.
// It is pure and deterministic: no state, no error conditions.
type Policy struct{}

// NewPolicy returns the standard pricing policy.
func NewPolicy() Policy {
	return Policy{}
}

// DiscountRate returns the discount rate for the given tier as a fraction
// of the subtotal (e.g. 0.20 for VIP).
func (Policy) DiscountRate(tier Tier) decimal.Decimal {
	if rate, ok := discountRates[tier]; ok {
		return rate
	}
	return decimal.Zero
}

// ShippingCost returns the shipping cost for the given tier and pre-discount
// subtotal. Rules are evaluated in precedence order, first match wins:
//
//  1. VIP always ships free.
//  2. PREMIUM ships free when the subtotal exceeds 100.
//  3. Any tier ships free when the subtotal exceeds 200.
//  4. Otherwise the standard flat rate applies.
func (Policy) ShippingCost(tier Tier, subtotal decimal.Decimal) decimal.Decimal {
	switch {
	case tier == TierVIP:
		return decimal.Zero
	case tier == TierPremium && subtotal.GreaterThan(premiumFreeShippingMin):
		return decimal.Zero
	case subtotal.GreaterThan(freeShippingMin):
		return decimal.Zero
	default:
		return StandardShipping
	}
}
