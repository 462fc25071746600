package order

import (
	"github.com/shopspring/decimal"

	"github.com/xenking/order-pricing-engine/internal/domain/pricing"
)

// Breakdown is the priced fragment of an order: every monetary amount the
// pricing rules produce, before identity and persistence are attached.
type Breakdown struct {
	Subtotal       decimal.Decimal
	DiscountRate   decimal.Decimal
	DiscountAmount decimal.Decimal
	TaxAmount      decimal.Decimal
	ShippingCost   decimal.Decimal
	Total          decimal.Decimal
}

// PricingPolicy is the subset of pricing rules the calculator needs.
type PricingPolicy interface {
	DiscountRate(tier pricing.Tier) decimal.Decimal
	ShippingCost(tier pricing.Tier, subtotal decimal.Decimal) decimal.Decimal
}

// Calculator composes the pricing policy with validated items into a priced
// breakdown. It assumes validated input and has no error conditions.
type Calculator struct {
	policy PricingPolicy
}

// NewCalculator creates a Calculator using the given pricing policy.
func NewCalculator(policy PricingPolicy) *Calculator {
	return &Calculator{policy: policy}
}

// Price computes the full monetary breakdown for the given tier and items.
//
// The subtotal is summed in input order. The discount applies to the
// subtotal, tax applies to the discounted subtotal, and shipping is
// evaluated on the pre-discount subtotal. Each component is rounded to
// 2 decimal places before the total is assembled, so
// Total = (Subtotal - DiscountAmount) + TaxAmount + ShippingCost exactly.
func (c *Calculator) Price(tier pricing.Tier, items []LineItem) Breakdown {
	subtotal := decimal.Zero
	for _, item := range items {
		line := item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))
		subtotal = subtotal.Add(line)
	}
	subtotal = subtotal.Round(2)

	rate := c.policy.DiscountRate(tier)
	discount := subtotal.Mul(rate).Round(2)
	afterDiscount := subtotal.Sub(discount)

	tax := afterDiscount.Mul(pricing.TaxRate).Round(2)
	shipping := c.policy.ShippingCost(tier, subtotal).Round(2)

	return Breakdown{
		Subtotal:       subtotal,
		DiscountRate:   rate,
		DiscountAmount: discount,
		TaxAmount:      tax,
		ShippingCost:   shipping,
		Total:          afterDiscount.Add(tax).Add(shipping),
	}
}
