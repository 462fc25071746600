package order

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/xenking/order-pricing-engine/internal/domain/pricing"
)

// Status is the lifecycle state of an order. Only CREATED is reachable in
// this engine; later transitions (SHIPPED, CANCELLED) are handled elsewhere.
type Status string

// StatusCreated marks a freshly priced and persisted order.
const StatusCreated Status = "CREATED"

// LineItem is a validated order line. Instances only exist after validation,
// so the name is non-empty, the unit price is positive, and the quantity is
// positive. Downstream code relies on this and does not re-validate.
type LineItem struct {
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int
}

// ItemInput is a raw, unvalidated line item as submitted by the caller.
// Price and quantity are pointers so a missing attribute is distinguishable
// from an invalid zero value.
type ItemInput struct {
	Name      string
	UnitPrice *decimal.Decimal
	Quantity  *int
}

// Order is the fully computed, persisted representation of a priced order.
//
// Invariants: Total = (Subtotal - DiscountAmount) + TaxAmount + ShippingCost
// and DiscountAmount = Subtotal * DiscountRate, with every monetary field
// rounded to 2 decimal places.
type Order struct {
	ID             string
	Tier           pricing.Tier
	Items          []LineItem
	Subtotal       decimal.Decimal
	DiscountRate   decimal.Decimal
	DiscountAmount decimal.Decimal
	TaxAmount      decimal.Decimal
	ShippingCost   decimal.Decimal
	Total          decimal.Decimal
	Status         Status
	CreatedAt      time.Time
}

// Repository defines persistence operations for orders.
type Repository interface {
	// Create assigns the next sequential order id to o and persists the
	// record. Id assignment and persistence happen in a single critical
	// section, so concurrent creates never interleave or reuse ids.
	Create(ctx context.Context, o *Order)

	// Get returns the order with the given id, or ok=false when unknown.
	Get(ctx context.Context, id string) (*Order, bool)

	// List returns all orders in creation order.
	List(ctx context.Context) []*Order
}
