package order

import (
	"context"
	"time"

	"github.com/xenking/order-pricing-engine/internal/domain/pricing"
)

// Publisher is notified after an order has been persisted. The engine does
// not depend on the outcome of any subscriber.
type Publisher interface {
	OrderPlaced(ctx context.Context, o *Order)
}

// Service is the order processing engine. It orchestrates validation,
// pricing, and sequential id assignment with persistence.
type Service struct {
	calc   *Calculator
	orders Repository
	events Publisher // nil-safe: event publishing skipped if nil
	now    func() time.Time
}

// NewService creates an order Service. events may be nil when no event
// recording is wanted.
func NewService(calc *Calculator, orders Repository, events Publisher) *Service {
	return &Service{
		calc:   calc,
		orders: orders,
		events: events,
		now:    time.Now,
	}
}

// ProcessOrder prices and persists one order for the given customer tier.
//
// The tier string is normalized first (unrecognized tiers become UNKNOWN,
// never an error). Validation failures are returned unchanged and abort
// processing before an order id is consumed or anything is persisted.
func (s *Service) ProcessOrder(ctx context.Context, tier string, items []ItemInput) (*Order, error) {
	t := pricing.ParseTier(tier)

	validated, err := ValidateItems(items)
	if err != nil {
		return nil, err
	}

	b := s.calc.Price(t, validated)

	o := &Order{
		Tier:           t,
		Items:          validated,
		Subtotal:       b.Subtotal,
		DiscountRate:   b.DiscountRate,
		DiscountAmount: b.DiscountAmount,
		TaxAmount:      b.TaxAmount,
		ShippingCost:   b.ShippingCost,
		Total:          b.Total,
		Status:         StatusCreated,
		CreatedAt:      s.now(),
	}
	s.orders.Create(ctx, o)

	if s.events != nil {
		s.events.OrderPlaced(ctx, o)
	}

	return o, nil
}

// GetOrder returns a persisted order by id.
func (s *Service) GetOrder(ctx context.Context, id string) (*Order, bool) {
	return s.orders.Get(ctx, id)
}

// ListOrders returns all persisted orders in creation order.
func (s *Service) ListOrders(ctx context.Context) []*Order {
	return s.orders.List(ctx)
}
