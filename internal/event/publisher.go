package event

import (
	"context"

	"github.com/xenking/order-pricing-engine/internal/domain/order"
)

var _ order.Publisher = (*OrderPublisher)(nil)

// OrderPublisher adapts the Bus to the order engine's Publisher interface.
type OrderPublisher struct {
	bus *Bus
}

// NewOrderPublisher wraps bus for use by the order engine.
func NewOrderPublisher(bus *Bus) *OrderPublisher {
	return &OrderPublisher{bus: bus}
}

// OrderPlaced publishes an ORDER_PLACED event for the persisted order.
func (p *OrderPublisher) OrderPlaced(ctx context.Context, o *order.Order) {
	p.bus.Publish(ctx, TypeOrderPlaced, map[string]any{
		"orderId":      o.ID,
		"customerType": o.Tier.String(),
		"total":        o.Total.StringFixed(2),
	})
}
