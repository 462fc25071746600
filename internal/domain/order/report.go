package order

import (
	"fmt"
	"strings"
	"time"
)

// ReportColumns is the canonical field order for tabular order exports.
var ReportColumns = []string{
	"orderId",
	"customerType",
	"items",
	"subtotal",
	"discountPercentage",
	"discountAmount",
	"taxAmount",
	"shippingCost",
	"total",
	"status",
	"createdAt",
}

// ReportRow renders the order as one row of string values, matching
// ReportColumns positionally.
func (o *Order) ReportRow() []string {
	items := make([]string, len(o.Items))
	for i, item := range o.Items {
		items[i] = fmt.Sprintf("%s x%d", item.Name, item.Quantity)
	}

	return []string{
		o.ID,
		o.Tier.String(),
		strings.Join(items, "; "),
		o.Subtotal.StringFixed(2),
		o.DiscountRate.String(),
		o.DiscountAmount.StringFixed(2),
		o.TaxAmount.StringFixed(2),
		o.ShippingCost.StringFixed(2),
		o.Total.StringFixed(2),
		string(o.Status),
		o.CreatedAt.Format(time.RFC3339),
	}
}
