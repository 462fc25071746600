package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/xenking/order-pricing-engine/internal/domain/order"
)

// placeOrderRequest is the POST /orders body. Item price and quantity are
// pointers so the validator can tell a missing attribute from a zero value.
type placeOrderRequest struct {
	CustomerType string `json:"customerType"`
	Items        []struct {
		Name     string           `json:"name"`
		Price    *decimal.Decimal `json:"price"`
		Quantity *int             `json:"quantity"`
	} `json:"items"`
}

// PlaceOrder prices and persists a new order.
func (h *Handler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var req placeOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	items := make([]order.ItemInput, len(req.Items))
	for i, it := range req.Items {
		items[i] = order.ItemInput{
			Name:      it.Name,
			UnitPrice: it.Price,
			Quantity:  it.Quantity,
		}
	}

	o, err := h.orders.ProcessOrder(r.Context(), req.CustomerType, items)
	if err != nil {
		mapOrderError(w, err)
		return
	}

	trace.SpanFromContext(r.Context()).SetAttributes(
		attribute.String("order.id", o.ID),
		attribute.String("order.tier", o.Tier.String()),
	)
	if h.ordersPlaced != nil {
		h.ordersPlaced.Add(r.Context(), 1, metric.WithAttributes(
			attribute.String("tier", o.Tier.String()),
		))
	}
	var e jx.Encoder
	encodeOrder(&e, o)
	writeJSON(w, http.StatusCreated, &e)
}

// GetOrder returns one order by id.
func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	o, ok := h.orders.GetOrder(r.Context(), id)
	if !ok {
		writeError(w, http.StatusNotFound, "order not found")
		return
	}

	var e jx.Encoder
	encodeOrder(&e, o)
	writeJSON(w, http.StatusOK, &e)
}

// ListOrders returns all orders in creation order.
func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	all := h.orders.ListOrders(r.Context())

	var e jx.Encoder
	e.ArrStart()
	for _, o := range all {
		encodeOrder(&e, o)
	}
	e.ArrEnd()
	writeJSON(w, http.StatusOK, &e)
}

// mapOrderError converts validation errors to status codes: an empty order
// is a malformed request (400), item-level problems are unprocessable (422).
func mapOrderError(w http.ResponseWriter, err error) {
	var (
		mfErr *order.MissingFieldError
		iqErr *order.InvalidQuantityOrPriceError
	)
	switch {
	case errors.Is(err, order.ErrEmptyOrder):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.As(err, &mfErr), errors.As(err, &iqErr):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func encodeOrder(e *jx.Encoder, o *order.Order) {
	e.ObjStart()
	e.FieldStart("orderId")
	e.Str(o.ID)
	e.FieldStart("customerType")
	e.Str(o.Tier.String())
	e.FieldStart("items")
	e.ArrStart()
	for _, item := range o.Items {
		e.ObjStart()
		e.FieldStart("name")
		e.Str(item.Name)
		e.FieldStart("price")
		e.Float64(item.UnitPrice.InexactFloat64())
		e.FieldStart("quantity")
		e.Int(item.Quantity)
		e.ObjEnd()
	}
	e.ArrEnd()
	e.FieldStart("subtotal")
	e.Float64(o.Subtotal.InexactFloat64())
	e.FieldStart("discountPercentage")
	e.Float64(o.DiscountRate.InexactFloat64())
	e.FieldStart("discountAmount")
	e.Float64(o.DiscountAmount.InexactFloat64())
	e.FieldStart("taxAmount")
	e.Float64(o.TaxAmount.InexactFloat64())
	e.FieldStart("shippingCost")
	e.Float64(o.ShippingCost.InexactFloat64())
	e.FieldStart("total")
	e.Float64(o.Total.InexactFloat64())
	e.FieldStart("status")
	e.Str(string(o.Status))
	e.FieldStart("createdAt")
	e.Str(o.CreatedAt.Format(time.RFC3339))
	e.ObjEnd()
}
