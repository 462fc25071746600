// Package handler exposes the order engine over HTTP. Handlers convert JSON
// requests to domain calls and map domain errors to status codes.
package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-faster/jx"
	"go.opentelemetry.io/otel/metric"

	"github.com/xenking/order-pricing-engine/internal/domain/order"
	"github.com/xenking/order-pricing-engine/internal/event"
	"github.com/xenking/order-pricing-engine/internal/notify"
)

// Handler carries the domain dependencies for all HTTP endpoints.
type Handler struct {
	orders       *order.Service
	notifier     *notify.Dispatcher
	events       *event.Bus // nil-safe: event publishing skipped if nil
	ordersPlaced metric.Int64Counter
}

// New constructs a Handler. events may be nil.
func New(
	orders *order.Service,
	notifier *notify.Dispatcher,
	events *event.Bus,
	ordersPlaced metric.Int64Counter,
) *Handler {
	return &Handler{
		orders:       orders,
		notifier:     notifier,
		events:       events,
		ordersPlaced: ordersPlaced,
	}
}

// Routes returns the API router.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Post("/orders", h.PlaceOrder)
	r.Get("/orders", h.ListOrders)
	r.Get("/orders/report", h.OrderReport)
	r.Get("/orders/{id}", h.GetOrder)
	r.Post("/notifications", h.SendNotification)
	return r
}

// writeJSON writes an encoded jx buffer with the given status code.
func writeJSON(w http.ResponseWriter, status int, e *jx.Encoder) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(e.Bytes())
}

// writeError writes a {"code", "message"} error body.
func writeError(w http.ResponseWriter, status int, message string) {
	var e jx.Encoder
	e.ObjStart()
	e.FieldStart("code")
	e.Int(status)
	e.FieldStart("message")
	e.Str(message)
	e.ObjEnd()
	writeJSON(w, status, &e)
}
