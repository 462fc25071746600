package handler

import (
	"net/http"

	"github.com/xenking/order-pricing-engine/internal/domain/order"
	"github.com/xenking/order-pricing-engine/internal/report"
)

// OrderReport renders all orders as a tabular report. The format query
// parameter selects the output format; it defaults to text.
func (h *Handler) OrderReport(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = string(report.FormatText)
	}

	renderer, err := report.New(format)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	all := h.orders.ListOrders(r.Context())
	rows := make([][]string, len(all))
	for i, o := range all {
		rows[i] = o.ReportRow()
	}

	out, err := renderer.Render(report.Table{
		Title:   "Orders",
		Columns: order.ReportColumns,
		Rows:    rows,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "render report")
		return
	}

	w.Header().Set("Content-Type", renderer.ContentType())
	_, _ = w.Write(out)
}
