package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"

	"github.com/xenking/order-pricing-engine/internal/event"
	"github.com/xenking/order-pricing-engine/internal/notify"
)

type sendNotificationRequest struct {
	Channel   string `json:"channel"`
	Recipient string `json:"recipient"`
	Message   string `json:"message"`
}

// SendNotification dispatches a notification over the requested channel.
func (h *Handler) SendNotification(w http.ResponseWriter, r *http.Request) {
	var req sendNotificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	res, err := h.notifier.Dispatch(r.Context(), req.Channel, req.Recipient, req.Message)
	switch {
	case errors.Is(err, notify.ErrUnknownChannel),
		errors.Is(err, notify.ErrEmptyRecipient),
		errors.Is(err, notify.ErrEmptyMessage):
		writeError(w, http.StatusBadRequest, err.Error())
		return
	case errors.Is(err, notify.ErrInvalidRecipient):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	case err != nil:
		writeError(w, http.StatusInternalServerError, "dispatch failed")
		return
	}

	if h.events != nil {
		h.events.Publish(r.Context(), event.TypeNotificationSent, map[string]any{
			"channel":   string(res.Channel),
			"recipient": res.Recipient,
		})
	}

	var e jx.Encoder
	e.ObjStart()
	e.FieldStart("channel")
	e.Str(string(res.Channel))
	e.FieldStart("recipient")
	e.Str(res.Recipient)
	e.FieldStart("ok")
	e.Bool(res.OK)
	e.FieldStart("sentAt")
	e.Str(res.At.Format(time.RFC3339))
	e.ObjEnd()
	writeJSON(w, http.StatusOK, &e)
}
