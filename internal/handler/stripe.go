package handler

import (
	"log/slog"
	"net/http"
)

// StripeHandler stands in for payment integration, which is not built.
// Both endpoints always answer 501.
type StripeHandler struct {
	keyPresent bool
}

func NewStripeHandler(keyPresent bool) *StripeHandler {
	return &StripeHandler{keyPresent: keyPresent}
}

// HandleCheckout always answers 501 until payments are built.
// POST /api/stripe/checkout
// Response: 501 {"error":"..."}
func (h *StripeHandler) HandleCheckout(w http.ResponseWriter, r *http.Request) {
	h.notImplemented(w, "checkout")
}

// HandleWebhook always answers 501. It needs no session.
// POST /api/stripe/webhook
// Response: 501 {"error":"..."}
func (h *StripeHandler) HandleWebhook(w http.ResponseWriter, r *http.Request) {
	h.notImplemented(w, "webhook")
}

func (h *StripeHandler) notImplemented(w http.ResponseWriter, endpoint string) {
	msg := "Payments are not configured."
	if h.keyPresent {
		msg = "Payments are not available yet."
	}
	slog.Debug("stripe endpoint called", "endpoint", endpoint, "key_present", h.keyPresent)
	writeError(w, http.StatusNotImplemented, msg)
}
