package handler

import (
	"log/slog"
	"net/http"

	"github.com/msomdec/dagligsvensk/internal/service"
)

// ContactHandler accepts contact form submissions.
type ContactHandler struct {
	contacts *service.ContactService
}

func NewContactHandler(contacts *service.ContactService) *ContactHandler {
	return &ContactHandler{contacts: contacts}
}

// HandleSubmit stores a message.
// POST /api/contact
// Request:  {"email":"...","message":"..."}
// Response: {"success":true}
func (h *ContactHandler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email   string `json:"email"`
		Message string `json:"message"`
	}
	if err := readJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	msg, err := h.contacts.Submit(r.Context(), req.Email, req.Message)
	if err != nil {
		writeServiceError(w, "submit contact message", err)
		return
	}
	slog.Info("contact message received", "id", msg.ID)
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
