package handler

import (
	"encoding/json"
	"net/http"

	"github.com/msomdec/dagligsvensk/internal/service"
)

// ProfileHandler serves the learner profile API.
type ProfileHandler struct {
	profiles *service.ProfileService
}

func NewProfileHandler(profiles *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

// HandleGet returns the profile.
// GET /api/profile
func (h *ProfileHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	writeJSON(w, http.StatusOK, toProfileDTO(user))
}

// HandleUpdate applies a partial update.
// PUT /api/profile
// Request:  any of {"displayName","level","goal","scenarios"}
// Response: {"success":true,"profile":{...}} or 400 with "fields"
func (h *ProfileHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	var fields map[string]json.RawMessage
	if err := readJSON(w, r, &fields); err != nil || fields == nil {
		writeError(w, http.StatusBadRequest, "Request body must be a JSON object.")
		return
	}

	updated, err := h.profiles.UpdateProfile(r.Context(), user.ID, fields)
	if err != nil {
		writeServiceError(w, "update profile", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "profile": toProfileDTO(updated)})
}
