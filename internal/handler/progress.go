package handler

import (
	"net/http"

	"github.com/msomdec/dagligsvensk/internal/service"
)

// ProgressHandler serves the daily progress ledger.
type ProgressHandler struct {
	progress *service.ProgressService
}

func NewProgressHandler(progress *service.ProgressService) *ProgressHandler {
	return &ProgressHandler{progress: progress}
}

// HandleGet summarizes the last 30 days.
// GET /api/progress
func (h *ProgressHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	summary, err := h.progress.GetProgress(r.Context(), user.ID)
	if err != nil {
		writeServiceError(w, "get progress", err)
		return
	}
	writeJSON(w, http.StatusOK, toProgressDTO(summary))
}

// HandleComplete records one finished lesson. The body is ignored.
// POST /api/progress
func (h *ProgressHandler) HandleComplete(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	result, err := h.progress.CompleteLesson(r.Context(), user.ID)
	if err != nil {
		writeServiceError(w, "complete lesson", err)
		return
	}
	writeJSON(w, http.StatusOK, toCompletionDTO(result))
}
