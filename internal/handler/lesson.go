package handler

import (
	"net/http"

	"github.com/msomdec/dagligsvensk/internal/domain"
	"github.com/msomdec/dagligsvensk/internal/service"
)

// LessonHandler serves scripted lesson content.
type LessonHandler struct {
	lessons *service.LessonService
}

func NewLessonHandler(lessons *service.LessonService) *LessonHandler {
	return &LessonHandler{lessons: lessons}
}

// HandleGet returns the steps for a scenario, or the default lesson when the
// scenario is unknown.
// GET /api/lessons/{scenario}
func (h *LessonHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	sc := h.lessons.Resolve(domain.Scenario(r.PathValue("scenario")))
	writeJSON(w, http.StatusOK, LessonDTO{Scenario: sc, Steps: h.lessons.Steps(sc)})
}
