package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/starfederation/datastar-go/datastar"

	"github.com/msomdec/dagligsvensk/internal/domain"
	"github.com/msomdec/dagligsvensk/internal/service"
	"github.com/msomdec/dagligsvensk/internal/view"
)

// AppHandler serves the signed-in pages.
type AppHandler struct {
	progress *service.ProgressService
	lessons  *service.LessonService
}

func NewAppHandler(progress *service.ProgressService, lessons *service.LessonService) *AppHandler {
	return &AppHandler{progress: progress, lessons: lessons}
}

func (h *AppHandler) serverError(w http.ResponseWriter, r *http.Request, op string, err error) {
	slog.Error(op, "error", err)
	render(w, r, http.StatusInternalServerError,
		view.ErrorPage(UserFromContext(r.Context()), http.StatusInternalServerError, "Something went wrong. Please try again."))
}

// HandleDashboard renders streak, XP and today's lessons.
// GET /app
func (h *AppHandler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	summary, err := h.progress.GetProgress(r.Context(), user.ID)
	if err != nil {
		h.serverError(w, r, "get progress for dashboard", err)
		return
	}

	next, _ := h.lessons.ForUser(user)
	render(w, r, http.StatusOK, view.DashboardPage(user, summary, next))
}

// HandleLesson renders the lesson player for ?scenario= or the user's first scenario.
// GET /app/lesson
func (h *AppHandler) HandleLesson(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	scenario, steps := h.lessons.ForUser(user)
	if q := r.URL.Query().Get("scenario"); q != "" {
		if sc, err := domain.ParseScenario(q); err == nil {
			scenario = h.lessons.Resolve(sc)
			steps = h.lessons.Steps(scenario)
		}
	}

	summary, err := h.progress.GetProgress(r.Context(), user.ID)
	if err != nil {
		h.serverError(w, r, "get progress for lesson", err)
		return
	}

	render(w, r, http.StatusOK, view.LessonPage(user, scenario, steps, summary))
}

// HandleLessonComplete records the lesson and patches the result fragment.
// POST /app/lesson/complete
func (h *AppHandler) HandleLessonComplete(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	result, err := h.progress.CompleteLesson(r.Context(), user.ID)

	sse := datastar.NewSSE(w, r)
	fragment := view.LessonResult(result)
	switch {
	case errors.Is(err, domain.ErrDailyCapReached):
		fragment = view.LessonNotice("You have reached today's limit of lessons. See you tomorrow!")
	case err != nil:
		slog.Error("complete lesson", "error", err)
		fragment = view.LessonNotice("We could not save your progress. Please try again.")
	}

	if err := sse.PatchElementTempl(fragment, datastar.WithSelectorID("lesson-result")); err != nil {
		slog.Error("patch lesson result", "error", err)
	}
}

// HandleSettings renders the profile editor.
// GET /app/settings
func (h *AppHandler) HandleSettings(w http.ResponseWriter, r *http.Request) {
	render(w, r, http.StatusOK, view.SettingsPage(UserFromContext(r.Context())))
}
