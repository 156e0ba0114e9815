package handler

import (
	"log/slog"
	"net/http"

	"github.com/a-h/templ"

	"github.com/msomdec/dagligsvensk/internal/view"
)

func render(w http.ResponseWriter, r *http.Request, status int, c templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := c.Render(r.Context(), w); err != nil {
		slog.Error("render page", "path", r.URL.Path, "error", err)
	}
}

// HandleHome renders the landing page.
func HandleHome(w http.ResponseWriter, r *http.Request) {
	render(w, r, http.StatusOK, view.HomePage(UserFromContext(r.Context())))
}

// HandleSignInPage renders the sign-in form, or sends signed-in users to the app.
func HandleSignInPage(w http.ResponseWriter, r *http.Request) {
	if UserFromContext(r.Context()) != nil {
		http.Redirect(w, r, "/app", http.StatusSeeOther)
		return
	}
	render(w, r, http.StatusOK, view.SignInPage())
}

// HandleSignUpPage renders the registration form.
func HandleSignUpPage(w http.ResponseWriter, r *http.Request) {
	if UserFromContext(r.Context()) != nil {
		http.Redirect(w, r, "/app", http.StatusSeeOther)
		return
	}
	render(w, r, http.StatusOK, view.SignUpPage())
}

func HandleContactPage(w http.ResponseWriter, r *http.Request) {
	render(w, r, http.StatusOK, view.ContactPage(UserFromContext(r.Context())))
}

func HandleTermsPage(w http.ResponseWriter, r *http.Request) {
	render(w, r, http.StatusOK, view.TermsPage(UserFromContext(r.Context())))
}

func HandlePrivacyPage(w http.ResponseWriter, r *http.Request) {
	render(w, r, http.StatusOK, view.PrivacyPage(UserFromContext(r.Context())))
}

// HandleNotFoundPage renders the 404 page for unknown paths.
func HandleNotFoundPage(w http.ResponseWriter, r *http.Request) {
	render(w, r, http.StatusNotFound, view.ErrorPage(UserFromContext(r.Context()), http.StatusNotFound, "We could not find that page."))
}

// HandleAPINotFound answers unknown API paths.
func HandleAPINotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, "Not found.")
}
