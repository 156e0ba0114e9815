package handler

import (
	"io/fs"
	"net/http"

	"github.com/msomdec/dagligsvensk/internal/metrics"
	"github.com/msomdec/dagligsvensk/internal/service"
	"github.com/msomdec/dagligsvensk/internal/view"
)

// Services bundles what the routes depend on.
type Services struct {
	Auth     *service.AuthService
	Profiles *service.ProfileService
	Progress *service.ProgressService
	Lessons  *service.LessonService
	Audio    *service.AudioService
	Contacts *service.ContactService
	// Limiter throttles signup, signin, contact and TTS per client IP.
	// Nil disables throttling.
	Limiter *service.TokenBucket
	// DB backs the health check. Nil reports healthy without a ping.
	DB      Pinger
	Metrics *metrics.Metrics
}

// Options are deployment settings for the routes.
type Options struct {
	CookieSecure bool
	StripeKey    bool
}

// RegisterRoutes sets up all HTTP routes on the given mux.
func RegisterRoutes(mux *http.ServeMux, svc Services, opts Options) {
	authHandler := NewAuthHandler(svc.Auth, opts.CookieSecure)
	profileHandler := NewProfileHandler(svc.Profiles)
	progressHandler := NewProgressHandler(svc.Progress)
	lessonHandler := NewLessonHandler(svc.Lessons)
	ttsHandler := NewTTSHandler(svc.Audio)
	contactHandler := NewContactHandler(svc.Contacts)
	stripeHandler := NewStripeHandler(opts.StripeKey)
	appHandler := NewAppHandler(svc.Progress, svc.Lessons)

	api := func(h http.HandlerFunc) http.Handler { return RequireAuth(svc.Auth, h) }
	page := func(h http.HandlerFunc) http.Handler { return RequirePage(svc.Auth, h) }
	optional := func(h http.HandlerFunc) http.Handler { return OptionalAuth(svc.Auth, h) }
	limited := func(h http.Handler) http.Handler {
		if svc.Limiter == nil {
			return h
		}
		return RateLimit(svc.Limiter, h)
	}

	mux.HandleFunc("GET /healthz", HandleHealthz(svc.DB))
	if svc.Metrics != nil {
		mux.Handle("GET /metrics", svc.Metrics.Handler())
	}

	staticFS, _ := fs.Sub(view.Static, "static")
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(staticFS)))

	// JSON API
	mux.Handle("POST /api/auth/signup", limited(http.HandlerFunc(authHandler.HandleSignup)))
	mux.Handle("POST /api/auth/signin", limited(http.HandlerFunc(authHandler.HandleSignin)))
	mux.Handle("GET /api/auth/me", api(authHandler.HandleMe))
	mux.HandleFunc("POST /api/auth/logout", authHandler.HandleLogout)

	mux.Handle("GET /api/profile", api(profileHandler.HandleGet))
	mux.Handle("PUT /api/profile", api(profileHandler.HandleUpdate))

	mux.Handle("GET /api/progress", api(progressHandler.HandleGet))
	mux.Handle("POST /api/progress", api(progressHandler.HandleComplete))

	mux.Handle("GET /api/lessons/{scenario}", api(lessonHandler.HandleGet))
	mux.Handle("POST /api/tts", limited(http.HandlerFunc(ttsHandler.HandleSynthesize)))
	mux.Handle("POST /api/contact", limited(http.HandlerFunc(contactHandler.HandleSubmit)))

	mux.Handle("POST /api/stripe/checkout", api(stripeHandler.HandleCheckout))
	mux.HandleFunc("POST /api/stripe/webhook", stripeHandler.HandleWebhook)

	mux.HandleFunc("/api/", HandleAPINotFound)

	// Pages
	mux.Handle("GET /{$}", optional(HandleHome))
	mux.Handle("GET /signin", optional(HandleSignInPage))
	mux.Handle("GET /signup", optional(HandleSignUpPage))
	mux.Handle("GET /contact", optional(HandleContactPage))
	mux.Handle("GET /terms", optional(HandleTermsPage))
	mux.Handle("GET /privacy", optional(HandlePrivacyPage))

	mux.Handle("GET /app", page(appHandler.HandleDashboard))
	mux.Handle("GET /app/lesson", page(appHandler.HandleLesson))
	mux.Handle("POST /app/lesson/complete", page(appHandler.HandleLessonComplete))
	mux.Handle("GET /app/settings", page(appHandler.HandleSettings))

	mux.Handle("/", optional(HandleNotFoundPage))
}

// NewServer builds the mux and wraps it in the request middleware chain.
func NewServer(svc Services, opts Options) http.Handler {
	mux := http.NewServeMux()
	RegisterRoutes(mux, svc, opts)

	var h http.Handler = SecurityHeaders(mux)
	h = LogRequests(h)
	h = Recover(h)
	if svc.Metrics != nil {
		h = svc.Metrics.Middleware(h)
	}
	return h
}
