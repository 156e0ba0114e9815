package handler_test

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"testing"
)

// newClient returns a client with a cookie jar that does not follow redirects.
func newClient(t *testing.T) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("cookiejar: %v", err)
	}
	return &http.Client{
		Jar: jar,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

func doJSON(t *testing.T, client *http.Client, method, url string, body any) (*http.Response, map[string]any) {
	t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		r = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, url, r)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	defer resp.Body.Close()

	var out map[string]any
	if strings.HasPrefix(resp.Header.Get("Content-Type"), "application/json") {
		if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
			t.Fatalf("decode %s %s: %v", method, url, err)
		}
	}
	return resp, out
}

func signup(t *testing.T, client *http.Client, base, email string) {
	t.Helper()
	resp, body := doJSON(t, client, http.MethodPost, base+"/api/auth/signup", map[string]string{
		"email": email, "password": "password123", "displayName": "Anna",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("signup: expected 200, got %d: %v", resp.StatusCode, body)
	}
}

func TestIntegration_AuthFlow(t *testing.T) {
	srv := newTestEnv(t).server(t)
	client := newClient(t)

	resp, body := doJSON(t, client, http.MethodPost, srv.URL+"/api/auth/signup", map[string]string{
		"email": "Anna@Example.com", "password": "password123", "displayName": "Anna",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("signup: expected 200, got %d", resp.StatusCode)
	}
	if body["success"] != true {
		t.Fatalf("expected success, got %v", body)
	}
	user, _ := body["user"].(map[string]any)
	if user["email"] != "anna@example.com" {
		t.Fatalf("expected normalized email, got %v", user["email"])
	}

	var session *http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == "token" {
			session = c
		}
	}
	if session == nil {
		t.Fatal("expected token cookie")
	}
	if !session.HttpOnly {
		t.Fatal("expected HttpOnly cookie")
	}
	if session.MaxAge != 7*24*60*60 {
		t.Fatalf("expected 7 day cookie, got MaxAge %d", session.MaxAge)
	}

	resp, body = doJSON(t, client, http.MethodGet, srv.URL+"/api/auth/me", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("me: expected 200, got %d", resp.StatusCode)
	}
	if body["plan"] != "free" || body["level"] != "beginner" {
		t.Fatalf("unexpected profile defaults: %v", body)
	}
	if _, ok := body["passwordHash"]; ok {
		t.Fatal("me must not expose the password hash")
	}

	resp, _ = doJSON(t, client, http.MethodPost, srv.URL+"/api/auth/logout", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("logout: expected 200, got %d", resp.StatusCode)
	}

	resp, _ = doJSON(t, client, http.MethodGet, srv.URL+"/api/auth/me", nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("me after logout: expected 401, got %d", resp.StatusCode)
	}

	// Sign back in.
	resp, _ = doJSON(t, client, http.MethodPost, srv.URL+"/api/auth/signin", map[string]string{
		"email": "anna@example.com", "password": "password123",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("signin: expected 200, got %d", resp.StatusCode)
	}
	resp, _ = doJSON(t, client, http.MethodGet, srv.URL+"/api/auth/me", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("me after signin: expected 200, got %d", resp.StatusCode)
	}
}

func TestIntegration_SignupErrors(t *testing.T) {
	srv := newTestEnv(t).server(t)
	client := newClient(t)
	signup(t, client, srv.URL, "dup@example.com")

	tests := []struct {
		name string
		body map[string]string
	}{
		{"duplicate", map[string]string{"email": "DUP@example.com", "password": "password123"}},
		{"weak password", map[string]string{"email": "weak@example.com", "password": "short"}},
		{"missing email", map[string]string{"password": "password123"}},
		{"multibyte weak password", map[string]string{"email": "mb@example.com", "password": "åäöå"}},
		{"password over 72 bytes", map[string]string{"email": "long@example.com", "password": strings.Repeat("a", 80)}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resp, body := doJSON(t, newClient(t), http.MethodPost, srv.URL+"/api/auth/signup", tc.body)
			if resp.StatusCode != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", resp.StatusCode)
			}
			if msg, _ := body["error"].(string); msg == "" {
				t.Fatalf("expected error message, got %v", body)
			}
		})
	}
}

func TestIntegration_SigninInvalidCredentials(t *testing.T) {
	srv := newTestEnv(t).server(t)
	signup(t, newClient(t), srv.URL, "known@example.com")

	_, wrong := doJSON(t, newClient(t), http.MethodPost, srv.URL+"/api/auth/signin", map[string]string{
		"email": "known@example.com", "password": "wrongpassword",
	})
	resp, unknown := doJSON(t, newClient(t), http.MethodPost, srv.URL+"/api/auth/signin", map[string]string{
		"email": "nobody@example.com", "password": "password123",
	})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
	if wrong["error"] != unknown["error"] {
		t.Fatalf("error bodies differ: %v vs %v", wrong, unknown)
	}
}

func TestIntegration_UnauthenticatedAPI(t *testing.T) {
	srv := newTestEnv(t).server(t)
	client := newClient(t)

	for _, ep := range []struct{ method, path string }{
		{http.MethodGet, "/api/auth/me"},
		{http.MethodGet, "/api/profile"},
		{http.MethodPut, "/api/profile"},
		{http.MethodGet, "/api/progress"},
		{http.MethodPost, "/api/progress"},
		{http.MethodGet, "/api/lessons/shopping"},
		{http.MethodPost, "/api/stripe/checkout"},
	} {
		resp, body := doJSON(t, client, ep.method, srv.URL+ep.path, nil)
		if resp.StatusCode != http.StatusUnauthorized {
			t.Fatalf("%s %s: expected 401, got %d", ep.method, ep.path, resp.StatusCode)
		}
		if body["error"] == nil {
			t.Fatalf("%s %s: expected error body", ep.method, ep.path)
		}
	}
}

func TestIntegration_Profile(t *testing.T) {
	srv := newTestEnv(t).server(t)
	client := newClient(t)
	signup(t, client, srv.URL, "profile@example.com")

	resp, body := doJSON(t, client, http.MethodPut, srv.URL+"/api/profile", map[string]any{
		"displayName": "Anna Svensson",
		"level":       "intermediate",
		"goal":        "  Order coffee  ",
		"scenarios":   []string{"work", "food"},
		"plan":        "pro",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("update: expected 200, got %d: %v", resp.StatusCode, body)
	}
	profile, _ := body["profile"].(map[string]any)
	if profile["displayName"] != "Anna Svensson" || profile["level"] != "intermediate" || profile["goal"] != "Order coffee" {
		t.Fatalf("unexpected profile: %v", profile)
	}
	if profile["plan"] != "free" {
		t.Fatalf("plan must not be client-writable, got %v", profile["plan"])
	}

	resp, body = doJSON(t, client, http.MethodPut, srv.URL+"/api/profile", map[string]any{
		"level":     "expert",
		"scenarios": []string{"work", "food", "travel"},
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("invalid update: expected 400, got %d", resp.StatusCode)
	}
	fields, _ := body["fields"].([]any)
	if len(fields) != 2 {
		t.Fatalf("expected 2 field errors, got %v", body["fields"])
	}

	// Rejected updates leave the profile untouched.
	_, body = doJSON(t, client, http.MethodGet, srv.URL+"/api/profile", nil)
	if body["level"] != "intermediate" {
		t.Fatalf("expected level unchanged, got %v", body["level"])
	}
	scenarios, _ := body["scenarios"].([]any)
	if len(scenarios) != 2 || scenarios[0] != "work" {
		t.Fatalf("expected scenarios unchanged, got %v", scenarios)
	}

	resp, _ = doJSON(t, client, http.MethodPut, srv.URL+"/api/profile", []string{"not", "an", "object"})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("non-object body: expected 400, got %d", resp.StatusCode)
	}
}

func TestIntegration_ProgressDailyCap(t *testing.T) {
	srv := newTestEnv(t).server(t)
	client := newClient(t)
	signup(t, client, srv.URL, "progress@example.com")

	for i := 1; i <= 20; i++ {
		resp, body := doJSON(t, client, http.MethodPost, srv.URL+"/api/progress", nil)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("completion %d: expected 200, got %d: %v", i, resp.StatusCode, body)
		}
		if got := body["completionsCount"].(float64); int(got) != i {
			t.Fatalf("completion %d: expected count %d, got %v", i, i, got)
		}
		if body["streak"].(float64) != 1 {
			t.Fatalf("completion %d: expected streak 1, got %v", i, body["streak"])
		}
	}

	resp, _ := doJSON(t, client, http.MethodPost, srv.URL+"/api/progress", nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("over cap: expected 400, got %d", resp.StatusCode)
	}

	resp, body := doJSON(t, client, http.MethodGet, srv.URL+"/api/progress", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("get progress: expected 200, got %d", resp.StatusCode)
	}
	if body["totalXP"].(float64) != 200 {
		t.Fatalf("expected 200 XP, got %v", body["totalXP"])
	}
	if body["completedToday"] != true || body["currentStreak"].(float64) != 1 {
		t.Fatalf("unexpected summary: %v", body)
	}
	if days, _ := body["progress"].([]any); len(days) != 1 {
		t.Fatalf("expected one day of progress, got %v", body["progress"])
	}
}

func TestIntegration_Lessons(t *testing.T) {
	srv := newTestEnv(t).server(t)
	client := newClient(t)
	signup(t, client, srv.URL, "lessons@example.com")

	tests := []struct {
		path string
		want string
	}{
		{"/api/lessons/survival", "survival"},
		{"/api/lessons/work", "work"},
		{"/api/lessons/doctor", "shopping"},
		{"/api/lessons/klingon", "shopping"},
	}

	for _, tc := range tests {
		resp, body := doJSON(t, client, http.MethodGet, srv.URL+tc.path, nil)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", tc.path, resp.StatusCode)
		}
		if body["scenario"] != tc.want {
			t.Fatalf("%s: expected scenario %s, got %v", tc.path, tc.want, body["scenario"])
		}
		steps, _ := body["steps"].([]any)
		if len(steps) == 0 {
			t.Fatalf("%s: expected steps", tc.path)
		}
		first, _ := steps[0].(map[string]any)
		if first["type"] != "intro" {
			t.Fatalf("%s: expected intro first, got %v", tc.path, first["type"])
		}
	}
}

func TestIntegration_TTS(t *testing.T) {
	env := newTestEnv(t)
	srv := env.server(t)
	client := newClient(t)

	for range 2 {
		resp, body := doJSON(t, client, http.MethodPost, srv.URL+"/api/tts", map[string]string{"text": " Hej! "})
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("tts: expected 200, got %d: %v", resp.StatusCode, body)
		}
		audio, err := base64.StdEncoding.DecodeString(body["audio"].(string))
		if err != nil {
			t.Fatalf("decode audio: %v", err)
		}
		if string(audio) != "mp3:Hej!" {
			t.Fatalf("unexpected audio %q", audio)
		}
	}
	if n := env.synth.calls.Load(); n != 1 {
		t.Fatalf("expected one upstream call, got %d", n)
	}

	resp, _ := doJSON(t, client, http.MethodPost, srv.URL+"/api/tts", map[string]string{"text": "   "})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("empty text: expected 400, got %d", resp.StatusCode)
	}
}

func TestIntegration_Contact(t *testing.T) {
	srv := newTestEnv(t).server(t)
	client := newClient(t)

	resp, body := doJSON(t, client, http.MethodPost, srv.URL+"/api/contact", map[string]string{
		"email": "visitor@example.com", "message": "Hej, tack för appen!",
	})
	if resp.StatusCode != http.StatusOK || body["success"] != true {
		t.Fatalf("contact: expected success, got %d %v", resp.StatusCode, body)
	}

	resp, _ = doJSON(t, client, http.MethodPost, srv.URL+"/api/contact", map[string]string{
		"email": "visitor@example.com", "message": strings.Repeat("a", 5001),
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("long message: expected 400, got %d", resp.StatusCode)
	}
}

func TestIntegration_StripeNotImplemented(t *testing.T) {
	srv := newTestEnv(t).server(t)
	client := newClient(t)

	resp, _ := doJSON(t, client, http.MethodPost, srv.URL+"/api/stripe/webhook", nil)
	if resp.StatusCode != http.StatusNotImplemented {
		t.Fatalf("webhook: expected 501, got %d", resp.StatusCode)
	}

	signup(t, client, srv.URL, "pay@example.com")
	resp, _ = doJSON(t, client, http.MethodPost, srv.URL+"/api/stripe/checkout", nil)
	if resp.StatusCode != http.StatusNotImplemented {
		t.Fatalf("checkout: expected 501, got %d", resp.StatusCode)
	}
}

func TestIntegration_UnknownAPIRoute(t *testing.T) {
	srv := newTestEnv(t).server(t)

	resp, body := doJSON(t, newClient(t), http.MethodGet, srv.URL+"/api/nope", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
	if body["error"] == nil {
		t.Fatal("expected JSON error body")
	}
}

func TestIntegration_AppPages(t *testing.T) {
	srv := newTestEnv(t).server(t)
	client := newClient(t)

	resp, err := client.Get(srv.URL + "/app")
	if err != nil {
		t.Fatalf("GET /app: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusSeeOther || resp.Header.Get("Location") != "/signin" {
		t.Fatalf("expected redirect to /signin, got %d %s", resp.StatusCode, resp.Header.Get("Location"))
	}

	signup(t, client, srv.URL, "pages@example.com")

	for _, path := range []string{"/app", "/app/lesson", "/app/lesson?scenario=travel", "/app/settings"} {
		resp, err := client.Get(srv.URL + path)
		if err != nil {
			t.Fatalf("GET %s: %v", path, err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("GET %s: expected 200, got %d", path, resp.StatusCode)
		}
	}

	// Signed-in visitors skip the auth pages.
	resp, err = client.Get(srv.URL + "/signin")
	if err != nil {
		t.Fatalf("GET /signin: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusSeeOther || resp.Header.Get("Location") != "/app" {
		t.Fatalf("expected redirect to /app, got %d %s", resp.StatusCode, resp.Header.Get("Location"))
	}
}

func TestIntegration_LessonCompleteSSE(t *testing.T) {
	srv := newTestEnv(t).server(t)
	client := newClient(t)
	signup(t, client, srv.URL, "sse@example.com")

	resp, err := client.Post(srv.URL+"/app/lesson/complete", "application/json", nil)
	if err != nil {
		t.Fatalf("POST /app/lesson/complete: %v", err)
	}
	defer resp.Body.Close()

	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/event-stream") {
		t.Fatalf("expected event stream, got %s", ct)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	s := string(body)
	if !strings.Contains(s, "datastar-patch-elements") {
		t.Fatalf("expected patch-elements event, got %q", s)
	}
	if !strings.Contains(s, "lesson-result") {
		t.Fatalf("expected lesson-result fragment, got %q", s)
	}

	_, progress := doJSON(t, client, http.MethodGet, srv.URL+"/api/progress", nil)
	if progress["completedLessonsToday"].(float64) != 1 {
		t.Fatalf("expected one completion recorded, got %v", progress["completedLessonsToday"])
	}
}

func TestIntegration_Metrics(t *testing.T) {
	srv := newTestEnv(t).server(t)
	client := newClient(t)
	signup(t, client, srv.URL, "metrics@example.com")
	doJSON(t, client, http.MethodPost, srv.URL+"/api/progress", nil)

	resp, err := client.Get(srv.URL + "/metrics")
	if err != nil {
		t.Fatalf("GET /metrics: %v", err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	for _, want := range []string{
		"dagligsvensk_lessons_completed_total 1",
		`route="POST /api/progress"`,
	} {
		if !strings.Contains(string(body), want) {
			t.Fatalf("expected %q in metrics output", want)
		}
	}
}
