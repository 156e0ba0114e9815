package handler_test

import (
	"io"
	"net/http"
	"strings"
	"testing"
)

func TestHandleHome(t *testing.T) {
	srv := newTestEnv(t).server(t)

	resp, err := http.Get(srv.URL + "/")
	if err != nil {
		t.Fatalf("GET /: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Fatalf("expected HTML, got %s", ct)
	}
	if resp.Header.Get("X-Frame-Options") == "" {
		t.Fatal("expected security headers on pages")
	}
}

func TestPublicPages(t *testing.T) {
	srv := newTestEnv(t).server(t)

	for _, path := range []string{"/signin", "/signup", "/contact", "/terms", "/privacy", "/static/app.js"} {
		resp, err := http.Get(srv.URL + path)
		if err != nil {
			t.Fatalf("GET %s: %v", path, err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("GET %s: expected 200, got %d", path, resp.StatusCode)
		}
	}
}

func TestHandleHomeNotFound(t *testing.T) {
	srv := newTestEnv(t).server(t)

	resp, err := http.Get(srv.URL + "/nonexistent")
	if err != nil {
		t.Fatalf("GET /nonexistent: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "404") {
		t.Fatal("expected the error page")
	}
}
