package view

import (
	"context"

	"github.com/a-h/templ"

	"github.com/msomdec/dagligsvensk/internal/domain"
)

const datastarScript = "https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0/bundles/datastar.js"

func layout(title string, user *domain.User, body templ.Component) templ.Component {
	return component(func(ctx context.Context, b *builder) {
		b.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		b.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		b.raw(`<title>`)
		b.text(title)
		b.raw(` · Dagligsvensk</title>`)
		b.raw(`<link rel="stylesheet" href="/static/app.css">`)
		b.raw(`<script type="module" src="` + datastarScript + `"></script>`)
		b.raw(`<script defer src="/static/app.js"></script>`)
		b.raw(`</head><body>`)
		nav(b, user)
		b.raw(`<main class="container">`)
		b.render(ctx, body)
		b.raw(`</main>`)
		b.raw(`<footer class="footer"><a href="/contact">Contact</a><a href="/terms">Terms</a><a href="/privacy">Privacy</a></footer>`)
		b.raw(`</body></html>`)
	})
}

func nav(b *builder, user *domain.User) {
	b.raw(`<nav class="nav"><a class="brand" href="/">Dagligsvensk</a><div class="nav-links">`)
	if user != nil {
		b.raw(`<a href="/app">Dashboard</a><a href="/app/lesson">Lesson</a><a href="/app/settings">Settings</a>`)
		b.raw(`<span class="nav-user">`)
		b.text(user.DisplayName)
		b.raw(`</span><button type="button" class="link" data-logout>Sign out</button>`)
	} else {
		b.raw(`<a href="/signin">Sign in</a><a class="button" href="/signup">Get started</a>`)
	}
	b.raw(`</div></nav>`)
}

// ErrorPage renders a full page for an HTTP error.
func ErrorPage(user *domain.User, status int, message string) templ.Component {
	return layout("Error", user, component(func(ctx context.Context, b *builder) {
		b.raw(`<section class="card center"><h1>`)
		b.int(status)
		b.raw(`</h1><p>`)
		b.text(message)
		b.raw(`</p><a class="button" href="/">Back to start</a></section>`)
	}))
}
