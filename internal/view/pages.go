package view

import (
	"context"

	"github.com/a-h/templ"

	"github.com/msomdec/dagligsvensk/internal/domain"
)

// HomePage is the public landing page.
func HomePage(user *domain.User) templ.Component {
	return layout("Learn everyday Swedish", user, component(func(ctx context.Context, b *builder) {
		b.raw(`<section class="hero"><h1>Swedish for real life, five minutes a day</h1>`)
		b.raw(`<p>Short scripted lessons for the situations you actually meet: the shop, the office, the bus and the landlord. Listen to native audio, answer quick quizzes and keep your streak alive.</p>`)
		if user != nil {
			b.raw(`<a class="button" href="/app">Continue learning</a>`)
		} else {
			b.raw(`<a class="button" href="/signup">Start for free</a> <a class="button secondary" href="/signin">I already have an account</a>`)
		}
		b.raw(`</section><section class="grid">`)
		feature(b, "Real scenarios", "Pick the situations that matter to you. Free accounts follow two scenarios, Pro unlocks all of them.")
		feature(b, "Hear it spoken", "Every phrase can be played with natural Swedish speech.")
		feature(b, "Daily streaks", "Earn XP for each lesson, up to twenty a day, and build a streak day by day.")
		b.raw(`</section>`)
	}))
}

func feature(b *builder, title, body string) {
	b.raw(`<article class="card"><h3>`)
	b.text(title)
	b.raw(`</h3><p>`)
	b.text(body)
	b.raw(`</p></article>`)
}

// SignInPage renders the login form. The browser script posts it to the API.
func SignInPage() templ.Component {
	return layout("Sign in", nil, component(func(ctx context.Context, b *builder) {
		b.raw(`<section class="card narrow"><h1>Sign in</h1>`)
		b.raw(`<form data-api-form data-action="/api/auth/signin" data-method="POST" data-redirect="/app">`)
		b.raw(`<label>Email<input type="email" name="email" autocomplete="email" required></label>`)
		b.raw(`<label>Password<input type="password" name="password" autocomplete="current-password" required></label>`)
		b.raw(`<p class="form-error" role="alert"></p>`)
		b.raw(`<button type="submit">Sign in</button></form>`)
		b.raw(`<p>New here? <a href="/signup">Create an account</a></p></section>`)
	}))
}

// SignUpPage renders the registration form.
func SignUpPage() templ.Component {
	return layout("Create account", nil, component(func(ctx context.Context, b *builder) {
		b.raw(`<section class="card narrow"><h1>Create your account</h1>`)
		b.raw(`<form data-api-form data-action="/api/auth/signup" data-method="POST" data-redirect="/app">`)
		b.raw(`<label>Name<input type="text" name="displayName" maxlength="80" autocomplete="name"></label>`)
		b.raw(`<label>Email<input type="email" name="email" autocomplete="email" required></label>`)
		b.raw(`<label>Password<input type="password" name="password" minlength="8" autocomplete="new-password" required></label>`)
		b.raw(`<p class="hint">At least 8 characters.</p>`)
		b.raw(`<p class="form-error" role="alert"></p>`)
		b.raw(`<button type="submit">Create account</button></form>`)
		b.raw(`<p>Already registered? <a href="/signin">Sign in</a></p></section>`)
	}))
}

// ContactPage renders the contact form, prefilled for signed-in users.
func ContactPage(user *domain.User) templ.Component {
	return layout("Contact", user, component(func(ctx context.Context, b *builder) {
		email := ""
		if user != nil {
			email = user.Email
		}
		b.raw(`<section class="card narrow"><h1>Contact us</h1>`)
		b.raw(`<form data-api-form data-action="/api/contact" data-method="POST" data-success="Thanks! We will get back to you soon.">`)
		b.raw(`<label>Email<input type="email" name="email" required value="`)
		b.text(email)
		b.raw(`"></label>`)
		b.raw(`<label>Message<textarea name="message" rows="6" maxlength="5000" required></textarea></label>`)
		b.raw(`<p class="form-error" role="alert"></p><p class="form-success" role="status"></p>`)
		b.raw(`<button type="submit">Send</button></form></section>`)
	}))
}

// TermsPage renders the terms of service.
func TermsPage(user *domain.User) templ.Component {
	return layout("Terms", user, component(func(ctx context.Context, b *builder) {
		b.raw(`<section class="card prose"><h1>Terms of service</h1>`)
		b.raw(`<p>Dagligsvensk is provided as is for personal language practice. Lesson content is for educational purposes and may contain simplifications.</p>`)
		b.raw(`<p>You are responsible for keeping your password safe. Accounts used to abuse the service may be suspended.</p>`)
		b.raw(`<p>Paid plans are not yet available. When they are, pricing and cancellation terms will be published here before any charge.</p>`)
		b.raw(`</section>`)
	}))
}

// PrivacyPage renders the privacy notice.
func PrivacyPage(user *domain.User) templ.Component {
	return layout("Privacy", user, component(func(ctx context.Context, b *builder) {
		b.raw(`<section class="card prose"><h1>Privacy</h1>`)
		b.raw(`<p>We store your email address, a salted hash of your password, your profile choices and your daily lesson progress. Nothing is sold or shared with advertisers.</p>`)
		b.raw(`<p>Phrases you play are sent to a speech provider to generate audio. The audio may be cached on our servers; your identity is not attached to it.</p>`)
		b.raw(`<p>A single session cookie keeps you signed in for up to seven days. Use the contact form to request deletion of your data.</p>`)
		b.raw(`</section>`)
	}))
}
