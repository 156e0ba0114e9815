package view

import (
	"context"
	"slices"

	"github.com/a-h/templ"

	"github.com/msomdec/dagligsvensk/internal/domain"
	"github.com/msomdec/dagligsvensk/internal/service"
)

var scenarioLabels = map[domain.Scenario]string{
	domain.ScenarioShopping: "Shopping",
	domain.ScenarioWork:     "At work",
	domain.ScenarioPhone:    "On the phone",
	domain.ScenarioDoctor:   "At the doctor",
	domain.ScenarioTravel:   "Travel",
	domain.ScenarioFood:     "Food and cafés",
	domain.ScenarioHousing:  "Housing",
	domain.ScenarioSurvival: "Survival basics",
}

var levelLabels = map[domain.Level]string{
	domain.LevelBeginner:     "Beginner",
	domain.LevelIntermediate: "Intermediate",
	domain.LevelAdvanced:     "Advanced",
}

// ScenarioLabel returns the display name of a scenario.
func ScenarioLabel(sc domain.Scenario) string {
	if label, ok := scenarioLabels[sc]; ok {
		return label
	}
	return string(sc)
}

// DashboardPage shows streak, XP and today's progress.
func DashboardPage(user *domain.User, progress service.ProgressSummary, next domain.Scenario) templ.Component {
	return layout("Dashboard", user, component(func(ctx context.Context, b *builder) {
		b.raw(`<section class="page-head"><h1>Hej, `)
		b.text(user.DisplayName)
		b.raw(`!</h1>`)
		if user.Goal != "" {
			b.raw(`<p class="muted">Your goal: `)
			b.text(user.Goal)
			b.raw(`</p>`)
		}
		b.raw(`</section><section class="grid stats">`)
		stat(b, "Current streak", progress.CurrentStreak, "days")
		stat(b, "XP, last 30 days", progress.TotalXP, "XP")
		b.raw(`<article class="card stat"><h3>Today</h3><p class="stat-value">`)
		b.int(progress.CompletedLessonsToday)
		b.raw(` / `)
		b.int(progress.MaxDailyLessons)
		b.raw(`</p><p class="muted">lessons</p></article></section>`)

		b.raw(`<section class="card"><h2>Next lesson: `)
		b.text(ScenarioLabel(next))
		b.raw(`</h2>`)
		if progress.CompletedToday {
			b.raw(`<p>You have reached today's limit. Come back tomorrow to keep your streak going.</p>`)
		} else {
			b.raw(`<a class="button" href="/app/lesson">Start lesson</a>`)
		}
		b.raw(`<h3>Your scenarios</h3><ul class="chips">`)
		for _, sc := range user.Scenarios {
			b.raw(`<li><a href="/app/lesson?scenario=`)
			b.text(string(sc))
			b.raw(`">`)
			b.text(ScenarioLabel(sc))
			b.raw(`</a></li>`)
		}
		b.raw(`</ul><a href="/app/settings">Change scenarios</a></section>`)
	}))
}

func stat(b *builder, title string, value int, unit string) {
	b.raw(`<article class="card stat"><h3>`)
	b.text(title)
	b.raw(`</h3><p class="stat-value">`)
	b.int(value)
	b.raw(`</p><p class="muted">`)
	b.text(unit)
	b.raw(`</p></article>`)
}

// LessonPage renders every step of a lesson; the browser script pages
// through them and the last step completes the lesson over datastar.
func LessonPage(user *domain.User, scenario domain.Scenario, steps []domain.LessonStep, progress service.ProgressSummary) templ.Component {
	return layout(ScenarioLabel(scenario), user, component(func(ctx context.Context, b *builder) {
		b.raw(`<section class="card lesson" data-lesson><header><h1>`)
		b.text(ScenarioLabel(scenario))
		b.raw(`</h1><p class="muted">Step <span data-step-index>1</span> of `)
		b.int(len(steps) + 1)
		b.raw(`</p></header>`)

		for i, step := range steps {
			lessonStep(b, i, step)
		}

		b.raw(`<div class="lesson-step" data-step="done" hidden><h2>Bra jobbat!</h2>`)
		if progress.CompletedToday {
			b.raw(`<p>You have already completed today's maximum of `)
			b.int(progress.MaxDailyLessons)
			b.raw(` lessons.</p>`)
		} else {
			b.raw(`<p>Finish the lesson to earn `)
			b.int(service.XPPerLesson)
			b.raw(` XP.</p><button type="button" data-on:click="@post('/app/lesson/complete')">Complete lesson</button>`)
		}
		b.render(ctx, lessonResultContainer(nil))
		b.raw(`</div>`)

		b.raw(`<nav class="lesson-nav"><button type="button" class="secondary" data-prev>Back</button><button type="button" data-next>Next</button></nav></section>`)
	}))
}

func lessonStep(b *builder, i int, step domain.LessonStep) {
	b.raw(`<div class="lesson-step" data-step="`)
	b.text(step.StepType())
	b.raw(`"`)
	if i > 0 {
		b.raw(` hidden`)
	}
	b.raw(`>`)

	switch s := step.(type) {
	case domain.IntroStep:
		b.raw(`<h2>`)
		b.text(s.Title)
		b.raw(`</h2><p>`)
		b.text(s.Text)
		b.raw(`</p>`)
	case domain.ListenStep:
		phraseStep(b, s.Title, s.Phrase, s.Translation, s.Explanation, false)
	case domain.PracticeStep:
		phraseStep(b, s.Title, s.Phrase, s.Translation, s.Explanation, true)
	case domain.QuizStep:
		b.raw(`<h2>`)
		b.text(s.Question)
		b.raw(`</h2>`)
		if s.AudioPhrase != "" {
			speakButton(b, s.AudioPhrase)
		}
		b.raw(`<div class="options">`)
		for j, opt := range s.Options {
			b.raw(`<button type="button" class="option" data-option data-correct="`)
			if j == s.CorrectIndex {
				b.raw(`true`)
			} else {
				b.raw(`false`)
			}
			b.raw(`">`)
			b.text(opt)
			b.raw(`</button>`)
		}
		b.raw(`</div><p class="quiz-feedback" role="status"></p>`)
	}

	b.raw(`</div>`)
}

func phraseStep(b *builder, title, phrase, translation, explanation string, practice bool) {
	b.raw(`<h2>`)
	b.text(title)
	b.raw(`</h2><p class="phrase" lang="sv">`)
	b.text(phrase)
	b.raw(`</p>`)
	speakButton(b, phrase)
	b.raw(`<p class="translation">`)
	b.text(translation)
	b.raw(`</p><p class="muted">`)
	b.text(explanation)
	b.raw(`</p>`)
	if practice {
		b.raw(`<p class="hint">Say it out loud, then play it again to compare.</p>`)
	}
}

func speakButton(b *builder, phrase string) {
	b.raw(`<button type="button" class="speak" data-speak="`)
	b.text(phrase)
	b.raw(`">▶ Listen</button>`)
}

func lessonResultContainer(inner func(b *builder)) templ.Component {
	return component(func(ctx context.Context, b *builder) {
		b.raw(`<div id="lesson-result">`)
		if inner != nil {
			inner(b)
		}
		b.raw(`</div>`)
	})
}

// LessonResult is patched into the lesson page after a completion.
func LessonResult(result service.LessonCompletion) templ.Component {
	return lessonResultContainer(func(b *builder) {
		b.raw(`<div class="result success"><p>+`)
		b.int(result.XPEarned)
		b.raw(` XP · streak `)
		b.int(result.Streak)
		b.raw(` · `)
		b.int(result.CompletionsCount)
		b.raw(` / `)
		b.int(result.MaxDailyLessons)
		b.raw(` today (`)
		b.int(result.TotalXPToday)
		b.raw(` XP)</p><a class="button" href="/app">Back to dashboard</a> <a class="button secondary" href="/app/lesson">Another lesson</a></div>`)
	})
}

// LessonNotice is patched into the lesson page when a completion is refused.
func LessonNotice(message string) templ.Component {
	return lessonResultContainer(func(b *builder) {
		b.raw(`<div class="result notice"><p>`)
		b.text(message)
		b.raw(`</p><a class="button" href="/app">Back to dashboard</a></div>`)
	})
}

// SettingsPage edits the learner profile through the JSON API.
func SettingsPage(user *domain.User) templ.Component {
	return layout("Settings", user, component(func(ctx context.Context, b *builder) {
		b.raw(`<section class="card narrow"><h1>Settings</h1>`)
		b.raw(`<form data-api-form data-action="/api/profile" data-method="PUT" data-success="Saved.">`)
		b.raw(`<label>Name<input type="text" name="displayName" maxlength="80" value="`)
		b.text(user.DisplayName)
		b.raw(`"></label><p class="field-error" data-field="displayName"></p>`)

		b.raw(`<label>Level<select name="level">`)
		for _, l := range domain.Levels {
			b.raw(`<option value="`)
			b.text(string(l))
			b.raw(`"`)
			if l == user.Level {
				b.raw(` selected`)
			}
			b.raw(`>`)
			b.text(levelLabels[l])
			b.raw(`</option>`)
		}
		b.raw(`</select></label><p class="field-error" data-field="level"></p>`)

		b.raw(`<label>Goal<textarea name="goal" rows="2" maxlength="200">`)
		b.text(user.Goal)
		b.raw(`</textarea></label><p class="field-error" data-field="goal"></p>`)

		b.raw(`<fieldset data-array="scenarios"><legend>Scenarios</legend>`)
		if limit := user.Plan.MaxScenarios(); limit > 0 {
			b.raw(`<p class="hint">Your free plan includes `)
			b.int(limit)
			b.raw(` scenarios.</p>`)
		}
		for _, sc := range domain.Scenarios {
			b.raw(`<label class="check"><input type="checkbox" name="scenarios" value="`)
			b.text(string(sc))
			b.raw(`"`)
			if slices.Contains(user.Scenarios, sc) {
				b.raw(` checked`)
			}
			b.raw(`> `)
			b.text(ScenarioLabel(sc))
			b.raw(`</label>`)
		}
		b.raw(`</fieldset><p class="field-error" data-field="scenarios"></p>`)

		b.raw(`<p class="form-error" role="alert"></p><p class="form-success" role="status"></p>`)
		b.raw(`<button type="submit">Save</button></form>`)
		b.raw(`<p class="muted">Plan: `)
		b.text(string(user.Plan))
		b.raw(`</p></section>`)
	}))
}
