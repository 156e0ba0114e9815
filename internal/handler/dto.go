package handler

import (
	"time"

	"github.com/msomdec/dagligsvensk/internal/domain"
	"github.com/msomdec/dagligsvensk/internal/service"
)

// UserSummaryDTO is returned by signup and signin.
type UserSummaryDTO struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
}

func toUserSummaryDTO(u *domain.User) UserSummaryDTO {
	return UserSummaryDTO{ID: u.ID, Email: u.Email, DisplayName: u.DisplayName}
}

// ProfileDTO is the editable part of a user.
type ProfileDTO struct {
	DisplayName string            `json:"displayName"`
	Level       domain.Level      `json:"level"`
	Goal        string            `json:"goal"`
	Scenarios   []domain.Scenario `json:"scenarios"`
	Plan        domain.Plan       `json:"plan"`
}

func toProfileDTO(u *domain.User) ProfileDTO {
	scenarios := u.Scenarios
	if scenarios == nil {
		scenarios = []domain.Scenario{}
	}
	return ProfileDTO{
		DisplayName: u.DisplayName,
		Level:       u.Level,
		Goal:        u.Goal,
		Scenarios:   scenarios,
		Plan:        u.Plan,
	}
}

// MeDTO is the response of GET /api/auth/me.
type MeDTO struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	ProfileDTO
}

func toMeDTO(u *domain.User) MeDTO {
	return MeDTO{ID: u.ID, Email: u.Email, ProfileDTO: toProfileDTO(u)}
}

// DailyProgressDTO is one day of the progress ledger.
type DailyProgressDTO struct {
	Date             string `json:"date"`
	Completed        bool   `json:"completed"`
	CompletionsCount int    `json:"completionsCount"`
	XPEarned         int    `json:"xpEarned"`
	StreakAfter      int    `json:"streakAfter"`
	LastCompletionAt string `json:"lastCompletionAt"`
}

// ProgressDTO is the response of GET /api/progress.
type ProgressDTO struct {
	Progress              []DailyProgressDTO `json:"progress"`
	CurrentStreak         int                `json:"currentStreak"`
	TotalXP               int                `json:"totalXP"`
	CompletedToday        bool               `json:"completedToday"`
	CompletedLessonsToday int                `json:"completedLessonsToday"`
	MaxDailyLessons       int                `json:"maxDailyLessons"`
}

func toProgressDTO(s service.ProgressSummary) ProgressDTO {
	days := make([]DailyProgressDTO, len(s.Records))
	for i, p := range s.Records {
		days[i] = DailyProgressDTO{
			Date:             p.Date,
			Completed:        p.Completed,
			CompletionsCount: p.CompletionsCount,
			XPEarned:         p.XPEarned,
			StreakAfter:      p.StreakAfter,
			LastCompletionAt: p.LastCompletionAt.UTC().Format(time.RFC3339),
		}
	}
	return ProgressDTO{
		Progress:              days,
		CurrentStreak:         s.CurrentStreak,
		TotalXP:               s.TotalXP,
		CompletedToday:        s.CompletedToday,
		CompletedLessonsToday: s.CompletedLessonsToday,
		MaxDailyLessons:       s.MaxDailyLessons,
	}
}

// CompletionDTO is the response of POST /api/progress.
type CompletionDTO struct {
	Success          bool `json:"success"`
	Streak           int  `json:"streak"`
	XPEarned         int  `json:"xpEarned"`
	CompletionsCount int  `json:"completionsCount"`
	MaxDailyLessons  int  `json:"maxDailyLessons"`
	TotalXPToday     int  `json:"totalXpToday"`
}

func toCompletionDTO(c service.LessonCompletion) CompletionDTO {
	return CompletionDTO{
		Success:          true,
		Streak:           c.Streak,
		XPEarned:         c.XPEarned,
		CompletionsCount: c.CompletionsCount,
		MaxDailyLessons:  c.MaxDailyLessons,
		TotalXPToday:     c.TotalXPToday,
	}
}

// LessonDTO is the response of GET /api/lessons/{scenario}.
type LessonDTO struct {
	Scenario domain.Scenario     `json:"scenario"`
	Steps    []domain.LessonStep `json:"steps"`
}
