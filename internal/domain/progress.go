package domain

import (
	"context"
	"time"
)

// DateLayout is the calendar-day key format used for daily progress.
const DateLayout = "2006-01-02"

// DailyProgress is one user's lesson activity for one calendar day.
// There is at most one record per (UserID, Date).
type DailyProgress struct {
	UserID           string
	Date             string
	Completed        bool
	CompletionsCount int
	XPEarned         int
	// StreakAfter is fixed by the first completion of the day.
	StreakAfter      int
	LastCompletionAt time.Time
}

// Completion describes a single lesson completion to record.
type Completion struct {
	UserID string
	Date   string
	// Streak is stored only when this creates the day's record.
	Streak   int
	XP       int
	MaxDaily int
	At       time.Time
}

// ProgressRepository persists daily progress records.
type ProgressRepository interface {
	// ListSince returns records dated on or after since, newest first.
	ListSince(ctx context.Context, userID, since string) ([]DailyProgress, error)
	GetByDate(ctx context.Context, userID, date string) (*DailyProgress, error)
	// RecordCompletion atomically creates or increments the day's record.
	// It returns ErrDailyCapReached, leaving the record untouched, when the
	// count has already reached c.MaxDaily.
	RecordCompletion(ctx context.Context, c Completion) (*DailyProgress, error)
}
