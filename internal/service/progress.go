package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/msomdec/dagligsvensk/internal/domain"
)

const (
	MaxDailyLessons    = 20
	XPPerLesson        = 10
	ProgressWindowDays = 30
)

// ProgressSummary is the read view of a learner's recent activity.
type ProgressSummary struct {
	Records               []domain.DailyProgress
	CurrentStreak         int
	TotalXP               int
	CompletedLessonsToday int
	// CompletedToday reports whether the daily cap has been reached.
	CompletedToday  bool
	MaxDailyLessons int
}

// LessonCompletion is the outcome of recording one finished lesson.
type LessonCompletion struct {
	Streak           int
	XPEarned         int
	CompletionsCount int
	MaxDailyLessons  int
	TotalXPToday     int
}

// CompletionRecorder is notified after every successful completion.
type CompletionRecorder interface {
	LessonCompleted()
}

// ProgressService maintains the per-day lesson ledger, streaks and XP.
// Days are UTC calendar dates.
type ProgressService struct {
	progress domain.ProgressRepository
	now      func() time.Time
	recorder CompletionRecorder
}

// NewProgressService creates a ProgressService. A nil now uses time.Now.
func NewProgressService(progress domain.ProgressRepository, now func() time.Time) *ProgressService {
	if now == nil {
		now = time.Now
	}
	return &ProgressService{progress: progress, now: now}
}

// WithRecorder sets the completion recorder.
func (s *ProgressService) WithRecorder(r CompletionRecorder) *ProgressService {
	s.recorder = r
	return s
}

func (s *ProgressService) days() (today, yesterday time.Time) {
	today = s.now().UTC()
	return today, today.AddDate(0, 0, -1)
}

// GetProgress summarizes the last ProgressWindowDays days.
func (s *ProgressService) GetProgress(ctx context.Context, userID string) (ProgressSummary, error) {
	today, yesterday := s.days()
	todayKey := today.Format(domain.DateLayout)
	yesterdayKey := yesterday.Format(domain.DateLayout)
	since := today.AddDate(0, 0, -ProgressWindowDays).Format(domain.DateLayout)

	records, err := s.progress.ListSince(ctx, userID, since)
	if err != nil {
		return ProgressSummary{}, fmt.Errorf("list progress: %w", err)
	}

	summary := ProgressSummary{
		Records:         records,
		MaxDailyLessons: MaxDailyLessons,
	}

	var todayRec, yesterdayRec *domain.DailyProgress
	for i := range records {
		summary.TotalXP += records[i].XPEarned
		switch records[i].Date {
		case todayKey:
			todayRec = &records[i]
		case yesterdayKey:
			yesterdayRec = &records[i]
		}
	}

	switch {
	case todayRec != nil && todayRec.Completed:
		summary.CurrentStreak = todayRec.StreakAfter
	case yesterdayRec != nil && yesterdayRec.Completed:
		summary.CurrentStreak = yesterdayRec.StreakAfter
	}

	if todayRec != nil {
		summary.CompletedLessonsToday = todayRec.CompletionsCount
	}
	summary.CompletedToday = summary.CompletedLessonsToday >= MaxDailyLessons

	return summary, nil
}

// CompleteLesson records one finished lesson for today. The streak is
// derived from yesterday only when this is the day's first completion;
// later completions keep the stored value.
func (s *ProgressService) CompleteLesson(ctx context.Context, userID string) (LessonCompletion, error) {
	today, yesterday := s.days()
	todayKey := today.Format(domain.DateLayout)

	existing, err := s.progress.GetByDate(ctx, userID, todayKey)
	switch {
	case err == nil:
		if existing.CompletionsCount >= MaxDailyLessons {
			return LessonCompletion{}, domain.ErrDailyCapReached
		}
	case errors.Is(err, domain.ErrNotFound):
		existing = nil
	default:
		return LessonCompletion{}, fmt.Errorf("get today's progress: %w", err)
	}

	streak := 1
	if existing != nil {
		streak = existing.StreakAfter
	} else {
		prev, err := s.progress.GetByDate(ctx, userID, yesterday.Format(domain.DateLayout))
		switch {
		case err == nil:
			if prev.Completed {
				streak = prev.StreakAfter + 1
			}
		case errors.Is(err, domain.ErrNotFound):
		default:
			return LessonCompletion{}, fmt.Errorf("get yesterday's progress: %w", err)
		}
	}

	rec, err := s.progress.RecordCompletion(ctx, domain.Completion{
		UserID:   userID,
		Date:     todayKey,
		Streak:   streak,
		XP:       XPPerLesson,
		MaxDaily: MaxDailyLessons,
		At:       s.now(),
	})
	if err != nil {
		if errors.Is(err, domain.ErrDailyCapReached) {
			return LessonCompletion{}, err
		}
		return LessonCompletion{}, fmt.Errorf("record completion: %w", err)
	}

	if s.recorder != nil {
		s.recorder.LessonCompleted()
	}

	return LessonCompletion{
		Streak:           rec.StreakAfter,
		XPEarned:         XPPerLesson,
		CompletionsCount: rec.CompletionsCount,
		MaxDailyLessons:  MaxDailyLessons,
		TotalXPToday:     rec.XPEarned,
	}, nil
}
