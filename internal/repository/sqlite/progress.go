package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/msomdec/dagligsvensk/internal/domain"
)

// ProgressRepository implements domain.ProgressRepository using SQLite.
type ProgressRepository struct {
	db *sqlx.DB
}

// NewProgressRepository creates a new SQLite-backed ProgressRepository.
func NewProgressRepository(db *DB) *ProgressRepository {
	return &ProgressRepository{db: db.SqlDB}
}

type progressRow struct {
	UserID           string    `db:"user_id"`
	Date             string    `db:"date"`
	Completed        bool      `db:"completed"`
	CompletionsCount int       `db:"completions_count"`
	XPEarned         int       `db:"xp_earned"`
	StreakAfter      int       `db:"streak_after"`
	LastCompletionAt time.Time `db:"last_completion_at"`
}

const progressColumns = `user_id, date, completed, completions_count, xp_earned, streak_after, last_completion_at`

func (row progressRow) toDomain() domain.DailyProgress {
	return domain.DailyProgress{
		UserID:           row.UserID,
		Date:             row.Date,
		Completed:        row.Completed,
		CompletionsCount: row.CompletionsCount,
		XPEarned:         row.XPEarned,
		StreakAfter:      row.StreakAfter,
		LastCompletionAt: row.LastCompletionAt,
	}
}

func (r *ProgressRepository) ListSince(ctx context.Context, userID, since string) ([]domain.DailyProgress, error) {
	var rows []progressRow
	err := r.db.SelectContext(ctx, &rows,
		`SELECT `+progressColumns+` FROM daily_progress
		 WHERE user_id = ? AND date >= ?
		 ORDER BY date DESC`, userID, since)
	if err != nil {
		return nil, fmt.Errorf("list progress: %w", err)
	}

	records := make([]domain.DailyProgress, len(rows))
	for i, row := range rows {
		records[i] = row.toDomain()
	}
	return records, nil
}

func (r *ProgressRepository) GetByDate(ctx context.Context, userID, date string) (*domain.DailyProgress, error) {
	var row progressRow
	err := r.db.GetContext(ctx, &row,
		`SELECT `+progressColumns+` FROM daily_progress WHERE user_id = ? AND date = ?`, userID, date)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get progress: %w", err)
	}
	p := row.toDomain()
	return &p, nil
}

// RecordCompletion inserts the day's first completion or increments the
// existing record in one statement. The conflict branch never touches
// streak_after and only fires while the count is below the cap; when it
// does not fire the statement returns no row.
func (r *ProgressRepository) RecordCompletion(ctx context.Context, c domain.Completion) (*domain.DailyProgress, error) {
	at := c.At.UTC()

	p := domain.DailyProgress{UserID: c.UserID, Date: c.Date, LastCompletionAt: at}
	err := r.db.QueryRowxContext(ctx,
		`INSERT INTO daily_progress (user_id, date, completed, completions_count, xp_earned, streak_after, last_completion_at)
		 VALUES (?, ?, 1, 1, ?, ?, ?)
		 ON CONFLICT (user_id, date) DO UPDATE SET
		   completed = 1,
		   completions_count = daily_progress.completions_count + 1,
		   xp_earned = daily_progress.xp_earned + excluded.xp_earned,
		   last_completion_at = excluded.last_completion_at
		 WHERE daily_progress.completions_count < ?
		 RETURNING completed, completions_count, xp_earned, streak_after`,
		c.UserID, c.Date, c.XP, c.Streak, at, c.MaxDaily,
	).Scan(&p.Completed, &p.CompletionsCount, &p.XPEarned, &p.StreakAfter)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrDailyCapReached
		}
		return nil, fmt.Errorf("record completion: %w", err)
	}

	return &p, nil
}
