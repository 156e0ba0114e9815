package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/msomdec/dagligsvensk/internal/domain"
)

// UserRepository implements domain.UserRepository using SQLite.
type UserRepository struct {
	db *sqlx.DB
}

// NewUserRepository creates a new SQLite-backed UserRepository.
func NewUserRepository(db *DB) *UserRepository {
	return &UserRepository{db: db.SqlDB}
}

type userRow struct {
	ID           string    `db:"id"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	DisplayName  string    `db:"display_name"`
	Level        string    `db:"level"`
	Goal         string    `db:"goal"`
	Scenarios    string    `db:"scenarios"`
	Plan         string    `db:"plan"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

const userColumns = `id, email, password_hash, display_name, level, goal, scenarios, plan, created_at, updated_at`

func (row userRow) toDomain() (*domain.User, error) {
	level, err := domain.ParseLevel(row.Level)
	if err != nil {
		return nil, err
	}
	plan, err := domain.ParsePlan(row.Plan)
	if err != nil {
		return nil, err
	}
	scenarios, err := decodeScenarios(row.Scenarios)
	if err != nil {
		return nil, err
	}
	return &domain.User{
		ID:           row.ID,
		Email:        row.Email,
		PasswordHash: row.PasswordHash,
		DisplayName:  row.DisplayName,
		Level:        level,
		Goal:         row.Goal,
		Scenarios:    scenarios,
		Plan:         plan,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}, nil
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	scenarios, err := encodeScenarios(user.Scenarios)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO users (id, email, password_hash, display_name, level, goal, scenarios, plan, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		user.ID, user.Email, user.PasswordHash, user.DisplayName,
		string(user.Level), user.Goal, scenarios, string(user.Plan), now, now,
	)
	if err != nil {
		if isUniqueConstraintError(err) {
			return domain.ErrDuplicateEmail
		}
		return fmt.Errorf("insert user: %w", err)
	}

	user.CreatedAt = now
	user.UpdatedAt = now
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return r.getOne(ctx, "id", id)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getOne(ctx, "email", email)
}

func (r *UserRepository) getOne(ctx context.Context, column, value string) (*domain.User, error) {
	var row userRow
	// column is one of two literals chosen above, never user input.
	err := r.db.GetContext(ctx, &row, `SELECT `+userColumns+` FROM users WHERE `+column+` = ?`, value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("query user by %s: %w", column, err)
	}
	user, err := row.toDomain()
	if err != nil {
		return nil, fmt.Errorf("decode user %s: %w", row.ID, err)
	}
	return user, nil
}

// UpdateProfile writes the non-nil fields of changes.
func (r *UserRepository) UpdateProfile(ctx context.Context, id string, changes domain.ProfileChanges) error {
	var level, scenarios any
	if changes.Level != nil {
		level = string(*changes.Level)
	}
	if changes.Scenarios != nil {
		encoded, err := encodeScenarios(changes.Scenarios)
		if err != nil {
			return err
		}
		scenarios = encoded
	}

	result, err := r.db.ExecContext(ctx,
		`UPDATE users SET
		 display_name = COALESCE(?, display_name),
		 level = COALESCE(?, level),
		 goal = COALESCE(?, goal),
		 scenarios = COALESCE(?, scenarios),
		 updated_at = ?
		 WHERE id = ?`,
		changes.DisplayName, level, changes.Goal, scenarios, time.Now().UTC(), id,
	)
	if err != nil {
		return fmt.Errorf("update user profile: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func encodeScenarios(scenarios []domain.Scenario) (string, error) {
	if scenarios == nil {
		scenarios = []domain.Scenario{}
	}
	b, err := json.Marshal(scenarios)
	if err != nil {
		return "", fmt.Errorf("encode scenarios: %w", err)
	}
	return string(b), nil
}

func decodeScenarios(raw string) ([]domain.Scenario, error) {
	var tags []string
	if err := json.Unmarshal([]byte(raw), &tags); err != nil {
		return nil, fmt.Errorf("decode scenarios: %w", err)
	}
	scenarios := make([]domain.Scenario, 0, len(tags))
	for _, tag := range tags {
		s, err := domain.ParseScenario(tag)
		if err != nil {
			return nil, err
		}
		scenarios = append(scenarios, s)
	}
	return scenarios, nil
}
