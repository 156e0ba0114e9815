package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/msomdec/dagligsvensk/internal/domain"
)

// ContactRepository stores contact form submissions.
type ContactRepository struct {
	db *sqlx.DB
}

func NewContactRepository(db *DB) *ContactRepository {
	return &ContactRepository{db: db.SqlDB}
}

func (r *ContactRepository) Create(ctx context.Context, msg *domain.ContactMessage) error {
	now := time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		"INSERT INTO contact_messages (email, message, created_at) VALUES (?, ?, ?)",
		msg.Email, msg.Message, now,
	)
	if err != nil {
		return fmt.Errorf("insert contact message: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}

	msg.ID = id
	msg.CreatedAt = now
	return nil
}
