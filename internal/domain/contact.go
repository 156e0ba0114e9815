package domain

import (
	"context"
	"time"
)

// ContactMessage is a free-form message submitted through the contact form.
type ContactMessage struct {
	ID        int64
	Email     string
	Message   string
	CreatedAt time.Time
}

type ContactRepository interface {
	Create(ctx context.Context, msg *ContactMessage) error
}
