package service

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/msomdec/dagligsvensk/internal/domain"
)

const maxContactMessageLength = 5000

// ContactService stores messages from the contact form.
type ContactService struct {
	contacts domain.ContactRepository
}

func NewContactService(contacts domain.ContactRepository) *ContactService {
	return &ContactService{contacts: contacts}
}

func (s *ContactService) Submit(ctx context.Context, email, message string) (*domain.ContactMessage, error) {
	email = NormalizeEmail(email)
	message = strings.TrimSpace(message)
	if email == "" || message == "" {
		return nil, fmt.Errorf("%w: email and message are required", domain.ErrInvalidInput)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("%w: email address is not valid", domain.ErrInvalidInput)
	}
	if utf8.RuneCountInString(message) > maxContactMessageLength {
		return nil, fmt.Errorf("%w: message must be at most %d characters", domain.ErrInvalidInput, maxContactMessageLength)
	}

	msg := &domain.ContactMessage{Email: email, Message: message}
	if err := s.contacts.Create(ctx, msg); err != nil {
		return nil, fmt.Errorf("store contact message: %w", err)
	}
	return msg, nil
}
