package domain

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrWeakPassword       = errors.New("password must be at least 8 characters")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidInput       = errors.New("invalid input")
	ErrDailyCapReached    = errors.New("daily lesson limit reached")
	ErrSynthesis          = errors.New("speech synthesis failed")
	ErrNotConfigured      = errors.New("not configured")
)
