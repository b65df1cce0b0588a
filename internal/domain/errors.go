package domain

import "errors"

var (
	ErrNotFound             = errors.New("not found")
	ErrUnauthorized         = errors.New("unauthorized")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrInvalidPlan          = errors.New("invalid plan")
	ErrAssistantUnavailable = errors.New("assistant unavailable")
)
