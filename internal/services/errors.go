package services

import "errors"

// Common service errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrNotFound           = errors.New("record not found")
	ErrInvalidFile        = errors.New("file type or size not allowed")
)
