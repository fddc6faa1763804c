package domain

import "errors"

var (
	ErrInvalidCredentials = errors.New("Invalid email or password")
	ErrEmailTaken         = errors.New("Email is already registered")
	ErrAccountNotFound    = errors.New("No account found with this email address")
	ErrUserNotFound       = errors.New("User not found")
	ErrInvalidCode        = errors.New("Invalid verification code")
	ErrCodeExpired        = errors.New("Verification code has expired")
)
