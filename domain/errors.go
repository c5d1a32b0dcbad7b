package domain

import "errors"

// Authentication errors
var (
	ErrUserNotFound          = errors.New("user not found")
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrUserAlreadyExists     = errors.New("user already exists")
	ErrEmailNotConfirmed     = errors.New("email not confirmed")
	ErrEmailAlreadyConfirmed = errors.New("email already confirmed")
)

// Token errors
var (
	ErrTokenInvalid         = errors.New("invalid token")
	ErrTokenExpired         = errors.New("token has expired")
	ErrTokenMalformed       = errors.New("malformed token")
	ErrRefreshTokenMismatch = errors.New("refresh token does not match stored token")
)

// Contact errors
var (
	ErrContactNotFound = errors.New("contact not found")
)

// Throttling errors
var (
	ErrRateLimited = errors.New("too many requests")
)
