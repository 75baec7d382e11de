package domain

import "errors"

// Webhook pipeline errors
var (
	ErrTenantNotFound   = errors.New("tenant not found")
	ErrMissingBody      = errors.New("message body is missing")
	ErrMissingSender    = errors.New("sender identity is missing")
	ErrPropertyNotFound = errors.New("property not found")
)

// Reply generation errors
var (
	ErrCompletionFailed    = errors.New("completion request failed")
	ErrCompletionMalformed = errors.New("completion is not valid JSON")
)

// Landlord account errors
var (
	ErrLandlordNotFound      = errors.New("landlord not found")
	ErrLandlordAlreadyExists = errors.New("landlord already exists")
	ErrInvalidCredentials    = errors.New("invalid credentials")
)

// Password reset errors
var (
	ErrResetTokenNotFound = errors.New("reset token not found")
	ErrResetTokenExpired  = errors.New("reset token has expired")
	ErrResetTokenUsed     = errors.New("reset token already used")
)

// Session errors
var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExpired  = errors.New("session has expired")
)
