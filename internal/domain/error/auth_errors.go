package error

import "errors"

// Authentication errors.
var (
	// ErrMissingToken is returned when no bearer credential is provided.
	ErrMissingToken = errors.New("missing authentication token")

	// ErrInvalidToken is returned when the bearer credential fails
	// validation.
	ErrInvalidToken = errors.New("invalid or expired token")
)

// Authentication error codes.
const (
	ErrCodeMissingToken = "AUTH-010001"
	ErrCodeInvalidToken = "AUTH-010002"
	ErrCodeRateLimited  = "AUTH-010003"
)
