package error

import "errors"

// Account domain errors.
var (
	// ErrAccountNameRequired is returned when the account name is empty.
	ErrAccountNameRequired = errors.New("account name is required")
)

// Account error codes. Format: ACC-XXYYYY where XX is the error class
// (01 validation, 02 persistence).
const (
	ErrCodeAccountNameRequired = "ACC-010001"
	ErrCodeAccountStore        = "ACC-020001"
)
