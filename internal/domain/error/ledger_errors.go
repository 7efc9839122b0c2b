// Package error defines domain-specific errors for the Lite Finance API.
package error

// ErrorKind classifies a failure according to the error taxonomy: validation
// failures are client-attributable and detected before any store access,
// authentication failures reject the request before business logic runs,
// persistence failures propagate the store's rejection without retry, and
// integrity violations flag data that crosses a tenant boundary.
type ErrorKind string

const (
	KindValidation     ErrorKind = "validation"
	KindAuthentication ErrorKind = "authentication"
	KindPersistence    ErrorKind = "persistence"
	KindIntegrity      ErrorKind = "integrity"
)

// LedgerError represents a classified error with code and message.
type LedgerError struct {
	Kind    ErrorKind
	Code    string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *LedgerError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *LedgerError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a LedgerError for malformed or out-of-range
// input.
func NewValidationError(code, message string, err error) *LedgerError {
	return &LedgerError{Kind: KindValidation, Code: code, Message: message, Err: err}
}

// NewAuthenticationError creates a LedgerError for a missing or invalid
// caller identity.
func NewAuthenticationError(code, message string, err error) *LedgerError {
	return &LedgerError{Kind: KindAuthentication, Code: code, Message: message, Err: err}
}

// NewPersistenceError creates a LedgerError for an operation the store
// rejected. The store's message is carried along; the operation is never
// retried.
func NewPersistenceError(code, message string, err error) *LedgerError {
	return &LedgerError{Kind: KindPersistence, Code: code, Message: message, Err: err}
}

// NewIntegrityViolation creates a LedgerError for a fetched row that
// references an entity outside the caller's tenant boundary. Callers must
// log it and report a generic server error without leaking cross-tenant
// details.
func NewIntegrityViolation(code, message string, err error) *LedgerError {
	return &LedgerError{Kind: KindIntegrity, Code: code, Message: message, Err: err}
}
