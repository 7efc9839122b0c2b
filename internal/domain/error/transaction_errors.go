package error

import "errors"

// Transaction domain errors.
var (
	// ErrInvalidTransactionAmount is returned when the amount is not a finite
	// number.
	ErrInvalidTransactionAmount = errors.New("invalid transaction amount")

	// ErrInvalidTransactionDate is returned when the date does not parse as a
	// calendar date.
	ErrInvalidTransactionDate = errors.New("invalid transaction date")

	// ErrInvalidTransactionStatus is returned when the status is not an
	// accepted creation status.
	ErrInvalidTransactionStatus = errors.New("invalid transaction status")

	// ErrTransactionCategoryRequired is returned when no category reference
	// is provided.
	ErrTransactionCategoryRequired = errors.New("transaction category is required")

	// ErrAccountNotFound is returned when an account does not exist or does
	// not belong to the caller.
	ErrAccountNotFound = errors.New("account not found")

	// ErrInvalidMonthFilter is returned when a month filter does not match
	// the YYYY-MM format.
	ErrInvalidMonthFilter = errors.New("invalid month filter")

	// ErrMissingTransactionCategory is returned when a fetched transaction
	// lacks its required category reference.
	ErrMissingTransactionCategory = errors.New("transaction references a missing category")

	// ErrCrossTenantReference is returned when a fetched row references an
	// entity owned by a different user.
	ErrCrossTenantReference = errors.New("row references an entity of another user")
)

// Transaction error codes. Format: TXN-XXYYYY where XX is the error class
// (01 validation, 02 persistence, 03 integrity).
const (
	ErrCodeInvalidTransactionAmount = "TXN-010001"
	ErrCodeInvalidTransactionDate   = "TXN-010002"
	ErrCodeInvalidTransactionStatus = "TXN-010003"
	ErrCodeTxnCategoryRequired      = "TXN-010004"
	ErrCodeTxnCategoryNotFound      = "TXN-010005"
	ErrCodeTxnAccountNotFound       = "TXN-010006"
	ErrCodeInvalidMonthFilter       = "TXN-010007"
	ErrCodeInvalidCategoryFilter    = "TXN-010008"
	ErrCodeInvalidAccountFilter     = "TXN-010009"
	ErrCodeTransactionStore         = "TXN-020001"
	ErrCodeMissingTxnCategory       = "TXN-030001"
	ErrCodeCrossTenantReference     = "TXN-030002"
)
