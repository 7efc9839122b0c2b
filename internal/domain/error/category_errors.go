package error

import "errors"

// Category domain errors.
var (
	// ErrCategoryNameRequired is returned when the category name is empty.
	ErrCategoryNameRequired = errors.New("category name is required")

	// ErrInvalidCategoryKind is returned when the category kind is not one of
	// the recognized enumerators.
	ErrInvalidCategoryKind = errors.New("invalid category kind")

	// ErrCategoryNotFound is returned when a category does not exist or does
	// not belong to the caller.
	ErrCategoryNotFound = errors.New("category not found")
)

// Category error codes. Format: CAT-XXYYYY where XX is the error class
// (01 validation, 02 persistence, 03 integrity).
const (
	ErrCodeCategoryNameRequired = "CAT-010001"
	ErrCodeInvalidCategoryKind  = "CAT-010002"
	ErrCodeCategoryNotFound     = "CAT-010003"
	ErrCodeCategoryStore        = "CAT-020001"
)
