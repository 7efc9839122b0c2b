// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// CategoryKind represents the kind of category (income or expense).
type CategoryKind string

const (
	CategoryKindReceita CategoryKind = "RECEITA"
	CategoryKindDespesa CategoryKind = "DESPESA"
)

// Category represents a transaction category owned by a single user.
// Duplicate names per user are allowed.
type Category struct {
	ID        int64
	UserID    uuid.UUID
	Name      string
	Kind      CategoryKind
	CreatedAt time.Time
}

// NewCategory creates a new Category entity. The ID is assigned by the store.
func NewCategory(userID uuid.UUID, name string, kind CategoryKind) *Category {
	return &Category{
		UserID:    userID,
		Name:      name,
		Kind:      kind,
		CreatedAt: time.Now().UTC(),
	}
}

// IsValidCategoryKind reports whether the kind is one of the two recognized
// enumerators.
func IsValidCategoryKind(kind CategoryKind) bool {
	return kind == CategoryKindReceita || kind == CategoryKindDespesa
}
