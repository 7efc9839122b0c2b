// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/lite-finance/backend/internal/domain/entity"
)

// CategoryRepository defines the persistence operations for categories.
// Every query is scoped to a single user; there is no cross-tenant read path.
type CategoryRepository interface {
	// Create persists a new category and fills in its generated ID.
	Create(ctx context.Context, category *entity.Category) error

	// FindByUser retrieves all categories of a user ordered by name
	// ascending. An empty result is not an error.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Category, error)

	// FindByIDAndUser retrieves a category by ID, constrained to the given
	// user. Returns domainerror.ErrCategoryNotFound when no such row exists
	// for that user.
	FindByIDAndUser(ctx context.Context, id int64, userID uuid.UUID) (*entity.Category, error)
}
