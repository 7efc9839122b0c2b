// Package category contains category-related use cases.
package category

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/lite-finance/backend/internal/application/adapter"
	"github.com/lite-finance/backend/internal/domain/entity"
)

// ListCategoriesInput represents the input for listing categories.
type ListCategoriesInput struct {
	UserID uuid.UUID
}

// CategoryOutput represents a single category in the output.
type CategoryOutput struct {
	ID        int64
	Name      string
	Kind      entity.CategoryKind
	CreatedAt time.Time
}

// ListCategoriesOutput represents the output of listing categories.
type ListCategoriesOutput struct {
	Categories []*CategoryOutput
}

// ListCategoriesUseCase handles listing categories logic.
type ListCategoriesUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewListCategoriesUseCase creates a new ListCategoriesUseCase instance.
func NewListCategoriesUseCase(categoryRepo adapter.CategoryRepository) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute returns all categories of the user ordered by name ascending.
// No rows is an empty listing, never an error.
func (uc *ListCategoriesUseCase) Execute(ctx context.Context, input ListCategoriesInput) (*ListCategoriesOutput, error) {
	categories, err := uc.categoryRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	output := &ListCategoriesOutput{
		Categories: make([]*CategoryOutput, len(categories)),
	}
	for i, cat := range categories {
		output.Categories[i] = &CategoryOutput{
			ID:        cat.ID,
			Name:      cat.Name,
			Kind:      cat.Kind,
			CreatedAt: cat.CreatedAt,
		}
	}

	return output, nil
}
