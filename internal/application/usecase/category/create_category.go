package category

import (
	"context"

	"github.com/google/uuid"

	"github.com/lite-finance/backend/internal/application/adapter"
	"github.com/lite-finance/backend/internal/domain/entity"
	domainerror "github.com/lite-finance/backend/internal/domain/error"
)

// CreateCategoryInput represents the input for category creation. The user id
// comes from the authenticated caller, never from the request body.
type CreateCategoryInput struct {
	UserID uuid.UUID
	Name   string
	Kind   entity.CategoryKind
}

// CreateCategoryOutput represents the output of category creation.
type CreateCategoryOutput struct {
	Category *entity.Category
}

// CreateCategoryUseCase handles category creation logic.
type CreateCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewCreateCategoryUseCase creates a new CreateCategoryUseCase instance.
func NewCreateCategoryUseCase(categoryRepo adapter.CategoryRepository) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute performs the category creation. All validation happens before the
// store is touched.
func (uc *CreateCategoryUseCase) Execute(ctx context.Context, input CreateCategoryInput) (*CreateCategoryOutput, error) {
	if input.Name == "" {
		return nil, domainerror.NewValidationError(
			domainerror.ErrCodeCategoryNameRequired,
			"category name must not be empty",
			domainerror.ErrCategoryNameRequired,
		)
	}

	if !entity.IsValidCategoryKind(input.Kind) {
		return nil, domainerror.NewValidationError(
			domainerror.ErrCodeInvalidCategoryKind,
			"category kind must be 'RECEITA' or 'DESPESA'",
			domainerror.ErrInvalidCategoryKind,
		)
	}

	category := entity.NewCategory(input.UserID, input.Name, input.Kind)

	if err := uc.categoryRepo.Create(ctx, category); err != nil {
		return nil, domainerror.NewPersistenceError(
			domainerror.ErrCodeCategoryStore,
			"failed to create category",
			err,
		)
	}

	return &CreateCategoryOutput{
		Category: category,
	}, nil
}
