package dto

import (
	"time"

	"github.com/lite-finance/backend/internal/application/usecase/category"
	"github.com/lite-finance/backend/internal/domain/entity"
)

// CreateCategoryRequest represents the request body for category creation.
type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
	Kind string `json:"kind" binding:"required,oneof=RECEITA DESPESA"`
}

// CategoryResponse represents a single category in API responses.
type CategoryResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Kind      string    `json:"kind"`
	CreatedAt time.Time `json:"created_at"`
}

// ToCategoryResponse converts a domain Category entity to a CategoryResponse
// DTO.
func ToCategoryResponse(cat *entity.Category) CategoryResponse {
	return CategoryResponse{
		ID:        cat.ID,
		Name:      cat.Name,
		Kind:      string(cat.Kind),
		CreatedAt: cat.CreatedAt,
	}
}

// ToCategoryListResponse converts category outputs to a response array. The
// listing is a plain JSON array ordered by name.
func ToCategoryListResponse(outputs []*category.CategoryOutput) []CategoryResponse {
	categories := make([]CategoryResponse, len(outputs))
	for i, output := range outputs {
		categories[i] = CategoryResponse{
			ID:        output.ID,
			Name:      output.Name,
			Kind:      string(output.Kind),
			CreatedAt: output.CreatedAt,
		}
	}
	return categories
}
