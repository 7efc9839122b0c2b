package dto

import (
	"github.com/lite-finance/backend/internal/application/usecase/summary"
)

// MonthlySummaryResponse represents the monthly per-category summary.
type MonthlySummaryResponse struct {
	Mes          string                      `json:"mes"`
	PorCategoria []CategoryAggregateResponse `json:"porCategoria"`
}

// CategoryAggregateResponse represents one per-category total.
type CategoryAggregateResponse struct {
	CategoriaID int64  `json:"categoria_id"`
	Nome        string `json:"nome"`
	Tipo        string `json:"tipo"`
	Total       string `json:"total"`
}

// ToMonthlySummaryResponse converts a summary use case output to a response
// DTO.
func ToMonthlySummaryResponse(output *summary.MonthlySummaryOutput) MonthlySummaryResponse {
	aggregates := make([]CategoryAggregateResponse, len(output.PerCategory))
	for i, group := range output.PerCategory {
		aggregates[i] = CategoryAggregateResponse{
			CategoriaID: group.CategoryID,
			Nome:        group.CategoryName,
			Tipo:        string(group.CategoryKind),
			Total:       group.Total.StringFixed(2),
		}
	}
	return MonthlySummaryResponse{
		Mes:          output.Month,
		PorCategoria: aggregates,
	}
}
