package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lite-finance/backend/internal/application/usecase/summary"
	domainerror "github.com/lite-finance/backend/internal/domain/error"
	"github.com/lite-finance/backend/internal/integration/entrypoint/dto"
	"github.com/lite-finance/backend/internal/integration/entrypoint/middleware"
)

// SummaryController handles reporting endpoints.
type SummaryController struct {
	monthlyUseCase *summary.MonthlySummaryUseCase
}

// NewSummaryController creates a new summary controller instance.
func NewSummaryController(monthlyUseCase *summary.MonthlySummaryUseCase) *SummaryController {
	return &SummaryController{
		monthlyUseCase: monthlyUseCase,
	}
}

// Monthly handles GET /resumos/mensal requests. The mes query parameter is
// mandatory.
func (c *SummaryController) Monthly(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		unauthenticated(ctx)
		return
	}

	month := ctx.Query("mes")
	if month == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "mes query parameter is required",
			Code:  domainerror.ErrCodeInvalidMonthFilter,
		})
		return
	}

	output, err := c.monthlyUseCase.Execute(ctx.Request.Context(), summary.MonthlySummaryInput{
		UserID: userID,
		Month:  month,
	})
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMonthlySummaryResponse(output))
}
