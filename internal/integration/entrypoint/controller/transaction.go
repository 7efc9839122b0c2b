package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/lite-finance/backend/internal/application/usecase/transaction"
	"github.com/lite-finance/backend/internal/domain/entity"
	domainerror "github.com/lite-finance/backend/internal/domain/error"
	"github.com/lite-finance/backend/internal/integration/entrypoint/dto"
	"github.com/lite-finance/backend/internal/integration/entrypoint/middleware"
)

// TransactionController handles transaction endpoints.
type TransactionController struct {
	listUseCase   *transaction.ListTransactionsUseCase
	createUseCase *transaction.CreateTransactionUseCase
}

// NewTransactionController creates a new transaction controller instance.
func NewTransactionController(
	listUseCase *transaction.ListTransactionsUseCase,
	createUseCase *transaction.CreateTransactionUseCase,
) *TransactionController {
	return &TransactionController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
	}
}

// List handles GET /transacoes requests. The optional query filters are
// mes (YYYY-MM), categoriaId and contaId; they narrow the user's own
// transactions and are ANDed together.
func (c *TransactionController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		unauthenticated(ctx)
		return
	}

	input := transaction.ListTransactionsInput{
		UserID: userID,
		Month:  ctx.Query("mes"),
	}

	if categoryIDStr := ctx.Query("categoriaId"); categoryIDStr != "" {
		categoryID, err := strconv.ParseInt(categoryIDStr, 10, 64)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "categoriaId must be an integer",
				Code:  domainerror.ErrCodeInvalidCategoryFilter,
			})
			return
		}
		input.CategoryID = &categoryID
	}

	if accountIDStr := ctx.Query("contaId"); accountIDStr != "" {
		accountID, err := strconv.ParseInt(accountIDStr, 10, 64)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "contaId must be an integer",
				Code:  domainerror.ErrCodeInvalidAccountFilter,
			})
			return
		}
		input.AccountID = &accountID
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionListResponse(output.Transactions))
}

// Create handles POST /transacoes requests.
func (c *TransactionController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		unauthenticated(ctx)
		return
	}

	var req dto.CreateTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  domainerror.ErrCodeInvalidTransactionAmount,
		})
		return
	}

	input := transaction.CreateTransactionInput{
		UserID:      userID,
		Amount:      *req.Valor,
		Date:        req.Data,
		Description: req.Descricao,
		CategoryID:  req.CategoriaID,
		AccountID:   req.ContaID,
		Status:      entity.TransactionStatus(req.Status),
		Tags:        req.Tags,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTransactionResponse(output.Transaction))
}
