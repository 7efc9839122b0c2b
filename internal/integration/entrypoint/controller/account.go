package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lite-finance/backend/internal/application/usecase/account"
	domainerror "github.com/lite-finance/backend/internal/domain/error"
	"github.com/lite-finance/backend/internal/integration/entrypoint/dto"
	"github.com/lite-finance/backend/internal/integration/entrypoint/middleware"
)

// AccountController handles account endpoints.
type AccountController struct {
	listUseCase   *account.ListAccountsUseCase
	createUseCase *account.CreateAccountUseCase
}

// NewAccountController creates a new account controller instance.
func NewAccountController(
	listUseCase *account.ListAccountsUseCase,
	createUseCase *account.CreateAccountUseCase,
) *AccountController {
	return &AccountController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
	}
}

// List handles GET /contas requests.
func (c *AccountController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		unauthenticated(ctx)
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), account.ListAccountsInput{
		UserID: userID,
	})
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAccountListResponse(output.Accounts))
}

// Create handles POST /contas requests.
func (c *AccountController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		unauthenticated(ctx)
		return
	}

	var req dto.CreateAccountRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  domainerror.ErrCodeAccountNameRequired,
		})
		return
	}

	input := account.CreateAccountInput{
		UserID: userID,
		Name:   req.Nome,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToAccountResponse(output.Account))
}
