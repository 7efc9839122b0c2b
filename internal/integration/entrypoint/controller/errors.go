// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerror "github.com/lite-finance/backend/internal/domain/error"
	"github.com/lite-finance/backend/internal/integration/entrypoint/dto"
)

// handleLedgerError maps a classified error to an HTTP response. Validation
// failures surface with their message; persistence failures carry the store's
// rejection along; integrity violations are logged with full detail but the
// client only sees a generic server error, so nothing cross-tenant leaks.
func handleLedgerError(ctx *gin.Context, err error) {
	var ledgerErr *domainerror.LedgerError
	if !errors.As(err, &ledgerErr) {
		slog.Error("unclassified error", "error", err, "path", ctx.FullPath())
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
		return
	}

	switch ledgerErr.Kind {
	case domainerror.KindValidation:
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: ledgerErr.Message,
			Code:  ledgerErr.Code,
		})
	case domainerror.KindAuthentication:
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: ledgerErr.Message,
			Code:  ledgerErr.Code,
		})
	case domainerror.KindPersistence:
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: ledgerErr.Error(),
			Code:  ledgerErr.Code,
		})
	case domainerror.KindIntegrity:
		slog.Error("integrity violation",
			"code", ledgerErr.Code,
			"error", ledgerErr.Error(),
			"path", ctx.FullPath(),
		)
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
	default:
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
	}
}

// unauthenticated writes the response for a request that reached a handler
// without a user identity in context.
func unauthenticated(ctx *gin.Context) {
	ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
		Error: "User not authenticated",
		Code:  domainerror.ErrCodeMissingToken,
	})
}
