package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lite-finance/backend/internal/integration/entrypoint/middleware"
)

// MeController handles the authenticated identity endpoint.
type MeController struct{}

// MeResponse wraps the authenticated caller's identity.
type MeResponse struct {
	User UserResponse `json:"user"`
}

// UserResponse represents the authenticated caller.
type UserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email,omitempty"`
}

// NewMeController creates a new me controller instance.
func NewMeController() *MeController {
	return &MeController{}
}

// Get handles GET /me requests. It echoes the identity resolved by the auth
// middleware, which is useful for clients checking their session.
func (c *MeController) Get(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		unauthenticated(ctx)
		return
	}

	email, _ := middleware.GetUserEmailFromContext(ctx)

	ctx.JSON(http.StatusOK, MeResponse{
		User: UserResponse{
			ID:    userID.String(),
			Email: email,
		},
	})
}
