package dto

import (
	"time"

	"github.com/lite-finance/backend/internal/application/usecase/account"
	"github.com/lite-finance/backend/internal/domain/entity"
)

// CreateAccountRequest represents the request body for account creation.
type CreateAccountRequest struct {
	Nome string `json:"nome" binding:"required,min=1,max=100"`
}

// AccountResponse represents a single account in API responses.
type AccountResponse struct {
	ID        int64     `json:"id"`
	Nome      string    `json:"nome"`
	CreatedAt time.Time `json:"created_at"`
}

// ToAccountResponse converts a domain Account entity to an AccountResponse
// DTO.
func ToAccountResponse(acc *entity.Account) AccountResponse {
	return AccountResponse{
		ID:        acc.ID,
		Nome:      acc.Name,
		CreatedAt: acc.CreatedAt,
	}
}

// ToAccountListResponse converts account outputs to a response array.
func ToAccountListResponse(outputs []*account.AccountOutput) []AccountResponse {
	accounts := make([]AccountResponse, len(outputs))
	for i, output := range outputs {
		accounts[i] = AccountResponse{
			ID:        output.ID,
			Nome:      output.Name,
			CreatedAt: output.CreatedAt,
		}
	}
	return accounts
}
