package dto

import (
	"time"

	"github.com/lite-finance/backend/internal/application/usecase/transaction"
)

// CreateTransactionRequest represents the request body for transaction
// creation. Amount is a pointer so that a missing "valor" is distinguishable
// from an explicit zero.
type CreateTransactionRequest struct {
	Valor       *float64 `json:"valor" binding:"required"`
	Data        string   `json:"data" binding:"required"`
	Descricao   string   `json:"descricao" binding:"max=255"`
	CategoriaID int64    `json:"categoriaId" binding:"required"`
	ContaID     *int64   `json:"contaId"`
	Status      string   `json:"status" binding:"omitempty,oneof=pendente confirmado"`
	Tags        []string `json:"tags"`
}

// TransactionResponse represents a single denormalized transaction in API
// responses. The date is rendered as a plain calendar day.
type TransactionResponse struct {
	ID        int64                       `json:"id"`
	Valor     string                      `json:"valor"`
	Data      string                      `json:"data"`
	Descricao string                      `json:"descricao"`
	Status    string                      `json:"status"`
	Tags      []string                    `json:"tags"`
	Categoria TransactionCategoryResponse `json:"categoria"`
	Conta     *TransactionAccountResponse `json:"conta"`
	CreatedAt time.Time                   `json:"created_at"`
}

// TransactionCategoryResponse represents the category embedded in a
// transaction response.
type TransactionCategoryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Kind string `json:"kind"`
}

// TransactionAccountResponse represents the account embedded in a transaction
// response.
type TransactionAccountResponse struct {
	ID   int64  `json:"id"`
	Nome string `json:"nome"`
}

// ToTransactionResponse converts a transaction use case output to a response
// DTO.
func ToTransactionResponse(output *transaction.TransactionOutput) TransactionResponse {
	response := TransactionResponse{
		ID:        output.ID,
		Valor:     output.Amount.StringFixed(2),
		Data:      output.Date.Format("2006-01-02"),
		Descricao: output.Description,
		Status:    string(output.Status),
		Tags:      output.Tags,
		Categoria: TransactionCategoryResponse{
			ID:   output.Category.ID,
			Name: output.Category.Name,
			Kind: string(output.Category.Kind),
		},
		CreatedAt: output.CreatedAt,
	}
	if output.Account != nil {
		response.Conta = &TransactionAccountResponse{
			ID:   output.Account.ID,
			Nome: output.Account.Name,
		}
	}
	return response
}

// ToTransactionListResponse converts transaction outputs to a response array.
func ToTransactionListResponse(outputs []*transaction.TransactionOutput) []TransactionResponse {
	transactions := make([]TransactionResponse, len(outputs))
	for i, output := range outputs {
		transactions[i] = ToTransactionResponse(output)
	}
	return transactions
}
