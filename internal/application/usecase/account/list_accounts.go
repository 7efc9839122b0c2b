// Package account contains account-related use cases.
package account

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/lite-finance/backend/internal/application/adapter"
)

// ListAccountsInput represents the input for listing accounts.
type ListAccountsInput struct {
	UserID uuid.UUID
}

// AccountOutput represents a single account in the output.
type AccountOutput struct {
	ID        int64
	Name      string
	CreatedAt time.Time
}

// ListAccountsOutput represents the output of listing accounts.
type ListAccountsOutput struct {
	Accounts []*AccountOutput
}

// ListAccountsUseCase handles listing accounts logic.
type ListAccountsUseCase struct {
	accountRepo adapter.AccountRepository
}

// NewListAccountsUseCase creates a new ListAccountsUseCase instance.
func NewListAccountsUseCase(accountRepo adapter.AccountRepository) *ListAccountsUseCase {
	return &ListAccountsUseCase{
		accountRepo: accountRepo,
	}
}

// Execute returns all accounts of the user ordered by name ascending.
func (uc *ListAccountsUseCase) Execute(ctx context.Context, input ListAccountsInput) (*ListAccountsOutput, error) {
	accounts, err := uc.accountRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	output := &ListAccountsOutput{
		Accounts: make([]*AccountOutput, len(accounts)),
	}
	for i, acc := range accounts {
		output.Accounts[i] = &AccountOutput{
			ID:        acc.ID,
			Name:      acc.Name,
			CreatedAt: acc.CreatedAt,
		}
	}

	return output, nil
}
