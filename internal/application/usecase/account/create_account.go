package account

import (
	"context"

	"github.com/google/uuid"

	"github.com/lite-finance/backend/internal/application/adapter"
	"github.com/lite-finance/backend/internal/domain/entity"
	domainerror "github.com/lite-finance/backend/internal/domain/error"
)

// CreateAccountInput represents the input for account creation.
type CreateAccountInput struct {
	UserID uuid.UUID
	Name   string
}

// CreateAccountOutput represents the output of account creation.
type CreateAccountOutput struct {
	Account *entity.Account
}

// CreateAccountUseCase handles account creation logic.
type CreateAccountUseCase struct {
	accountRepo adapter.AccountRepository
}

// NewCreateAccountUseCase creates a new CreateAccountUseCase instance.
func NewCreateAccountUseCase(accountRepo adapter.AccountRepository) *CreateAccountUseCase {
	return &CreateAccountUseCase{
		accountRepo: accountRepo,
	}
}

// Execute performs the account creation.
func (uc *CreateAccountUseCase) Execute(ctx context.Context, input CreateAccountInput) (*CreateAccountOutput, error) {
	if input.Name == "" {
		return nil, domainerror.NewValidationError(
			domainerror.ErrCodeAccountNameRequired,
			"account name must not be empty",
			domainerror.ErrAccountNameRequired,
		)
	}

	account := entity.NewAccount(input.UserID, input.Name)

	if err := uc.accountRepo.Create(ctx, account); err != nil {
		return nil, domainerror.NewPersistenceError(
			domainerror.ErrCodeAccountStore,
			"failed to create account",
			err,
		)
	}

	return &CreateAccountOutput{
		Account: account,
	}, nil
}
