package transaction

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lite-finance/backend/internal/application/adapter"
	"github.com/lite-finance/backend/internal/domain/entity"
	domainerror "github.com/lite-finance/backend/internal/domain/error"
)

// dateLayouts are the accepted wire formats for a transaction date, tried in
// order.
var dateLayouts = []string{"2006-01-02", time.RFC3339}

// CreateTransactionInput represents the input for transaction creation. The
// user id comes from the authenticated caller regardless of anything in the
// request body.
type CreateTransactionInput struct {
	UserID      uuid.UUID
	Amount      float64
	Date        string
	Description string
	CategoryID  int64
	AccountID   *int64
	Status      entity.TransactionStatus
	Tags        []string
}

// CreateTransactionOutput represents the output of transaction creation.
type CreateTransactionOutput struct {
	Transaction *TransactionOutput
}

// CreateTransactionUseCase handles transaction creation logic.
type CreateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	categoryRepo    adapter.CategoryRepository
	accountRepo     adapter.AccountRepository
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	categoryRepo adapter.CategoryRepository,
	accountRepo adapter.AccountRepository,
) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		accountRepo:     accountRepo,
	}
}

// Execute performs the transaction creation. Shape and reference validation
// happens before the store write; a store rejection surfaces with the
// underlying message and is not retried.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	if math.IsNaN(input.Amount) || math.IsInf(input.Amount, 0) {
		return nil, domainerror.NewValidationError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"amount must be a finite number",
			domainerror.ErrInvalidTransactionAmount,
		)
	}

	date, err := parseDate(input.Date)
	if err != nil {
		return nil, domainerror.NewValidationError(
			domainerror.ErrCodeInvalidTransactionDate,
			"date must be a calendar date (YYYY-MM-DD or RFC 3339)",
			domainerror.ErrInvalidTransactionDate,
		)
	}

	if input.CategoryID == 0 {
		return nil, domainerror.NewValidationError(
			domainerror.ErrCodeTxnCategoryRequired,
			"a category reference is required",
			domainerror.ErrTransactionCategoryRequired,
		)
	}

	status := input.Status
	if status == "" {
		status = entity.TransactionStatusConfirmado
	}
	if !entity.IsCreatableTransactionStatus(status) {
		return nil, domainerror.NewValidationError(
			domainerror.ErrCodeInvalidTransactionStatus,
			"status must be 'pendente' or 'confirmado'",
			domainerror.ErrInvalidTransactionStatus,
		)
	}

	// The category must resolve within the caller's tenant. The lookup is
	// scoped by user id, so a category owned by someone else is
	// indistinguishable from a missing one and no cross-tenant detail leaks.
	category, err := uc.categoryRepo.FindByIDAndUser(ctx, input.CategoryID, input.UserID)
	if err != nil {
		if errors.Is(err, domainerror.ErrCategoryNotFound) {
			return nil, domainerror.NewValidationError(
				domainerror.ErrCodeTxnCategoryNotFound,
				"category not found",
				domainerror.ErrCategoryNotFound,
			)
		}
		return nil, err
	}

	var account *entity.Account
	if input.AccountID != nil {
		account, err = uc.accountRepo.FindByIDAndUser(ctx, *input.AccountID, input.UserID)
		if err != nil {
			if errors.Is(err, domainerror.ErrAccountNotFound) {
				return nil, domainerror.NewValidationError(
					domainerror.ErrCodeTxnAccountNotFound,
					"account not found",
					domainerror.ErrAccountNotFound,
				)
			}
			return nil, err
		}
	}

	transaction := entity.NewTransaction(
		input.UserID,
		decimal.NewFromFloat(input.Amount),
		date,
		input.Description,
		input.CategoryID,
		input.AccountID,
		status,
		input.Tags,
	)

	if err := uc.transactionRepo.Create(ctx, transaction); err != nil {
		return nil, domainerror.NewPersistenceError(
			domainerror.ErrCodeTransactionStore,
			"failed to create transaction",
			err,
		)
	}

	output := &CreateTransactionOutput{
		Transaction: &TransactionOutput{
			ID:          transaction.ID,
			Amount:      transaction.Amount,
			Date:        transaction.Date,
			Description: transaction.Description,
			Status:      transaction.Status,
			Tags:        transaction.Tags,
			CategoryID:  transaction.CategoryID,
			AccountID:   transaction.AccountID,
			Category: CategoryOutput{
				ID:   category.ID,
				Name: category.Name,
				Kind: category.Kind,
			},
			CreatedAt: transaction.CreatedAt,
		},
	}

	if account != nil {
		output.Transaction.Account = &AccountOutput{
			ID:   account.ID,
			Name: account.Name,
		}
	}

	return output, nil
}

// parseDate parses a transaction date in any of the accepted layouts.
func parseDate(value string) (time.Time, error) {
	var lastErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t.UTC(), nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
