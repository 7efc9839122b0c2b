// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lite-finance/backend/internal/application/adapter"
	"github.com/lite-finance/backend/internal/domain/entity"
	domainerror "github.com/lite-finance/backend/internal/domain/error"
	"github.com/lite-finance/backend/internal/domain/valueobject"
)

// ListTransactionsInput represents the input for listing transactions. Month
// is the raw "YYYY-MM" filter value; an empty string means no month filter.
type ListTransactionsInput struct {
	UserID     uuid.UUID
	Month      string
	CategoryID *int64
	AccountID  *int64
}

// TransactionOutput represents a single denormalized transaction in the
// output.
type TransactionOutput struct {
	ID          int64
	Amount      decimal.Decimal
	Date        time.Time
	Description string
	Status      entity.TransactionStatus
	Tags        []string
	CategoryID  int64
	AccountID   *int64
	Category    CategoryOutput
	Account     *AccountOutput
	CreatedAt   time.Time
}

// CategoryOutput represents category information in transaction output.
type CategoryOutput struct {
	ID   int64
	Name string
	Kind entity.CategoryKind
}

// AccountOutput represents account information in transaction output.
type AccountOutput struct {
	ID   int64
	Name string
}

// ListTransactionsOutput represents the output of listing transactions.
type ListTransactionsOutput struct {
	Transactions []*TransactionOutput
}

// ListTransactionsUseCase handles listing transactions logic.
type ListTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(transactionRepo adapter.TransactionRepository) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute performs the transaction listing. The user scope is applied
// unconditionally; month, category and account predicates are ANDed on top.
// Rows are ordered by date descending, tie-broken by ID descending.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	filter := adapter.TransactionFilter{
		UserID:     input.UserID,
		CategoryID: input.CategoryID,
		AccountID:  input.AccountID,
	}

	if input.Month != "" {
		month, err := valueobject.ParseMonth(input.Month)
		if err != nil {
			return nil, domainerror.NewValidationError(
				domainerror.ErrCodeInvalidMonthFilter,
				"month filter must use the YYYY-MM format",
				domainerror.ErrInvalidMonthFilter,
			)
		}
		filter.Month = &month
	}

	rows, err := uc.transactionRepo.FindByFilter(ctx, filter)
	if err != nil {
		return nil, err
	}

	output := &ListTransactionsOutput{
		Transactions: make([]*TransactionOutput, len(rows)),
	}

	for i, row := range rows {
		if err := checkRowIntegrity(row); err != nil {
			return nil, err
		}

		txn := row.Transaction
		txnOutput := &TransactionOutput{
			ID:          txn.ID,
			Amount:      txn.Amount,
			Date:        txn.Date,
			Description: txn.Description,
			Status:      txn.Status,
			Tags:        txn.Tags,
			CategoryID:  txn.CategoryID,
			AccountID:   txn.AccountID,
			Category: CategoryOutput{
				ID:   row.Category.ID,
				Name: row.Category.Name,
				Kind: row.Category.Kind,
			},
			CreatedAt: txn.CreatedAt,
		}

		if row.Account != nil {
			txnOutput.Account = &AccountOutput{
				ID:   row.Account.ID,
				Name: row.Account.Name,
			}
		}

		output.Transactions[i] = txnOutput
	}

	return output, nil
}

// checkRowIntegrity verifies that a fetched row stays inside the caller's
// tenant boundary. A transaction without its required category, or one whose
// category or account belongs to another user, must never be served.
func checkRowIntegrity(row *entity.TransactionWithRelations) error {
	txn := row.Transaction

	if row.Category == nil {
		return domainerror.NewIntegrityViolation(
			domainerror.ErrCodeMissingTxnCategory,
			"transaction references a missing category",
			domainerror.ErrMissingTransactionCategory,
		)
	}
	if row.Category.UserID != txn.UserID {
		return domainerror.NewIntegrityViolation(
			domainerror.ErrCodeCrossTenantReference,
			"transaction category belongs to another user",
			domainerror.ErrCrossTenantReference,
		)
	}
	if row.Account != nil && row.Account.UserID != txn.UserID {
		return domainerror.NewIntegrityViolation(
			domainerror.ErrCodeCrossTenantReference,
			"transaction account belongs to another user",
			domainerror.ErrCrossTenantReference,
		)
	}

	return nil
}
