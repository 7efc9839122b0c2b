// Package summary contains the monthly reporting use case.
package summary

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lite-finance/backend/internal/application/adapter"
	"github.com/lite-finance/backend/internal/domain/entity"
	domainerror "github.com/lite-finance/backend/internal/domain/error"
	"github.com/lite-finance/backend/internal/domain/valueobject"
)

// Rows without a resolvable category are bucketed under this sentinel group.
// The required-reference invariant makes this a defensive path only.
const (
	uncategorizedName = "Sem categoria"
	uncategorizedKind = entity.CategoryKindDespesa
)

// MonthlySummaryInput represents the input for the monthly summary. Month is
// the raw "YYYY-MM" value.
type MonthlySummaryInput struct {
	UserID uuid.UUID
	Month  string
}

// CategoryAggregate is one per-category total for the month. Emission order
// across aggregates is unspecified.
type CategoryAggregate struct {
	CategoryID   int64
	CategoryName string
	CategoryKind entity.CategoryKind
	Total        decimal.Decimal
}

// MonthlySummaryOutput represents the output of the monthly summary.
type MonthlySummaryOutput struct {
	Month       string
	PerCategory []*CategoryAggregate
}

// MonthlySummaryUseCase rolls a user's transactions of one month up into
// per-category totals. It is a pure aggregation: re-running it over identical
// data yields identical totals.
type MonthlySummaryUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewMonthlySummaryUseCase creates a new MonthlySummaryUseCase instance.
func NewMonthlySummaryUseCase(transactionRepo adapter.TransactionRepository) *MonthlySummaryUseCase {
	return &MonthlySummaryUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute computes the summary. It fetches the month's transactions through
// the same filter path as the listing operation and reduces them in a single
// grouping pass, so both read paths always agree on the grand total. The
// grouping could later move into the store without changing this contract.
func (uc *MonthlySummaryUseCase) Execute(ctx context.Context, input MonthlySummaryInput) (*MonthlySummaryOutput, error) {
	month, err := valueobject.ParseMonth(input.Month)
	if err != nil {
		return nil, domainerror.NewValidationError(
			domainerror.ErrCodeInvalidMonthFilter,
			"mes must use the YYYY-MM format",
			domainerror.ErrInvalidMonthFilter,
		)
	}

	rows, err := uc.transactionRepo.FindByFilter(ctx, adapter.TransactionFilter{
		UserID: input.UserID,
		Month:  &month,
	})
	if err != nil {
		return nil, err
	}

	groups := make(map[int64]*CategoryAggregate)
	for _, row := range rows {
		txn := row.Transaction

		if row.Category != nil && row.Category.UserID != txn.UserID {
			return nil, domainerror.NewIntegrityViolation(
				domainerror.ErrCodeCrossTenantReference,
				"transaction category belongs to another user",
				domainerror.ErrCrossTenantReference,
			)
		}

		group, ok := groups[txn.CategoryID]
		if !ok {
			group = &CategoryAggregate{
				CategoryID:   txn.CategoryID,
				CategoryName: uncategorizedName,
				CategoryKind: uncategorizedKind,
				Total:        decimal.Zero,
			}
			if row.Category != nil {
				group.CategoryName = row.Category.Name
				group.CategoryKind = row.Category.Kind
			}
			groups[txn.CategoryID] = group
		}

		group.Total = group.Total.Add(txn.Amount)
	}

	output := &MonthlySummaryOutput{
		Month:       month.String(),
		PerCategory: make([]*CategoryAggregate, 0, len(groups)),
	}
	for _, group := range groups {
		output.PerCategory = append(output.PerCategory, group)
	}

	return output, nil
}
