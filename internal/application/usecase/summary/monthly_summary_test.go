package summary

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lite-finance/backend/internal/application/adapter"
	"github.com/lite-finance/backend/internal/application/usecase/transaction"
	"github.com/lite-finance/backend/internal/domain/entity"
	domainerror "github.com/lite-finance/backend/internal/domain/error"
)

type fakeTransactionRepo struct {
	rows       []*entity.TransactionWithRelations
	findErr    error
	lastFilter adapter.TransactionFilter
}

func (f *fakeTransactionRepo) Create(_ context.Context, _ *entity.Transaction) error {
	return errors.New("not implemented")
}

func (f *fakeTransactionRepo) FindByFilter(_ context.Context, filter adapter.TransactionFilter) ([]*entity.TransactionWithRelations, error) {
	f.lastFilter = filter
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.rows, nil
}

func row(userID uuid.UUID, amount string, category *entity.Category) *entity.TransactionWithRelations {
	txn := &entity.Transaction{
		UserID: userID,
		Amount: decimal.RequireFromString(amount),
		Date:   time.Date(2024, 12, 5, 0, 0, 0, 0, time.UTC),
		Status: entity.TransactionStatusConfirmado,
		Tags:   []string{},
	}
	if category != nil {
		txn.CategoryID = category.ID
	}
	return &entity.TransactionWithRelations{
		Transaction: txn,
		Category:    category,
	}
}

func findGroup(groups []*CategoryAggregate, name string) *CategoryAggregate {
	for _, group := range groups {
		if group.CategoryName == name {
			return group
		}
	}
	return nil
}

func TestMonthlySummaryUseCase(t *testing.T) {
	userID := uuid.New()
	salario := &entity.Category{ID: 1, UserID: userID, Name: "Salário", Kind: entity.CategoryKindReceita}
	mercado := &entity.Category{ID: 2, UserID: userID, Name: "Mercado", Kind: entity.CategoryKindDespesa}

	t.Run("sums amounts per category", func(t *testing.T) {
		repo := &fakeTransactionRepo{rows: []*entity.TransactionWithRelations{
			row(userID, "3200.00", salario),
			row(userID, "-180.50", mercado),
			row(userID, "-25.80", mercado),
		}}
		uc := NewMonthlySummaryUseCase(repo)

		output, err := uc.Execute(context.Background(), MonthlySummaryInput{UserID: userID, Month: "2024-12"})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if output.Month != "2024-12" {
			t.Errorf("expected month 2024-12, got %s", output.Month)
		}
		if len(output.PerCategory) != 2 {
			t.Fatalf("expected 2 aggregates, got %d", len(output.PerCategory))
		}

		salarioGroup := findGroup(output.PerCategory, "Salário")
		if salarioGroup == nil {
			t.Fatal("expected aggregate for Salário")
		}
		if salarioGroup.Total.String() != "3200" {
			t.Errorf("expected Salário total 3200, got %s", salarioGroup.Total)
		}
		if salarioGroup.CategoryKind != entity.CategoryKindReceita {
			t.Errorf("expected kind RECEITA, got %s", salarioGroup.CategoryKind)
		}

		mercadoGroup := findGroup(output.PerCategory, "Mercado")
		if mercadoGroup == nil {
			t.Fatal("expected aggregate for Mercado")
		}
		if mercadoGroup.Total.String() != "-206.3" {
			t.Errorf("expected Mercado total -206.3, got %s", mercadoGroup.Total)
		}
	})

	t.Run("scopes the fetch to the user and month", func(t *testing.T) {
		repo := &fakeTransactionRepo{}
		uc := NewMonthlySummaryUseCase(repo)

		_, err := uc.Execute(context.Background(), MonthlySummaryInput{UserID: userID, Month: "2024-12"})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		filter := repo.lastFilter
		if filter.UserID != userID {
			t.Errorf("expected user scope %s, got %s", userID, filter.UserID)
		}
		if filter.Month == nil || filter.Month.String() != "2024-12" {
			t.Errorf("expected month filter 2024-12, got %v", filter.Month)
		}
		if filter.CategoryID != nil || filter.AccountID != nil {
			t.Error("expected no category or account filters")
		}
	})

	t.Run("an empty month yields an empty summary", func(t *testing.T) {
		uc := NewMonthlySummaryUseCase(&fakeTransactionRepo{})

		output, err := uc.Execute(context.Background(), MonthlySummaryInput{UserID: userID, Month: "2024-12"})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(output.PerCategory) != 0 {
			t.Errorf("expected no aggregates, got %d", len(output.PerCategory))
		}
	})

	t.Run("rejects a malformed month", func(t *testing.T) {
		uc := NewMonthlySummaryUseCase(&fakeTransactionRepo{})

		_, err := uc.Execute(context.Background(), MonthlySummaryInput{UserID: userID, Month: "dezembro"})
		var ledgerErr *domainerror.LedgerError
		if !errors.As(err, &ledgerErr) {
			t.Fatalf("expected LedgerError, got %v", err)
		}
		if ledgerErr.Kind != domainerror.KindValidation || ledgerErr.Code != domainerror.ErrCodeInvalidMonthFilter {
			t.Errorf("expected validation/%s, got %s/%s", domainerror.ErrCodeInvalidMonthFilter, ledgerErr.Kind, ledgerErr.Code)
		}
	})

	t.Run("buckets a missing category under the sentinel", func(t *testing.T) {
		uc := NewMonthlySummaryUseCase(&fakeTransactionRepo{rows: []*entity.TransactionWithRelations{
			row(userID, "-10.00", nil),
		}})

		output, err := uc.Execute(context.Background(), MonthlySummaryInput{UserID: userID, Month: "2024-12"})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(output.PerCategory) != 1 {
			t.Fatalf("expected 1 aggregate, got %d", len(output.PerCategory))
		}
		group := output.PerCategory[0]
		if group.CategoryName != "Sem categoria" || group.CategoryKind != entity.CategoryKindDespesa {
			t.Errorf("expected sentinel bucket, got %+v", group)
		}
	})

	t.Run("agrees with the listing on the grand total", func(t *testing.T) {
		repo := &fakeTransactionRepo{rows: []*entity.TransactionWithRelations{
			row(userID, "3200.00", salario),
			row(userID, "-180.50", mercado),
			row(userID, "-25.80", mercado),
			row(userID, "-99.99", mercado),
		}}

		summaryOutput, err := NewMonthlySummaryUseCase(repo).Execute(context.Background(), MonthlySummaryInput{
			UserID: userID,
			Month:  "2024-12",
		})
		if err != nil {
			t.Fatalf("expected no summary error, got %v", err)
		}

		listOutput, err := transaction.NewListTransactionsUseCase(repo).Execute(context.Background(), transaction.ListTransactionsInput{
			UserID: userID,
			Month:  "2024-12",
		})
		if err != nil {
			t.Fatalf("expected no listing error, got %v", err)
		}

		summaryTotal := decimal.Zero
		for _, group := range summaryOutput.PerCategory {
			summaryTotal = summaryTotal.Add(group.Total)
		}
		listTotal := decimal.Zero
		for _, txn := range listOutput.Transactions {
			listTotal = listTotal.Add(txn.Amount)
		}

		if !summaryTotal.Equal(listTotal) {
			t.Errorf("summary grand total %s disagrees with listing total %s", summaryTotal, listTotal)
		}
	})

	t.Run("flags a cross-tenant category", func(t *testing.T) {
		foreign := &entity.Category{ID: 9, UserID: uuid.New(), Name: "Viagem", Kind: entity.CategoryKindDespesa}
		uc := NewMonthlySummaryUseCase(&fakeTransactionRepo{rows: []*entity.TransactionWithRelations{
			row(userID, "-10.00", foreign),
		}})

		_, err := uc.Execute(context.Background(), MonthlySummaryInput{UserID: userID, Month: "2024-12"})
		var ledgerErr *domainerror.LedgerError
		if !errors.As(err, &ledgerErr) {
			t.Fatalf("expected LedgerError, got %v", err)
		}
		if ledgerErr.Kind != domainerror.KindIntegrity {
			t.Errorf("expected integrity error, got %s", ledgerErr.Kind)
		}
	})
}
