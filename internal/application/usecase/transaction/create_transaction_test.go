package transaction

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lite-finance/backend/internal/application/adapter"
	"github.com/lite-finance/backend/internal/domain/entity"
	domainerror "github.com/lite-finance/backend/internal/domain/error"
)

type fakeTransactionRepo struct {
	created    []*entity.Transaction
	createErr  error
	rows       []*entity.TransactionWithRelations
	findErr    error
	lastFilter adapter.TransactionFilter
}

func (f *fakeTransactionRepo) Create(_ context.Context, transaction *entity.Transaction) error {
	if f.createErr != nil {
		return f.createErr
	}
	transaction.ID = int64(len(f.created) + 1)
	f.created = append(f.created, transaction)
	return nil
}

func (f *fakeTransactionRepo) FindByFilter(_ context.Context, filter adapter.TransactionFilter) ([]*entity.TransactionWithRelations, error) {
	f.lastFilter = filter
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.rows, nil
}

type fakeCategoryRepo struct {
	categories map[int64]*entity.Category
}

func (f *fakeCategoryRepo) Create(_ context.Context, category *entity.Category) error {
	if f.categories == nil {
		f.categories = make(map[int64]*entity.Category)
	}
	category.ID = int64(len(f.categories) + 1)
	f.categories[category.ID] = category
	return nil
}

func (f *fakeCategoryRepo) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.Category, error) {
	var result []*entity.Category
	for _, cat := range f.categories {
		if cat.UserID == userID {
			result = append(result, cat)
		}
	}
	return result, nil
}

func (f *fakeCategoryRepo) FindByIDAndUser(_ context.Context, id int64, userID uuid.UUID) (*entity.Category, error) {
	cat, ok := f.categories[id]
	if !ok || cat.UserID != userID {
		return nil, domainerror.ErrCategoryNotFound
	}
	return cat, nil
}

type fakeAccountRepo struct {
	accounts map[int64]*entity.Account
}

func (f *fakeAccountRepo) Create(_ context.Context, account *entity.Account) error {
	if f.accounts == nil {
		f.accounts = make(map[int64]*entity.Account)
	}
	account.ID = int64(len(f.accounts) + 1)
	f.accounts[account.ID] = account
	return nil
}

func (f *fakeAccountRepo) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.Account, error) {
	var result []*entity.Account
	for _, acc := range f.accounts {
		if acc.UserID == userID {
			result = append(result, acc)
		}
	}
	return result, nil
}

func (f *fakeAccountRepo) FindByIDAndUser(_ context.Context, id int64, userID uuid.UUID) (*entity.Account, error) {
	acc, ok := f.accounts[id]
	if !ok || acc.UserID != userID {
		return nil, domainerror.ErrAccountNotFound
	}
	return acc, nil
}

func assertLedgerError(t *testing.T, err error, kind domainerror.ErrorKind, code string) {
	t.Helper()
	var ledgerErr *domainerror.LedgerError
	if !errors.As(err, &ledgerErr) {
		t.Fatalf("expected LedgerError, got %v", err)
	}
	if ledgerErr.Kind != kind {
		t.Errorf("expected kind %s, got %s", kind, ledgerErr.Kind)
	}
	if ledgerErr.Code != code {
		t.Errorf("expected code %s, got %s", code, ledgerErr.Code)
	}
}

func TestCreateTransactionUseCase(t *testing.T) {
	userID := uuid.New()

	setup := func() (*CreateTransactionUseCase, *fakeTransactionRepo, *fakeCategoryRepo, *fakeAccountRepo) {
		txnRepo := &fakeTransactionRepo{}
		catRepo := &fakeCategoryRepo{categories: map[int64]*entity.Category{
			1: {ID: 1, UserID: userID, Name: "Mercado", Kind: entity.CategoryKindDespesa},
		}}
		accRepo := &fakeAccountRepo{accounts: map[int64]*entity.Account{
			1: {ID: 1, UserID: userID, Name: "Nubank"},
		}}
		return NewCreateTransactionUseCase(txnRepo, catRepo, accRepo), txnRepo, catRepo, accRepo
	}

	t.Run("creates a transaction with defaults", func(t *testing.T) {
		uc, txnRepo, _, _ := setup()

		output, err := uc.Execute(context.Background(), CreateTransactionInput{
			UserID:     userID,
			Amount:     -180.50,
			Date:       "2024-12-05",
			CategoryID: 1,
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if len(txnRepo.created) != 1 {
			t.Fatalf("expected 1 stored transaction, got %d", len(txnRepo.created))
		}
		txn := output.Transaction
		if txn.Status != entity.TransactionStatusConfirmado {
			t.Errorf("expected default status confirmado, got %s", txn.Status)
		}
		if !txn.Amount.Equal(decimal.NewFromFloat(-180.50)) {
			t.Errorf("expected amount -180.50, got %s", txn.Amount)
		}
		if txn.Tags == nil || len(txn.Tags) != 0 {
			t.Errorf("expected empty tags slice, got %v", txn.Tags)
		}
		if txn.Category.Name != "Mercado" {
			t.Errorf("expected denormalized category, got %+v", txn.Category)
		}
		if txn.Account != nil {
			t.Errorf("expected no account, got %+v", txn.Account)
		}
	})

	t.Run("attaches the account when given", func(t *testing.T) {
		uc, _, _, _ := setup()
		accountID := int64(1)

		output, err := uc.Execute(context.Background(), CreateTransactionInput{
			UserID:     userID,
			Amount:     50,
			Date:       "2024-12-05",
			CategoryID: 1,
			AccountID:  &accountID,
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if output.Transaction.Account == nil || output.Transaction.Account.Name != "Nubank" {
			t.Errorf("expected denormalized account, got %+v", output.Transaction.Account)
		}
	})

	t.Run("accepts RFC 3339 dates", func(t *testing.T) {
		uc, txnRepo, _, _ := setup()

		_, err := uc.Execute(context.Background(), CreateTransactionInput{
			UserID:     userID,
			Amount:     50,
			Date:       "2024-12-05T14:30:00Z",
			CategoryID: 1,
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		want := time.Date(2024, 12, 5, 14, 30, 0, 0, time.UTC)
		if !txnRepo.created[0].Date.Equal(want) {
			t.Errorf("expected date %v, got %v", want, txnRepo.created[0].Date)
		}
	})

	t.Run("rejects a non-finite amount", func(t *testing.T) {
		uc, _, _, _ := setup()

		_, err := uc.Execute(context.Background(), CreateTransactionInput{
			UserID:     userID,
			Amount:     math.NaN(),
			Date:       "2024-12-05",
			CategoryID: 1,
		})
		assertLedgerError(t, err, domainerror.KindValidation, domainerror.ErrCodeInvalidTransactionAmount)
	})

	t.Run("rejects a malformed date", func(t *testing.T) {
		uc, _, _, _ := setup()

		_, err := uc.Execute(context.Background(), CreateTransactionInput{
			UserID:     userID,
			Amount:     50,
			Date:       "05/12/2024",
			CategoryID: 1,
		})
		assertLedgerError(t, err, domainerror.KindValidation, domainerror.ErrCodeInvalidTransactionDate)
	})

	t.Run("rejects a missing category reference", func(t *testing.T) {
		uc, _, _, _ := setup()

		_, err := uc.Execute(context.Background(), CreateTransactionInput{
			UserID: userID,
			Amount: 50,
			Date:   "2024-12-05",
		})
		assertLedgerError(t, err, domainerror.KindValidation, domainerror.ErrCodeTxnCategoryRequired)
	})

	t.Run("rejects an unknown category", func(t *testing.T) {
		uc, _, _, _ := setup()

		_, err := uc.Execute(context.Background(), CreateTransactionInput{
			UserID:     userID,
			Amount:     50,
			Date:       "2024-12-05",
			CategoryID: 999,
		})
		assertLedgerError(t, err, domainerror.KindValidation, domainerror.ErrCodeTxnCategoryNotFound)
	})

	t.Run("rejects another user's category", func(t *testing.T) {
		uc, _, catRepo, _ := setup()
		catRepo.categories[2] = &entity.Category{ID: 2, UserID: uuid.New(), Name: "Viagem", Kind: entity.CategoryKindDespesa}

		_, err := uc.Execute(context.Background(), CreateTransactionInput{
			UserID:     userID,
			Amount:     50,
			Date:       "2024-12-05",
			CategoryID: 2,
		})
		assertLedgerError(t, err, domainerror.KindValidation, domainerror.ErrCodeTxnCategoryNotFound)
	})

	t.Run("rejects an unknown account", func(t *testing.T) {
		uc, _, _, _ := setup()
		accountID := int64(999)

		_, err := uc.Execute(context.Background(), CreateTransactionInput{
			UserID:     userID,
			Amount:     50,
			Date:       "2024-12-05",
			CategoryID: 1,
			AccountID:  &accountID,
		})
		assertLedgerError(t, err, domainerror.KindValidation, domainerror.ErrCodeTxnAccountNotFound)
	})

	t.Run("rejects a cancelado status", func(t *testing.T) {
		uc, _, _, _ := setup()

		_, err := uc.Execute(context.Background(), CreateTransactionInput{
			UserID:     userID,
			Amount:     50,
			Date:       "2024-12-05",
			CategoryID: 1,
			Status:     entity.TransactionStatusCancelado,
		})
		assertLedgerError(t, err, domainerror.KindValidation, domainerror.ErrCodeInvalidTransactionStatus)
	})

	t.Run("wraps a store rejection as a persistence error", func(t *testing.T) {
		uc, txnRepo, _, _ := setup()
		txnRepo.createErr = errors.New("constraint violated")

		_, err := uc.Execute(context.Background(), CreateTransactionInput{
			UserID:     userID,
			Amount:     50,
			Date:       "2024-12-05",
			CategoryID: 1,
		})
		assertLedgerError(t, err, domainerror.KindPersistence, domainerror.ErrCodeTransactionStore)
	})
}
