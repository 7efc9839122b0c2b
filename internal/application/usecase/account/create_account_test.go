package account

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/lite-finance/backend/internal/domain/entity"
	domainerror "github.com/lite-finance/backend/internal/domain/error"
)

type fakeAccountRepo struct {
	created   []*entity.Account
	createErr error
	byUser    []*entity.Account
}

func (f *fakeAccountRepo) Create(_ context.Context, account *entity.Account) error {
	if f.createErr != nil {
		return f.createErr
	}
	account.ID = int64(len(f.created) + 1)
	f.created = append(f.created, account)
	return nil
}

func (f *fakeAccountRepo) FindByUser(_ context.Context, _ uuid.UUID) ([]*entity.Account, error) {
	return f.byUser, nil
}

func (f *fakeAccountRepo) FindByIDAndUser(_ context.Context, _ int64, _ uuid.UUID) (*entity.Account, error) {
	return nil, domainerror.ErrAccountNotFound
}

func TestCreateAccountUseCase(t *testing.T) {
	userID := uuid.New()

	t.Run("creates an account", func(t *testing.T) {
		repo := &fakeAccountRepo{}
		uc := NewCreateAccountUseCase(repo)

		output, err := uc.Execute(context.Background(), CreateAccountInput{UserID: userID, Name: "Nubank"})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if output.Account.ID == 0 {
			t.Error("expected the store-assigned ID to be set")
		}
	})

	t.Run("rejects an empty name", func(t *testing.T) {
		uc := NewCreateAccountUseCase(&fakeAccountRepo{})

		_, err := uc.Execute(context.Background(), CreateAccountInput{UserID: userID})
		var ledgerErr *domainerror.LedgerError
		if !errors.As(err, &ledgerErr) {
			t.Fatalf("expected LedgerError, got %v", err)
		}
		if ledgerErr.Code != domainerror.ErrCodeAccountNameRequired {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeAccountNameRequired, ledgerErr.Code)
		}
	})

	t.Run("wraps a store rejection as a persistence error", func(t *testing.T) {
		uc := NewCreateAccountUseCase(&fakeAccountRepo{createErr: errors.New("disk full")})

		_, err := uc.Execute(context.Background(), CreateAccountInput{UserID: userID, Name: "Nubank"})
		var ledgerErr *domainerror.LedgerError
		if !errors.As(err, &ledgerErr) {
			t.Fatalf("expected LedgerError, got %v", err)
		}
		if ledgerErr.Kind != domainerror.KindPersistence {
			t.Errorf("expected persistence error, got %s", ledgerErr.Kind)
		}
	})
}

func TestListAccountsUseCase(t *testing.T) {
	userID := uuid.New()

	t.Run("no rows is an empty listing", func(t *testing.T) {
		uc := NewListAccountsUseCase(&fakeAccountRepo{})

		output, err := uc.Execute(context.Background(), ListAccountsInput{UserID: userID})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(output.Accounts) != 0 {
			t.Errorf("expected empty listing, got %d", len(output.Accounts))
		}
	})
}
