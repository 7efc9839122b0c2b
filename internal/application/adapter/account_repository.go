package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/lite-finance/backend/internal/domain/entity"
)

// AccountRepository defines the persistence operations for accounts.
type AccountRepository interface {
	// Create persists a new account and fills in its generated ID.
	Create(ctx context.Context, account *entity.Account) error

	// FindByUser retrieves all accounts of a user ordered by name ascending.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Account, error)

	// FindByIDAndUser retrieves an account by ID, constrained to the given
	// user. Returns domainerror.ErrAccountNotFound when no such row exists
	// for that user.
	FindByIDAndUser(ctx context.Context, id int64, userID uuid.UUID) (*entity.Account, error)
}
