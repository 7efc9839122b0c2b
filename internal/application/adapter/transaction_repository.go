package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/lite-finance/backend/internal/domain/entity"
	"github.com/lite-finance/backend/internal/domain/valueobject"
)

// TransactionFilter restricts a transaction listing. UserID is applied
// unconditionally; the optional predicates are ANDed together.
type TransactionFilter struct {
	UserID     uuid.UUID
	Month      *valueobject.Month
	CategoryID *int64
	AccountID  *int64
}

// TransactionRepository defines the persistence operations for transactions.
type TransactionRepository interface {
	// Create persists a new transaction and fills in its generated ID.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByFilter retrieves the transactions matching the filter,
	// denormalized with their category and account, ordered by date
	// descending with ID descending as the tie-breaker. The account join
	// follows left-join semantics: a missing account never drops the row.
	FindByFilter(ctx context.Context, filter TransactionFilter) ([]*entity.TransactionWithRelations, error)
}
