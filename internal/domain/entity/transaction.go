package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionStatus represents the lifecycle status of a transaction.
type TransactionStatus string

const (
	TransactionStatusPendente   TransactionStatus = "pendente"
	TransactionStatusConfirmado TransactionStatus = "confirmado"
	TransactionStatusCancelado  TransactionStatus = "cancelado"
)

// Transaction represents a single ledger entry. Amount sign convention:
// positive is an inflow, negative is an outflow. The engine never coerces the
// sign based on the category kind.
type Transaction struct {
	ID          int64
	UserID      uuid.UUID
	Amount      decimal.Decimal
	Date        time.Time
	Description string
	CategoryID  int64
	AccountID   *int64
	Status      TransactionStatus
	Tags        []string
	CreatedAt   time.Time
}

// NewTransaction creates a new Transaction entity. The ID is assigned by the
// store.
func NewTransaction(
	userID uuid.UUID,
	amount decimal.Decimal,
	date time.Time,
	description string,
	categoryID int64,
	accountID *int64,
	status TransactionStatus,
	tags []string,
) *Transaction {
	if tags == nil {
		tags = []string{}
	}

	return &Transaction{
		UserID:      userID,
		Amount:      amount,
		Date:        date,
		Description: description,
		CategoryID:  categoryID,
		AccountID:   accountID,
		Status:      status,
		Tags:        tags,
		CreatedAt:   time.Now().UTC(),
	}
}

// TransactionWithRelations represents a transaction denormalized with its
// category and, when present, its account. The category is a required
// reference; the account join follows left-join semantics.
type TransactionWithRelations struct {
	Transaction *Transaction
	Category    *Category
	Account     *Account
}

// IsCreatableTransactionStatus reports whether the status is accepted on
// transaction creation. Cancellation is a later lifecycle step, never an
// input.
func IsCreatableTransactionStatus(status TransactionStatus) bool {
	return status == TransactionStatusPendente || status == TransactionStatusConfirmado
}
