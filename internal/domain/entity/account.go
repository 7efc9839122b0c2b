package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account represents a money account (bank account, wallet, card) owned by a
// single user. Transactions may optionally reference an account.
type Account struct {
	ID        int64
	UserID    uuid.UUID
	Name      string
	CreatedAt time.Time
}

// NewAccount creates a new Account entity. The ID is assigned by the store.
func NewAccount(userID uuid.UUID, name string) *Account {
	return &Account{
		UserID:    userID,
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
}
