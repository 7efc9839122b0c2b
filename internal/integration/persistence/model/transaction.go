package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/lite-finance/backend/internal/domain/entity"
)

// TransactionModel represents the transactions table in the database.
type TransactionModel struct {
	ID          int64           `gorm:"primaryKey;autoIncrement"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Date        time.Time       `gorm:"type:date;not null;index"`
	Description string          `gorm:"type:varchar(255)"`
	CategoryID  int64           `gorm:"not null;index"`
	AccountID   *int64          `gorm:"index"`
	Status      string          `gorm:"type:varchar(10);not null;default:'confirmado'"`
	Tags        pq.StringArray  `gorm:"type:text[]"`
	CreatedAt   time.Time       `gorm:"not null"`

	// Relationships (not loaded by default, use Preload)
	Category *CategoryModel `gorm:"foreignKey:CategoryID;references:ID"`
	Account  *AccountModel  `gorm:"foreignKey:AccountID;references:ID"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transacoes"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	tags := []string(m.Tags)
	if tags == nil {
		tags = []string{}
	}

	return &entity.Transaction{
		ID:          m.ID,
		UserID:      m.UserID,
		Amount:      m.Amount,
		Date:        m.Date,
		Description: m.Description,
		CategoryID:  m.CategoryID,
		AccountID:   m.AccountID,
		Status:      entity.TransactionStatus(m.Status),
		Tags:        tags,
		CreatedAt:   m.CreatedAt,
	}
}

// ToEntityWithRelations converts a TransactionModel with its preloaded
// category and account to a TransactionWithRelations entity.
func (m *TransactionModel) ToEntityWithRelations() *entity.TransactionWithRelations {
	result := &entity.TransactionWithRelations{
		Transaction: m.ToEntity(),
	}

	if m.Category != nil {
		result.Category = m.Category.ToEntity()
	}
	if m.Account != nil {
		result.Account = m.Account.ToEntity()
	}

	return result
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction
// entity.
func TransactionFromEntity(transaction *entity.Transaction) *TransactionModel {
	return &TransactionModel{
		ID:          transaction.ID,
		UserID:      transaction.UserID,
		Amount:      transaction.Amount,
		Date:        transaction.Date,
		Description: transaction.Description,
		CategoryID:  transaction.CategoryID,
		AccountID:   transaction.AccountID,
		Status:      string(transaction.Status),
		Tags:        pq.StringArray(transaction.Tags),
		CreatedAt:   transaction.CreatedAt,
	}
}
