package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/lite-finance/backend/internal/application/adapter"
	"github.com/lite-finance/backend/internal/domain/entity"
	"github.com/lite-finance/backend/internal/integration/persistence/model"
)

// transactionRepository implements the adapter.TransactionRepository interface.
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository instance.
func NewTransactionRepository(db *gorm.DB) adapter.TransactionRepository {
	return &transactionRepository{
		db: db,
	}
}

// Create creates a new transaction in the database and copies the generated
// ID back into the entity.
func (r *transactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	transactionModel := model.TransactionFromEntity(transaction)
	result := r.db.WithContext(ctx).Create(transactionModel)
	if result.Error != nil {
		return result.Error
	}
	transaction.ID = transactionModel.ID
	return nil
}

// FindByFilter retrieves transactions matching the filter, denormalized with
// their category and account. The user scope is always applied; the month
// window is the half-open interval [start, next month start).
func (r *transactionRepository) FindByFilter(ctx context.Context, filter adapter.TransactionFilter) ([]*entity.TransactionWithRelations, error) {
	query := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Where("user_id = ?", filter.UserID)

	if filter.Month != nil {
		query = query.Where("date >= ? AND date < ?", filter.Month.Start(), filter.Month.End())
	}
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.AccountID != nil {
		query = query.Where("account_id = ?", *filter.AccountID)
	}

	var transactionModels []model.TransactionModel
	result := query.
		Preload("Category").
		Preload("Account").
		Order("date DESC, id DESC").
		Find(&transactionModels)
	if result.Error != nil {
		return nil, result.Error
	}

	rows := make([]*entity.TransactionWithRelations, len(transactionModels))
	for i, tm := range transactionModels {
		rows[i] = tm.ToEntityWithRelations()
	}
	return rows, nil
}
