package repository

import (
	"context"

	"github.com/amirasaad/banking/pkg/domain/account"
	"github.com/amirasaad/banking/pkg/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a transaction repository using the provided *gorm.DB.
func NewTransactionRepository(db *gorm.DB) repository.TransactionRepository {
	return &transactionRepository{db: db}
}

// Create implements repository.TransactionRepository.
func (r *transactionRepository) Create(ctx context.Context, tx *account.Transaction) error {
	row := transactionToRow(tx)
	return WrapError(func() error {
		return r.db.WithContext(ctx).Create(&row).Error
	})
}

// ListByAccount implements repository.TransactionRepository.
func (r *transactionRepository) ListByAccount(
	ctx context.Context,
	accountID uuid.UUID,
	limit int,
) ([]*account.Transaction, error) {
	db := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("transaction_timestamp desc")
	if limit > 0 {
		db = db.Limit(limit)
	}
	var rows []Transaction
	if err := db.Find(&rows).Error; err != nil {
		return nil, err
	}
	result := make([]*account.Transaction, 0, len(rows))
	for i := range rows {
		result = append(result, transactionFromRow(&rows[i]))
	}
	return result, nil
}

var _ repository.TransactionRepository = (*transactionRepository)(nil)
