package repository

import (
	"context"
	"fmt"

	"github.com/amirasaad/banking/pkg/domain"
	"github.com/amirasaad/banking/pkg/domain/account"
	"github.com/amirasaad/banking/pkg/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates an account repository using the provided *gorm.DB.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

// Create implements repository.AccountRepository.
func (r *accountRepository) Create(ctx context.Context, acc *account.Account) error {
	row := accountToRow(acc)
	return WrapError(func() error {
		return r.db.WithContext(ctx).Create(&row).Error
	})
}

// Update implements repository.AccountRepository. Only the balance and the
// updated-at timestamp change after creation.
func (r *accountRepository) Update(ctx context.Context, acc *account.Account) error {
	result := r.db.WithContext(ctx).
		Model(&Account{}).
		Where("id = ?", acc.ID).
		Updates(map[string]any{
			"balance":    acc.Balance(),
			"updated_at": acc.UpdatedAt,
		})
	if result.Error != nil {
		return MapGormErrorToDomain(result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Get implements repository.AccountRepository.
func (r *accountRepository) Get(ctx context.Context, id uuid.UUID) (*account.Account, error) {
	var row Account
	if err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		return nil, ignoreNotFound(err)
	}
	return accountFromRow(&row)
}

// ListByOwner implements repository.AccountRepository.
func (r *accountRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*account.Account, error) {
	var rows []Account
	if err := r.db.WithContext(ctx).
		Where("individual_id = ?", ownerID).
		Order("created_at").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	result := make([]*account.Account, 0, len(rows))
	for i := range rows {
		acc, err := accountFromRow(&rows[i])
		if err != nil {
			return nil, fmt.Errorf("account %s: %w", rows[i].ID, err)
		}
		result = append(result, acc)
	}
	return result, nil
}

var _ repository.AccountRepository = (*accountRepository)(nil)
