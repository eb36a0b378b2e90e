package repository

import (
	"context"
	"strings"

	"github.com/amirasaad/banking/pkg/domain/individual"
	"github.com/amirasaad/banking/pkg/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type individualRepository struct {
	db *gorm.DB
}

// NewIndividualRepository creates an individual repository using the provided *gorm.DB.
func NewIndividualRepository(db *gorm.DB) repository.IndividualRepository {
	return &individualRepository{db: db}
}

// Create implements repository.IndividualRepository.
func (r *individualRepository) Create(ctx context.Context, ind *individual.Individual) error {
	row := individualToRow(ind)
	return WrapError(func() error {
		return r.db.WithContext(ctx).Create(&row).Error
	})
}

// Get implements repository.IndividualRepository.
func (r *individualRepository) Get(ctx context.Context, id uuid.UUID) (*individual.Individual, error) {
	var row Individual
	if err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		return nil, ignoreNotFound(err)
	}
	return individualFromRow(&row), nil
}

// GetByUsername implements repository.IndividualRepository.
func (r *individualRepository) GetByUsername(ctx context.Context, username string) (*individual.Individual, error) {
	var row Individual
	if err := r.db.WithContext(ctx).Where("user_name = ?", username).First(&row).Error; err != nil {
		return nil, ignoreNotFound(err)
	}
	return individualFromRow(&row), nil
}

// Search implements repository.IndividualRepository.
func (r *individualRepository) Search(ctx context.Context, query string, limit int) ([]*individual.Individual, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}
	// Rank the exact match before applying the limit so it is never cut off.
	db := r.db.WithContext(ctx).
		Where("user_name ILIKE ?", "%"+escapeLike(query)+"%").
		Order(clause.OrderBy{Expression: clause.Expr{
			SQL:                "user_name = ? DESC, user_name",
			Vars:               []interface{}{query},
			WithoutParentheses: true,
		}})
	if limit > 0 {
		db = db.Limit(limit)
	}
	var rows []Individual
	if err := db.Find(&rows).Error; err != nil {
		return nil, err
	}
	result := make([]*individual.Individual, 0, len(rows))
	for i := range rows {
		result = append(result, individualFromRow(&rows[i]))
	}
	return result, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

var _ repository.IndividualRepository = (*individualRepository)(nil)
