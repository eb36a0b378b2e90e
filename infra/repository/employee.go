package repository

import (
	"context"

	"github.com/amirasaad/banking/pkg/domain/employee"
	"github.com/amirasaad/banking/pkg/repository"
	"gorm.io/gorm"
)

type employeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository creates an employee repository using the provided *gorm.DB.
func NewEmployeeRepository(db *gorm.DB) repository.EmployeeRepository {
	return &employeeRepository{db: db}
}

func (r *employeeRepository) Create(ctx context.Context, emp *employee.Employee) error {
	row := employeeToRow(emp)
	return WrapError(func() error {
		return r.db.WithContext(ctx).Create(&row).Error
	})
}

func (r *employeeRepository) GetByUsername(ctx context.Context, username string) (*employee.Employee, error) {
	var row Employee
	if err := r.db.WithContext(ctx).Where("user_name = ?", username).First(&row).Error; err != nil {
		return nil, ignoreNotFound(err)
	}
	return employeeFromRow(&row), nil
}

var _ repository.EmployeeRepository = (*employeeRepository)(nil)
