// Package employee models bank staff who may look up customers.
package employee

import (
	"fmt"
	"time"

	"github.com/amirasaad/banking/pkg/utils"
	"github.com/amirasaad/banking/pkg/validation"
	"github.com/google/uuid"
)

// Params is the input for a new employee.
type Params struct {
	Username  string `json:"user_name" validate:"username"`
	Password  string `json:"password" validate:"password"`
	FirstName string `json:"first_name" validate:"required,max=255"`
	LastName  string `json:"last_name" validate:"required,max=255"`
}

// Employee is an operator identity.
type Employee struct {
	ID           uuid.UUID
	Username     string
	PasswordHash string
	FirstName    string
	LastName     string
	CreatedAt    time.Time
}

func New(p Params) (*Employee, error) {
	if err := validation.Struct(p); err != nil {
		return nil, err
	}
	hashedPassword, err := utils.HashPassword(p.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	return &Employee{
		ID:           uuid.New(),
		Username:     p.Username,
		PasswordHash: hashedPassword,
		FirstName:    p.FirstName,
		LastName:     p.LastName,
		CreatedAt:    time.Now().UTC(),
	}, nil
}

// NewFromData creates an Employee from raw data (used for DB hydration).
func NewFromData(
	id uuid.UUID,
	username, passwordHash, firstName, lastName string,
	created time.Time,
) *Employee {
	return &Employee{
		ID:           id,
		Username:     username,
		PasswordHash: passwordHash,
		FirstName:    firstName,
		LastName:     lastName,
		CreatedAt:    created,
	}
}

func (e *Employee) CheckPassword(password string) bool {
	return utils.CheckPasswordHash(password, e.PasswordHash)
}
