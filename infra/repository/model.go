package repository

import (
	"time"

	"github.com/amirasaad/banking/pkg/domain/account"
	"github.com/amirasaad/banking/pkg/domain/employee"
	"github.com/amirasaad/banking/pkg/domain/individual"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Individual is the individuals table row.
type Individual struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserName     string    `gorm:"column:user_name;uniqueIndex;not null;size:255"`
	PasswordHash string    `gorm:"column:password_hash;not null;size:255"`
	FirstName    string    `gorm:"size:255;not null"`
	LastName     string    `gorm:"size:255;not null"`
	AgeNum       int       `gorm:"column:age_num;not null"`
	Address      string    `gorm:"size:255;not null"`
	CreatedAt    time.Time
}

// TableName specifies the table name for the Individual model.
func (Individual) TableName() string { return "individuals" }

// Account is the accounts table row.
type Account struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	IndividualID uuid.UUID       `gorm:"column:individual_id;type:uuid;not null;index"`
	AccountType  string          `gorm:"column:account_type;size:32;not null"`
	Balance      int64           `gorm:"not null"`
	LiabilityFg  bool            `gorm:"column:liability_fg;not null"`
	InterestRate decimal.Decimal `gorm:"column:interest_rate;type:numeric(10,4);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName specifies the table name for the Account model.
func (Account) TableName() string { return "accounts" }

// Transaction is the transactions table row.
type Transaction struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	AccountID       uuid.UUID `gorm:"column:account_id;type:uuid;not null;index"`
	TransactionType string    `gorm:"column:transaction_type;size:6;not null"`
	Amount          int64     `gorm:"not null"`
	CreatedAt       time.Time `gorm:"column:transaction_timestamp"`
}

// TableName specifies the table name for the Transaction model.
func (Transaction) TableName() string { return "transactions" }

// Employee is the employees table row.
type Employee struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserName     string    `gorm:"column:user_name;uniqueIndex;not null;size:255"`
	PasswordHash string    `gorm:"column:password_hash;not null;size:255"`
	FirstName    string    `gorm:"size:255;not null"`
	LastName     string    `gorm:"size:255;not null"`
	CreatedAt    time.Time
}

// TableName specifies the table name for the Employee model.
func (Employee) TableName() string { return "employees" }

// --- Mappers ---

func individualToRow(ind *individual.Individual) Individual {
	return Individual{
		ID:           ind.ID,
		UserName:     ind.Username,
		PasswordHash: ind.PasswordHash,
		FirstName:    ind.FirstName,
		LastName:     ind.LastName,
		AgeNum:       ind.Age,
		Address:      ind.Address,
		CreatedAt:    ind.CreatedAt,
	}
}

func individualFromRow(row *Individual) *individual.Individual {
	return individual.NewFromData(
		row.ID,
		row.UserName,
		row.PasswordHash,
		row.FirstName,
		row.LastName,
		row.AgeNum,
		row.Address,
		row.CreatedAt,
	)
}

func accountToRow(acc *account.Account) Account {
	return Account{
		ID:           acc.ID,
		IndividualID: acc.OwnerID,
		AccountType:  string(acc.Kind),
		Balance:      acc.Balance(),
		LiabilityFg:  acc.Polarity.IsLiability(),
		InterestRate: acc.InterestRate,
		CreatedAt:    acc.CreatedAt,
		UpdatedAt:    acc.UpdatedAt,
	}
}

// accountFromRow goes through the builder so a corrupted row (negative
// balance, unknown kind) surfaces as a validation error instead of an
// invalid Account.
func accountFromRow(row *Account) (*account.Account, error) {
	return account.New().
		WithID(row.ID).
		WithOwnerID(row.IndividualID).
		WithKind(account.Kind(row.AccountType)).
		WithPolarity(account.PolarityFromFlag(row.LiabilityFg)).
		WithBalance(row.Balance).
		WithInterestRate(row.InterestRate).
		WithCreatedAt(row.CreatedAt).
		WithUpdatedAt(row.UpdatedAt).
		Build()
}

func transactionToRow(tx *account.Transaction) Transaction {
	return Transaction{
		ID:              tx.ID,
		AccountID:       tx.AccountID,
		TransactionType: string(tx.Kind),
		Amount:          tx.Amount,
		CreatedAt:       tx.CreatedAt,
	}
}

func transactionFromRow(row *Transaction) *account.Transaction {
	return account.NewTransactionFromData(
		row.ID,
		row.AccountID,
		account.TransactionKind(row.TransactionType),
		row.Amount,
		row.CreatedAt,
	)
}

func employeeToRow(emp *employee.Employee) Employee {
	return Employee{
		ID:           emp.ID,
		UserName:     emp.Username,
		PasswordHash: emp.PasswordHash,
		FirstName:    emp.FirstName,
		LastName:     emp.LastName,
		CreatedAt:    emp.CreatedAt,
	}
}

func employeeFromRow(row *Employee) *employee.Employee {
	return employee.NewFromData(
		row.ID,
		row.UserName,
		row.PasswordHash,
		row.FirstName,
		row.LastName,
		row.CreatedAt,
	)
}
