package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	ExpensePending  = "pending"
	ExpenseApproved = "approved"
	ExpenseRejected = "rejected"
)

type IncomeCategory struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name        string    `gorm:"not null;size:100;uniqueIndex" json:"name"`
	Description *string   `gorm:"size:500" json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func (IncomeCategory) TableName() string {
	return "income_categories"
}

type ExpenseCategory struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name        string    `gorm:"not null;size:100;uniqueIndex" json:"name"`
	Description *string   `gorm:"size:500" json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func (ExpenseCategory) TableName() string {
	return "expense_categories"
}

type IncomeRecord struct {
	ID              uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Amount          float64         `gorm:"not null" json:"amount"`
	CategoryID      *uuid.UUID      `gorm:"type:uuid;index" json:"category_id,omitempty"`
	Source          *string         `gorm:"size:255" json:"source,omitempty"`
	Description     *string         `gorm:"size:1000" json:"description,omitempty"`
	ReceiptNumber   *string         `gorm:"size:100" json:"receipt_number,omitempty"`
	TransactionDate time.Time       `gorm:"type:date;not null;index" json:"transaction_date"`
	RecordedBy      *uuid.UUID      `gorm:"type:uuid" json:"recorded_by,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	Category        *IncomeCategory `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

func (IncomeRecord) TableName() string {
	return "income_records"
}

// ExpenseRecord carries an approval lifecycle: created as pending, then
// approved or rejected exactly once by a finance-capable user. Rejected
// expenses are kept and still count toward raw spend totals.
type ExpenseRecord struct {
	ID              uuid.UUID        `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Amount          float64          `gorm:"not null" json:"amount"`
	CategoryID      *uuid.UUID       `gorm:"type:uuid;index" json:"category_id,omitempty"`
	Description     *string          `gorm:"size:1000" json:"description,omitempty"`
	Status          string           `gorm:"size:20;not null;default:'pending';index" json:"status"`
	TransactionDate time.Time        `gorm:"type:date;not null;index" json:"transaction_date"`
	RecordedBy      *uuid.UUID       `gorm:"type:uuid" json:"recorded_by,omitempty"`
	ApprovedBy      *uuid.UUID       `gorm:"type:uuid" json:"approved_by,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
	Category        *ExpenseCategory `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

func (ExpenseRecord) TableName() string {
	return "expense_records"
}

// FundAccount tracks a named pool of money. The balance is maintained by
// hand; income and expense records are not posted against it.
type FundAccount struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name        string    `gorm:"not null;size:100;uniqueIndex" json:"name"`
	Balance     float64   `gorm:"not null;default:0" json:"balance"`
	Description *string   `gorm:"size:500" json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (FundAccount) TableName() string {
	return "fund_accounts"
}
