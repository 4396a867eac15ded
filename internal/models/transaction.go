package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType represents the type of transaction
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Transaction represents a single income or expense record. The amount is
// always non-negative; the sign is carried by Type.
type Transaction struct {
	Base
	UserID      string          `gorm:"type:uuid;index" json:"-"`
	Amount      decimal.Decimal `gorm:"type:decimal(20,2);not null" json:"amount"`
	Description string          `gorm:"not null" json:"description"`
	Type        TransactionType `gorm:"not null" json:"type"`
	Category    string          `json:"category"`
	Date        time.Time       `gorm:"not null;index" json:"date"`
}
