package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DebtType represents the direction of a peer-to-peer entry
type DebtType string

const (
	// DebtTypeLent means the current user paid on the counterparty's
	// behalf: the counterparty owes the user.
	DebtTypeLent DebtType = "lent"
	// DebtTypeBorrowed means the counterparty paid: the user owes them.
	DebtTypeBorrowed DebtType = "borrowed"
)

// Debt represents a single lent/borrowed entry against a counterparty.
// Name is stored verbatim; balance lookups match it case-insensitively.
type Debt struct {
	Base
	UserID      string          `gorm:"type:uuid;index" json:"-"`
	Name        string          `gorm:"not null" json:"name"`
	Amount      decimal.Decimal `gorm:"type:decimal(20,2);not null" json:"amount"`
	Type        DebtType        `gorm:"not null" json:"type"`
	Description string          `json:"description"`
	Date        time.Time       `gorm:"not null;index" json:"date"`
}
