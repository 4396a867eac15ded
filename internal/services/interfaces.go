package services

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Yashuu213/MoneyViewer/internal/models"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(username, password string) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
	AttemptLogin(username, password string) (*models.User, error)
}

// TransactionServicer defines the contract for transaction-related business logic.
type TransactionServicer interface {
	CreateTransaction(userID string, transactionType models.TransactionType, amount decimal.Decimal, description, category string, date time.Time) (*models.Transaction, error)
	GetUserTransactions(userID string) ([]models.Transaction, error)
	DeleteTransaction(userID, transactionID string) error
}

// DebtServicer defines the contract for debt-related business logic.
type DebtServicer interface {
	CreateDebt(userID, name string, debtType models.DebtType, amount decimal.Decimal, description string, date time.Time) (*models.Debt, error)
	GetUserDebts(userID string) ([]models.Debt, error)
	DeleteDebt(userID, debtID string) error
}
