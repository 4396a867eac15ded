package services

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "github.com/Yashuu213/MoneyViewer/internal/errors"
	"github.com/Yashuu213/MoneyViewer/internal/models"
)

// transactionService handles transaction-related business logic.
type transactionService struct {
	db *gorm.DB
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(db *gorm.DB) TransactionServicer {
	return &transactionService{db: db}
}

// CreateTransaction records a new income or expense entry for the user. A
// zero date defaults to now.
func (s *transactionService) CreateTransaction(userID string, transactionType models.TransactionType, amount decimal.Decimal, description, category string, date time.Time) (*models.Transaction, error) {
	if description == "" {
		return nil, apperrors.WithMessage(apperrors.ErrValidation, "description is required")
	}
	if amount.IsNegative() {
		return nil, apperrors.WithMessage(apperrors.ErrValidation, "amount must not be negative")
	}
	switch transactionType {
	case models.TransactionTypeIncome, models.TransactionTypeExpense:
	default:
		return nil, apperrors.WithMessage(apperrors.ErrValidation, "type must be income or expense")
	}
	if date.IsZero() {
		date = time.Now()
	}

	tx := &models.Transaction{
		UserID:      userID,
		Type:        transactionType,
		Amount:      amount,
		Description: description,
		Category:    category,
		Date:        date,
	}
	if err := s.db.Create(tx).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return tx, nil
}

// GetUserTransactions lists the user's transactions, newest first.
func (s *transactionService) GetUserTransactions(userID string) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := s.db.
		Where("user_id = ?", userID).
		Order("date DESC, created_at DESC").
		Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return transactions, nil
}

// DeleteTransaction removes the user's transaction by id. Deleting an id
// that does not exist (or belongs to someone else) is a no-op.
func (s *transactionService) DeleteTransaction(userID, transactionID string) error {
	if err := s.db.
		Where("id = ? AND user_id = ?", transactionID, userID).
		Delete(&models.Transaction{}).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
