package services

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "github.com/Yashuu213/MoneyViewer/internal/errors"
	"github.com/Yashuu213/MoneyViewer/internal/models"
)

// debtService handles debt-related business logic.
type debtService struct {
	db *gorm.DB
}

// NewDebtService creates a new DebtServicer.
func NewDebtService(db *gorm.DB) DebtServicer {
	return &debtService{db: db}
}

// CreateDebt records money lent to or borrowed from the named counterparty.
// A zero date defaults to now.
func (s *debtService) CreateDebt(userID, name string, debtType models.DebtType, amount decimal.Decimal, description string, date time.Time) (*models.Debt, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrValidation, "name is required")
	}
	if amount.IsNegative() {
		return nil, apperrors.WithMessage(apperrors.ErrValidation, "amount must not be negative")
	}
	switch debtType {
	case models.DebtTypeLent, models.DebtTypeBorrowed:
	default:
		return nil, apperrors.WithMessage(apperrors.ErrValidation, "type must be lent or borrowed")
	}
	if date.IsZero() {
		date = time.Now()
	}

	debt := &models.Debt{
		UserID:      userID,
		Name:        name,
		Type:        debtType,
		Amount:      amount,
		Description: description,
		Date:        date,
	}
	if err := s.db.Create(debt).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return debt, nil
}

// GetUserDebts lists the user's debt entries, newest first.
func (s *debtService) GetUserDebts(userID string) ([]models.Debt, error) {
	var debts []models.Debt
	if err := s.db.
		Where("user_id = ?", userID).
		Order("date DESC, created_at DESC").
		Find(&debts).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return debts, nil
}

// DeleteDebt removes the user's debt entry by id. Unknown ids are a no-op.
func (s *debtService) DeleteDebt(userID, debtID string) error {
	if err := s.db.
		Where("id = ? AND user_id = ?", debtID, userID).
		Delete(&models.Debt{}).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
