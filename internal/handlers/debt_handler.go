package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "github.com/Yashuu213/MoneyViewer/internal/errors"
	"github.com/Yashuu213/MoneyViewer/internal/models"
	"github.com/Yashuu213/MoneyViewer/internal/services"
)

// DebtHandler handles debt-related requests
type DebtHandler struct {
	debtService services.DebtServicer
}

// NewDebtHandler creates a new DebtHandler
func NewDebtHandler(debtService services.DebtServicer) *DebtHandler {
	return &DebtHandler{debtService: debtService}
}

// CreateDebtRequest represents the debt creation payload.
type CreateDebtRequest struct {
	Name        string           `json:"name" binding:"required,max=128"`
	Amount      *decimal.Decimal `json:"amount" binding:"required"`
	Type        string           `json:"type" binding:"required,debt_type"`
	Description string           `json:"description" binding:"max=255"`
	Date        *time.Time       `json:"date"`
}

// Create records a new debt entry for the authenticated user.
func (h *DebtHandler) Create(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateDebtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	date := time.Time{}
	if req.Date != nil {
		date = *req.Date
	}

	debt, err := h.debtService.CreateDebt(
		userID, req.Name, models.DebtType(req.Type), *req.Amount, req.Description, date)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, debt)
}

// List returns the authenticated user's debt entries, newest first.
func (h *DebtHandler) List(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	debts, err := h.debtService.GetUserDebts(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"debts": debts})
}

// Delete removes a debt entry by id. Unknown ids still return 204.
func (h *DebtHandler) Delete(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.debtService.DeleteDebt(userID, c.Param("id")); err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
