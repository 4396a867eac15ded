package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/Yashuu213/MoneyViewer/internal/errors"
	"github.com/Yashuu213/MoneyViewer/internal/models"
	"github.com/Yashuu213/MoneyViewer/internal/netting"
	"github.com/Yashuu213/MoneyViewer/internal/services"
)

// SummaryHandler serves derived views over the user's records. Every
// response is computed fresh from the current data.
type SummaryHandler struct {
	transactionService services.TransactionServicer
	debtService        services.DebtServicer
}

// NewSummaryHandler creates a new SummaryHandler
func NewSummaryHandler(transactionService services.TransactionServicer, debtService services.DebtServicer) *SummaryHandler {
	return &SummaryHandler{transactionService: transactionService, debtService: debtService}
}

// Totals returns income, expense, and balance across all transactions.
func (h *SummaryHandler) Totals(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	transactions, err := h.transactionService.GetUserTransactions(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, netting.TotalsByType(transactions))
}

// Categories returns per-category sums for the requested transaction type
// (default expense).
func (h *SummaryHandler) Categories(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	txType, err := queryTransactionType(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	transactions, err := h.transactionService.GetUserTransactions(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": netting.TotalsByCategory(transactions, txType)})
}

// Monthly returns per-month sums for the requested transaction type
// (default expense).
func (h *SummaryHandler) Monthly(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	txType, err := queryTransactionType(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	transactions, err := h.transactionService.GetUserTransactions(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	months := netting.MonthlyTotals(transactions, txType)
	if months == nil {
		months = []netting.MonthTotal{}
	}
	c.JSON(http.StatusOK, gin.H{"months": months})
}

// Lending returns per-person net balances plus the overall owed-to/owed-by
// totals derived from the user's debt entries.
func (h *SummaryHandler) Lending(c *gin.Context) {
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

	people := netting.AllPeopleBalances(debts)
	if people == nil {
		people = []netting.PersonBalance{}
	}
	owedToUser, owedByUser := netting.LendingSummary(people)

	c.JSON(http.StatusOK, gin.H{
		"people":       people,
		"owed_to_user": owedToUser,
		"owed_by_user": owedByUser,
	})
}

func queryTransactionType(c *gin.Context) (models.TransactionType, error) {
	switch raw := c.DefaultQuery("type", "expense"); raw {
	case "income":
		return models.TransactionTypeIncome, nil
	case "expense":
		return models.TransactionTypeExpense, nil
	default:
		return "", apperrors.WithMessage(apperrors.ErrInvalidInput, "type must be income or expense")
	}
}
