package netting

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yashuu213/MoneyViewer/internal/models"
)

func tx(amount int64, txType models.TransactionType, category string, date time.Time) models.Transaction {
	return models.Transaction{
		Amount:   decimal.NewFromInt(amount),
		Type:     txType,
		Category: category,
		Date:     date,
	}
}

func debt(name string, amount int64, debtType models.DebtType) models.Debt {
	return models.Debt{
		Name:   name,
		Amount: decimal.NewFromInt(amount),
		Type:   debtType,
		Date:   time.Now(),
	}
}

func TestTotalsByType(t *testing.T) {
	t.Run("empty_snapshot_is_all_zero", func(t *testing.T) {
		totals := TotalsByType(nil)
		assert.True(t, totals.Income.IsZero())
		assert.True(t, totals.Expense.IsZero())
		assert.True(t, totals.Balance.IsZero())
	})

	t.Run("balance_is_income_minus_expense", func(t *testing.T) {
		now := time.Now()
		totals := TotalsByType([]models.Transaction{
			tx(50, models.TransactionTypeIncome, "Salary", now),
			tx(20, models.TransactionTypeExpense, "Food", now),
		})
		assert.True(t, totals.Income.Equal(decimal.NewFromInt(50)), "income %s", totals.Income)
		assert.True(t, totals.Expense.Equal(decimal.NewFromInt(20)), "expense %s", totals.Expense)
		assert.True(t, totals.Balance.Equal(totals.Income.Sub(totals.Expense)))
	})
}

func TestTotalsByCategory(t *testing.T) {
	now := time.Now()
	transactions := []models.Transaction{
		tx(50, models.TransactionTypeIncome, "Salary", now),
		tx(20, models.TransactionTypeExpense, "Food", now),
		tx(5, models.TransactionTypeExpense, "Food", now),
		tx(7, models.TransactionTypeExpense, "Pet Supplies", now),
		tx(3, models.TransactionTypeExpense, "", now),
	}

	sums := TotalsByCategory(transactions, models.TransactionTypeExpense)

	require.Len(t, sums, 3)
	assert.True(t, sums["Food"].Equal(decimal.NewFromInt(25)))
	// Labels outside the recognized set stay verbatim.
	assert.True(t, sums["Pet Supplies"].Equal(decimal.NewFromInt(7)))
	// A missing label buckets under Uncategorized.
	assert.True(t, sums[models.CategoryUncategorized].Equal(decimal.NewFromInt(3)))
	// Income records never leak into an expense breakdown.
	_, ok := sums["Salary"]
	assert.False(t, ok)
}

func TestMonthlyTotals(t *testing.T) {
	jan := time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2025, time.February, 2, 0, 0, 0, 0, time.UTC)

	// Snapshot order is newest-first; label order must follow first
	// occurrence, not calendar order.
	transactions := []models.Transaction{
		tx(10, models.TransactionTypeExpense, "Food", feb),
		tx(4, models.TransactionTypeExpense, "Food", jan),
		tx(6, models.TransactionTypeExpense, "Transport", feb),
	}

	totals := MonthlyTotals(transactions, models.TransactionTypeExpense)

	require.Len(t, totals, 2)
	assert.Equal(t, "Feb", totals[0].Label)
	assert.True(t, totals[0].Amount.Equal(decimal.NewFromInt(16)))
	assert.Equal(t, "Jan", totals[1].Label)
	assert.True(t, totals[1].Amount.Equal(decimal.NewFromInt(4)))
}

func TestBalanceForPerson(t *testing.T) {
	debts := []models.Debt{
		debt("Alex", 100, models.DebtTypeLent),
		debt("Alex", 40, models.DebtTypeBorrowed),
	}
	balance := BalanceForPerson(debts, "Alex")
	assert.True(t, balance.Equal(decimal.NewFromInt(60)), "got %s", balance)
}

func TestBalanceForPersonCaseInsensitive(t *testing.T) {
	debts := []models.Debt{
		debt("Sam", 30, models.DebtTypeLent),
		debt("sam", 10, models.DebtTypeLent),
	}
	balance := BalanceForPerson(debts, "SAM")
	assert.True(t, balance.Equal(decimal.NewFromInt(40)), "got %s", balance)
}

func TestAllPeopleBalances(t *testing.T) {
	t.Run("groups_case_insensitively_under_first_seen_casing", func(t *testing.T) {
		debts := []models.Debt{
			debt("Sam", 30, models.DebtTypeLent),
			debt("sam", 10, models.DebtTypeBorrowed),
		}

		people := AllPeopleBalances(debts)

		require.Len(t, people, 1)
		assert.Equal(t, "Sam", people[0].Name)
		assert.True(t, people[0].Balance.Equal(decimal.NewFromInt(20)))
		require.Len(t, people[0].Transactions, 2)
		assert.True(t, people[0].Transactions[0].NetAmount.Equal(decimal.NewFromInt(30)))
		assert.True(t, people[0].Transactions[1].NetAmount.Equal(decimal.NewFromInt(-10)))

		// Consistent with the single-person lookup.
		assert.True(t, BalanceForPerson(debts, "SAM").Equal(people[0].Balance))
	})

	t.Run("first_seen_order", func(t *testing.T) {
		debts := []models.Debt{
			debt("Zoe", 5, models.DebtTypeLent),
			debt("Alex", 3, models.DebtTypeLent),
			debt("zoe", 2, models.DebtTypeLent),
		}

		people := AllPeopleBalances(debts)

		require.Len(t, people, 2)
		assert.Equal(t, "Zoe", people[0].Name)
		assert.Equal(t, "Alex", people[1].Name)
	})

	t.Run("idempotent_and_conserves_contributions", func(t *testing.T) {
		debts := []models.Debt{
			debt("Alex", 100, models.DebtTypeLent),
			debt("Kim", 40, models.DebtTypeBorrowed),
			debt("alex", 25, models.DebtTypeBorrowed),
		}

		first := AllPeopleBalances(debts)
		second := AllPeopleBalances(debts)
		assert.Equal(t, first, second)

		sumBalances := decimal.Zero
		for _, p := range first {
			sumBalances = sumBalances.Add(p.Balance)
		}
		sumContributions := decimal.Zero
		for _, d := range debts {
			sumContributions = sumContributions.Add(signedAmount(d))
		}
		assert.True(t, sumBalances.Equal(sumContributions))
	})
}

func TestLendingSummary(t *testing.T) {
	people := AllPeopleBalances([]models.Debt{
		debt("Alex", 100, models.DebtTypeLent),
		debt("Kim", 40, models.DebtTypeBorrowed),
		debt("Lee", 10, models.DebtTypeLent),
		debt("Lee", 10, models.DebtTypeBorrowed),
	})

	owedToUser, owedByUser := LendingSummary(people)

	assert.True(t, owedToUser.Equal(decimal.NewFromInt(100)), "owed to user %s", owedToUser)
	assert.True(t, owedByUser.Equal(decimal.NewFromInt(40)), "owed by user %s", owedByUser)
}
