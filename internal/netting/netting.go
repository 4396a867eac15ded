// Package netting derives aggregate views from ledger snapshots. All
// functions are pure and deterministic: they are recomputed on every read
// rather than cached, which is cheap at the expected record counts.
package netting

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Yashuu213/MoneyViewer/internal/models"
)

// Totals holds the income/expense aggregation of a transaction snapshot.
// Balance is always Income minus Expense.
type Totals struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Balance decimal.Decimal `json:"balance"`
}

// MonthTotal is one month's aggregated amount. Label is the short month
// name derived from the record date.
type MonthTotal struct {
	Label  string          `json:"label"`
	Amount decimal.Decimal `json:"amount"`
}

// DebtEntry is a debt annotated with its signed contribution to the
// counterparty's balance.
type DebtEntry struct {
	models.Debt
	NetAmount decimal.Decimal `json:"net_amount"`
}

// PersonBalance is the derived net position against one counterparty.
// Positive means the counterparty owes the user; negative means the user
// owes the counterparty. Name carries the first-seen casing.
type PersonBalance struct {
	Name         string          `json:"name"`
	Balance      decimal.Decimal `json:"balance"`
	Transactions []DebtEntry     `json:"transactions"`
}

// TotalsByType sums transaction amounts grouped by type.
func TotalsByType(transactions []models.Transaction) Totals {
	t := Totals{Income: decimal.Zero, Expense: decimal.Zero, Balance: decimal.Zero}
	for _, tx := range transactions {
		switch tx.Type {
		case models.TransactionTypeIncome:
			t.Income = t.Income.Add(tx.Amount)
		case models.TransactionTypeExpense:
			t.Expense = t.Expense.Add(tx.Amount)
		}
	}
	t.Balance = t.Income.Sub(t.Expense)
	return t
}

// TotalsByCategory sums amounts of the given type per category label.
// Labels outside the recognized set appear verbatim; records without a
// label are bucketed under models.CategoryUncategorized.
func TotalsByCategory(transactions []models.Transaction, txType models.TransactionType) map[string]decimal.Decimal {
	sums := make(map[string]decimal.Decimal)
	for _, tx := range transactions {
		if tx.Type != txType {
			continue
		}
		label := tx.Category
		if label == "" {
			label = models.CategoryUncategorized
		}
		sums[label] = sums[label].Add(tx.Amount)
	}
	return sums
}

// MonthlyTotals groups amounts of the given type by short month label.
// The sequence follows first occurrence of each label in the snapshot,
// not calendar order; callers needing chronological output must sort by
// the underlying record dates.
func MonthlyTotals(transactions []models.Transaction, txType models.TransactionType) []MonthTotal {
	var totals []MonthTotal
	index := make(map[string]int)
	for _, tx := range transactions {
		if tx.Type != txType {
			continue
		}
		label := tx.Date.Format("Jan")
		if i, ok := index[label]; ok {
			totals[i].Amount = totals[i].Amount.Add(tx.Amount)
			continue
		}
		index[label] = len(totals)
		totals = append(totals, MonthTotal{Label: label, Amount: tx.Amount})
	}
	return totals
}

// BalanceForPerson returns the signed net balance against the named
// counterparty, matching the name case-insensitively.
func BalanceForPerson(debts []models.Debt, name string) decimal.Decimal {
	total := decimal.Zero
	for _, d := range debts {
		if strings.EqualFold(d.Name, name) {
			total = total.Add(signedAmount(d))
		}
	}
	return total
}

// AllPeopleBalances groups debts per counterparty and accumulates each
// person's balance and annotated entries. Grouping is case-insensitive,
// consistent with BalanceForPerson; the first-seen casing becomes the
// displayed name. Entries appear in first-seen order.
func AllPeopleBalances(debts []models.Debt) []PersonBalance {
	var people []PersonBalance
	index := make(map[string]int)
	for _, d := range debts {
		key := strings.ToLower(d.Name)
		i, ok := index[key]
		if !ok {
			i = len(people)
			index[key] = i
			people = append(people, PersonBalance{Name: d.Name, Balance: decimal.Zero})
		}
		net := signedAmount(d)
		people[i].Balance = people[i].Balance.Add(net)
		people[i].Transactions = append(people[i].Transactions, DebtEntry{Debt: d, NetAmount: net})
	}
	return people
}

// LendingSummary splits the people balances into the total owed to the
// user (positive balances) and the total the user owes (absolute sum of
// negative balances).
func LendingSummary(people []PersonBalance) (owedToUser, owedByUser decimal.Decimal) {
	owedToUser, owedByUser = decimal.Zero, decimal.Zero
	for _, p := range people {
		switch {
		case p.Balance.IsPositive():
			owedToUser = owedToUser.Add(p.Balance)
		case p.Balance.IsNegative():
			owedByUser = owedByUser.Add(p.Balance.Abs())
		}
	}
	return owedToUser, owedByUser
}

func signedAmount(d models.Debt) decimal.Decimal {
	if d.Type == models.DebtTypeBorrowed {
		return d.Amount.Neg()
	}
	return d.Amount
}
