package cli

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Yashuu213/MoneyViewer/internal/models"
	"github.com/Yashuu213/MoneyViewer/internal/netting"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show income, expense, and balance totals",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := openStore(cmd.Context())
		if err != nil {
			return err
		}

		totals := netting.TotalsByType(a.store.Transactions())
		fmt.Printf("Income:  %s\n", totals.Income)
		fmt.Printf("Expense: %s\n", totals.Expense)
		fmt.Printf("Balance: %s\n", totals.Balance)
		return nil
	},
}

var analysisType string

var analysisCmd = &cobra.Command{
	Use:   "analysis",
	Short: "Break down transactions by category and month",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		txType := models.TransactionType(analysisType)
		switch txType {
		case models.TransactionTypeIncome, models.TransactionTypeExpense:
		default:
			return fmt.Errorf("invalid type %q (use income or expense)", analysisType)
		}

		a, err := openStore(cmd.Context())
		if err != nil {
			return err
		}
		transactions := a.store.Transactions()

		categories := netting.TotalsByCategory(transactions, txType)
		labels := make([]string, 0, len(categories))
		for label := range categories {
			labels = append(labels, label)
		}
		sort.Strings(labels)

		fmt.Printf("By category (%s):\n", txType)
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		for _, label := range labels {
			fmt.Fprintf(w, "  %s\t%s\n", label, categories[label])
		}
		if err := w.Flush(); err != nil {
			return err
		}

		fmt.Printf("\nBy month (%s):\n", txType)
		w = tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		for _, month := range netting.MonthlyTotals(transactions, txType) {
			fmt.Fprintf(w, "  %s\t%s\n", month.Label, month.Amount)
		}
		return w.Flush()
	},
}

var lendingCmd = &cobra.Command{
	Use:   "lending [person]",
	Short: "Show net balances per person, or one person's balance",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openStore(cmd.Context())
		if err != nil {
			return err
		}
		debts := a.store.Debts()

		if len(args) == 1 {
			balance := netting.BalanceForPerson(debts, args[0])
			fmt.Printf("%s: %s\n", args[0], balance)
			return nil
		}

		people := netting.AllPeopleBalances(debts)
		if len(people) == 0 {
			fmt.Println("No debts")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "PERSON\tBALANCE\tENTRIES")
		for _, p := range people {
			fmt.Fprintf(w, "%s\t%s\t%d\n", p.Name, p.Balance, len(p.Transactions))
		}
		if err := w.Flush(); err != nil {
			return err
		}

		owedToUser, owedByUser := netting.LendingSummary(people)
		fmt.Printf("\nOwed to you: %s\nYou owe: %s\n", owedToUser, owedByUser)
		return nil
	},
}

func init() {
	analysisCmd.Flags().StringVarP(&analysisType, "type", "t", "expense", "transaction type (income or expense)")
}
