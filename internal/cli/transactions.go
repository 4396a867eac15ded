package cli

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/Yashuu213/MoneyViewer/internal/ledger"
	"github.com/Yashuu213/MoneyViewer/internal/models"
)

var txCmd = &cobra.Command{
	Use:   "tx",
	Short: "Manage transactions",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cmd.Help()
	},
}

var (
	txCategory string
	txDate     string
)

var txAddCmd = &cobra.Command{
	Use:   "add <income|expense> <amount> <description>",
	Short: "Record a transaction",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openStore(cmd.Context())
		if err != nil {
			return err
		}

		amount, err := decimal.NewFromString(args[1])
		if err != nil {
			return fmt.Errorf("invalid amount %q: %w", args[1], err)
		}
		date, err := parseDate(txDate)
		if err != nil {
			return err
		}

		rec, err := a.store.AddTransaction(cmd.Context(), ledger.TransactionInput{
			Amount:      amount,
			Description: args[2],
			Type:        models.TransactionType(args[0]),
			Category:    txCategory,
			Date:        date,
		})
		if err != nil {
			return err
		}
		fmt.Printf("Recorded %s %s (%s)\n", rec.Type, rec.Amount, rec.ID)
		if txCategory != "" && !models.IsRecognizedCategory(txCategory) {
			fmt.Fprintf(os.Stderr, "note: %q is not a known category (see: moneyviewer tx categories)\n", txCategory)
		}
		return nil
	},
}

var txCategoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List known category labels",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		for _, c := range models.Categories {
			fmt.Println(c)
		}
		return nil
	},
}

var txListCmd = &cobra.Command{
	Use:   "list",
	Short: "List transactions, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := openStore(cmd.Context())
		if err != nil {
			return err
		}

		transactions := a.store.Transactions()
		if len(transactions) == 0 {
			fmt.Println("No transactions")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "DATE\tTYPE\tAMOUNT\tCATEGORY\tDESCRIPTION\tID")
		for _, tx := range transactions {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				tx.Date.Format("2006-01-02"), tx.Type, tx.Amount, tx.Category, tx.Description, tx.ID)
		}
		return w.Flush()
	},
}

var txDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a transaction by id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openStore(cmd.Context())
		if err != nil {
			return err
		}
		if err := a.store.DeleteTransaction(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Println("Deleted", args[0])
		return nil
	},
}

func init() {
	txAddCmd.Flags().StringVarP(&txCategory, "category", "c", "", "category label")
	txAddCmd.Flags().StringVarP(&txDate, "date", "d", "", "date (YYYY-MM-DD, default today)")
	txCmd.AddCommand(txAddCmd, txListCmd, txDeleteCmd, txCategoriesCmd)
}

func parseDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	date, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD)", raw)
	}
	return date, nil
}
