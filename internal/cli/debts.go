package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/Yashuu213/MoneyViewer/internal/ledger"
	"github.com/Yashuu213/MoneyViewer/internal/models"
)

var debtCmd = &cobra.Command{
	Use:   "debt",
	Short: "Manage money lent and borrowed",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cmd.Help()
	},
}

var (
	debtDescription string
	debtDate        string
)

var debtAddCmd = &cobra.Command{
	Use:   "add <lent|borrowed> <person> <amount>",
	Short: "Record money lent to or borrowed from a person",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openStore(cmd.Context())
		if err != nil {
			return err
		}

		amount, err := decimal.NewFromString(args[2])
		if err != nil {
			return fmt.Errorf("invalid amount %q: %w", args[2], err)
		}
		date, err := parseDate(debtDate)
		if err != nil {
			return err
		}

		rec, err := a.store.AddDebt(cmd.Context(), ledger.DebtInput{
			Name:        args[1],
			Amount:      amount,
			Type:        models.DebtType(args[0]),
			Description: debtDescription,
			Date:        date,
		})
		if err != nil {
			return err
		}
		fmt.Printf("Recorded %s %s to/from %s (%s)\n", rec.Type, rec.Amount, rec.Name, rec.ID)
		return nil
	},
}

var debtListCmd = &cobra.Command{
	Use:   "list",
	Short: "List debt entries, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := openStore(cmd.Context())
		if err != nil {
			return err
		}

		debts := a.store.Debts()
		if len(debts) == 0 {
			fmt.Println("No debts")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "DATE\tTYPE\tPERSON\tAMOUNT\tDESCRIPTION\tID")
		for _, d := range debts {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				d.Date.Format("2006-01-02"), d.Type, d.Name, d.Amount, d.Description, d.ID)
		}
		return w.Flush()
	},
}

var debtDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a debt entry by id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openStore(cmd.Context())
		if err != nil {
			return err
		}
		if err := a.store.DeleteDebt(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Println("Deleted", args[0])
		return nil
	},
}

func init() {
	debtAddCmd.Flags().StringVarP(&debtDescription, "description", "m", "", "optional note")
	debtAddCmd.Flags().StringVarP(&debtDate, "date", "d", "", "date (YYYY-MM-DD, default today)")
	debtCmd.AddCommand(debtAddCmd, debtListCmd, debtDeleteCmd)
}
