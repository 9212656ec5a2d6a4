package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joaomsilva/fintrack/internal/cli"
	"github.com/joaomsilva/fintrack/internal/model"
	"github.com/joaomsilva/fintrack/internal/tracker"
)

func addCmd() *cobra.Command {
	var (
		txType      string
		categoryID  string
		date        string
		method      string
		description string
		recurring   bool
	)

	cmd := &cobra.Command{
		Use:   "add <amount>",
		Short: "Record a transaction",
		Long: `Record a transaction in the active user's ledger.

The amount is always positive; direction comes from --type. Dates use
YYYY-MM-DD and default to today.`,
		Example: `  fintrack add 45.50 --type expense --category food-cat --desc "Mercado"
  fintrack add 2500 --type income --category income-cat --recurring`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s, err := openSession(ctx)
			if err != nil {
				return err
			}
			defer s.close()

			var t model.TransactionType
			switch txType {
			case "income":
				t = model.TypeIncome
			case "expense":
				t = model.TypeExpense
			default:
				return fmt.Errorf("invalid --type %q, want income or expense", txType)
			}

			txn, err := s.tracker.CreateTransaction(ctx, s.namespace, tracker.CreateTransactionInput{
				Amount:      args[0],
				Type:        t,
				CategoryID:  categoryID,
				Date:        date,
				Method:      method,
				Description: description,
				IsRecurring: recurring,
			})
			if err != nil {
				return err
			}

			rendered := cli.FormatAmount(s.formatter.SignedMoney(txn.Amount, txn.Type), txn.Type == model.TypeIncome)
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Recorded %s  %s (%s)", rendered, txn.Description, txn.ID)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&txType, "type", "t", "expense", "transaction type (income, expense)")
	cmd.Flags().StringVarP(&categoryID, "category", "c", "", "category id")
	cmd.Flags().StringVarP(&date, "date", "d", "", "transaction date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVarP(&method, "method", "m", "Cartão", "payment method")
	cmd.Flags().StringVar(&description, "desc", "", "description (defaults to the type label)")
	cmd.Flags().BoolVarP(&recurring, "recurring", "r", false, "mark as recurring")

	return cmd
}

func rmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a transaction by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s, err := openSession(ctx)
			if err != nil {
				return err
			}
			defer s.close()

			if err := s.tracker.DeleteTransaction(ctx, s.namespace, args[0]); err != nil {
				return err
			}
			fmt.Println(cli.FormatSuccess("Deleted " + args[0]))
			return nil
		},
	}
}
