package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/joaomsilva/fintrack/internal/cli"
	"github.com/joaomsilva/fintrack/internal/model"
	"github.com/joaomsilva/fintrack/internal/service"
)

func listCmd() *cobra.Command {
	var (
		month  string
		txType string
		limit  int
		recent bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions",
		Long: `List the active user's transactions.

By default rows appear in the order they were recorded. Use --recent to sort
by calendar date, newest first.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			s, err := openSession(ctx)
			if err != nil {
				return err
			}
			defer s.close()

			filter := service.TransactionFilter{Limit: limit}
			if month != "" {
				period, err := parsePeriod(month)
				if err != nil {
					return err
				}
				filter.Period = &period
			}
			switch txType {
			case "":
			case "income":
				t := model.TypeIncome
				filter.Type = &t
			case "expense":
				t := model.TypeExpense
				filter.Type = &t
			default:
				return fmt.Errorf("invalid --type %q, want income or expense", txType)
			}
			if recent {
				filter.Sort = service.SortDateDesc
			}

			txns, err := s.tracker.ListTransactions(ctx, s.namespace, filter)
			if err != nil {
				return err
			}
			if len(txns) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No transactions."))
				return nil
			}

			categories, err := s.tracker.ListCategories(ctx, s.namespace)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "DATE\tDESCRIPTION\tCATEGORY\tMETHOD\tAMOUNT\tID")
			for _, t := range txns {
				cat := model.LookupCategory(categories, t.CategoryID)
				amount := "•••••"
				if !s.profile.HideBalance {
					amount = s.formatter.SignedMoney(t.Amount, t.Type)
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
					s.formatter.FormatDate(t.Date),
					t.Description,
					cat.Name,
					t.Method,
					cli.FormatAmount(amount, t.Type == model.TypeIncome),
					t.ID,
				)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&month, "month", "", "restrict to a month (YYYY-MM)")
	cmd.Flags().StringVarP(&txType, "type", "t", "", "filter by type (income, expense)")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "maximum rows (0 = all)")
	cmd.Flags().BoolVar(&recent, "recent", false, "sort by date, newest first")

	return cmd
}
