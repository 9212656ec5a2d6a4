package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joaomsilva/fintrack/internal/cli"
	"github.com/joaomsilva/fintrack/internal/service"
)

func totalsCmd() *cobra.Command {
	var (
		month string
		all   bool
	)

	cmd := &cobra.Command{
		Use:   "totals",
		Short: "Show income, expenses and net balance",
		Long: `Show the active user's totals for a month (default: the current one).

Balance is income minus expenses and may be negative. Use --all to aggregate
the whole ledger instead of a single month.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			s, err := openSession(ctx)
			if err != nil {
				return err
			}
			defer s.close()

			var period *service.Period
			title := "All time"
			if !all {
				p, err := parsePeriod(month)
				if err != nil {
					return err
				}
				period = &p
				title = s.formatter.PeriodLabel(p.Month, p.Year)
			}

			totals, err := s.tracker.Totals(ctx, s.namespace, period)
			if err != nil {
				return err
			}

			fmt.Println(cli.TitleStyle.Render(title))
			fmt.Printf("  Income:   %s\n", cli.IncomeStyle.Render(s.money(totals.Income)))
			fmt.Printf("  Expenses: %s\n", cli.ExpenseStyle.Render(s.money(totals.Expenses)))

			balance := s.money(totals.Balance)
			if totals.Balance.IsNegative() {
				balance = cli.ErrorStyle.Render(balance)
			} else {
				balance = cli.BoldStyle.Render(balance)
			}
			fmt.Printf("  Balance:  %s\n", balance)
			return nil
		},
	}

	cmd.Flags().StringVar(&month, "month", "", "month to aggregate (YYYY-MM, default current)")
	cmd.Flags().BoolVar(&all, "all", false, "aggregate the entire ledger")

	return cmd
}
