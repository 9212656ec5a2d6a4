package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/joaomsilva/fintrack/internal/cli"
)

func budgetCmd() *cobra.Command {
	var month string

	cmd := &cobra.Command{
		Use:   "budget",
		Short: "Show per-category budget utilization for a month",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			s, err := openSession(ctx)
			if err != nil {
				return err
			}
			defer s.close()

			period, err := parsePeriod(month)
			if err != nil {
				return err
			}

			rows, err := s.tracker.BudgetUtilization(ctx, s.namespace, period)
			if err != nil {
				return err
			}

			fmt.Println(cli.TitleStyle.Render("Budgets, " + s.formatter.PeriodLabel(period.Month, period.Year)))
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			for _, u := range rows {
				usage := cli.SubtleStyle.Render("no ceiling")
				bar := ""
				if !u.Unbounded {
					usage = fmt.Sprintf("%3.0f%%", u.Percentage*100)
					if u.Over {
						usage = cli.ErrorStyle.Render(usage)
					}
					bar = cli.Bar(u.Percentage, 20)
				}
				fmt.Fprintf(w, "  %s\t%s / %s\t%s\t%s\n",
					u.CategoryName,
					s.money(u.Spent),
					s.money(u.Budget),
					bar,
					usage,
				)
			}
			if err := w.Flush(); err != nil {
				return err
			}

			alerts, err := s.tracker.BudgetAlerts(ctx, s.namespace, period)
			if err != nil {
				return err
			}
			for _, a := range alerts {
				fmt.Println(cli.FormatWarning(fmt.Sprintf("%s at %.0f%% of its %s budget",
					a.CategoryName, a.Percentage*100, s.money(a.Limit))))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&month, "month", "", "month to inspect (YYYY-MM, default current)")

	return cmd
}

func ruleCmd() *cobra.Command {
	var month string

	cmd := &cobra.Command{
		Use:   "rule",
		Short: "Compare spending against the 50/30/20 rule",
		Long: `Break the month's expenses into needs, wants and savings buckets and compare
each bucket's share of total spend against the 50/30/20 targets.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			s, err := openSession(ctx)
			if err != nil {
				return err
			}
			defer s.close()

			period, err := parsePeriod(month)
			if err != nil {
				return err
			}

			groups, err := s.tracker.Allocation(ctx, s.namespace, period)
			if err != nil {
				return err
			}

			fmt.Println(cli.TitleStyle.Render("50/30/20, " + s.formatter.PeriodLabel(period.Month, period.Year)))
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			for _, g := range groups {
				share := fmt.Sprintf("%3.0f%%", g.Share*100)
				if g.Share > g.Target {
					share = cli.WarningStyle.Render(share)
				}
				fmt.Fprintf(w, "  %s\t%s\t%s of spend\ttarget %3.0f%%\n",
					g.Group,
					s.money(g.Spent),
					share,
					g.Target*100,
				)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&month, "month", "", "month to inspect (YYYY-MM, default current)")

	return cmd
}
