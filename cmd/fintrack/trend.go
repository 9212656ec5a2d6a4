package main

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/joaomsilva/fintrack/internal/cli"
)

func trendCmd() *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "trend",
		Short: "Show the recent daily expense trend",
		Long: `Show daily expense totals for the last N days, oldest first. Days with no
expenses show as zero so the series always covers the full window.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			s, err := openSession(ctx)
			if err != nil {
				return err
			}
			defer s.close()

			points, err := s.tracker.Trend(ctx, s.namespace, days)
			if err != nil {
				return err
			}

			// Scale bars against the busiest day.
			max := decimal.Zero
			for _, p := range points {
				if p.Value.GreaterThan(max) {
					max = p.Value
				}
			}

			fmt.Println(cli.TitleStyle.Render(fmt.Sprintf("Expenses, last %d days", days)))
			for _, p := range points {
				fraction := 0.0
				if max.IsPositive() {
					fraction, _ = p.Value.Div(max).Float64()
				}
				fmt.Printf("  %s %s  %s %s\n",
					p.Label,
					cli.SubtleStyle.Render(p.Date.String()),
					cli.Bar(fraction, 20),
					s.money(p.Value),
				)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&days, "days", "d", 7, "window size in days")

	return cmd
}
