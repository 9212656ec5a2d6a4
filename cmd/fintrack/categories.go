package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/joaomsilva/fintrack/internal/cli"
	"github.com/joaomsilva/fintrack/internal/model"
)

func categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Manage spending categories",
	}

	cmd.AddCommand(categoriesListCmd())
	cmd.AddCommand(categoriesAddCmd())
	cmd.AddCommand(categoriesSetBudgetCmd())
	cmd.AddCommand(categoriesSetColorCmd())

	return cmd
}

func categoriesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List categories with their groups and budgets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			s, err := openSession(ctx)
			if err != nil {
				return err
			}
			defer s.close()

			categories, err := s.tracker.ListCategories(ctx, s.namespace)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tGROUP\tBUDGET")
			for _, c := range categories {
				budget := "-"
				if c.Budget.IsPositive() {
					budget = s.formatter.FormatMoney(c.Budget)
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", c.ID, c.Name, c.Group, budget)
			}
			return w.Flush()
		},
	}
}

func categoriesAddCmd() *cobra.Command {
	var (
		group  string
		budget string
		color  string
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s, err := openSession(ctx)
			if err != nil {
				return err
			}
			defer s.close()

			b := decimal.Zero
			if budget != "" {
				b, err = s.formatter.ParseDecimal(budget)
				if err != nil {
					return fmt.Errorf("invalid --budget: %w", err)
				}
			}

			cat, err := s.tracker.CreateCategory(ctx, s.namespace, args[0], model.CategoryGroup(strings.ToUpper(group)), b, color)
			if err != nil {
				return err
			}
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Created category %s (%s)", cat.Name, cat.ID)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&group, "group", "g", string(model.GroupWant), "budget group (NEED, WANT, SAVING)")
	cmd.Flags().StringVarP(&budget, "budget", "b", "", "monthly budget ceiling")
	cmd.Flags().StringVar(&color, "color", "", "display color (hex)")

	return cmd
}

func categoriesSetBudgetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-budget <id> <amount>",
		Short: "Set a category's monthly budget ceiling",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s, err := openSession(ctx)
			if err != nil {
				return err
			}
			defer s.close()

			amount, err := s.formatter.ParseDecimal(args[1])
			if err != nil {
				return fmt.Errorf("invalid amount: %w", err)
			}
			if err := s.tracker.UpsertCategoryBudget(ctx, s.namespace, args[0], amount); err != nil {
				return err
			}
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Budget for %s set to %s", args[0], s.formatter.FormatMoney(amount))))
			return nil
		},
	}
}

func categoriesSetColorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-color <id> <hex>",
		Short: "Set a category's display color",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s, err := openSession(ctx)
			if err != nil {
				return err
			}
			defer s.close()

			if err := s.tracker.SetCategoryColor(ctx, s.namespace, args[0], args[1]); err != nil {
				return err
			}
			fmt.Println(cli.FormatSuccess("Color updated"))
			return nil
		},
	}
}
