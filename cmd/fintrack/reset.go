package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joaomsilva/fintrack/internal/cli"
)

func resetCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete the active user's transactions and reset categories",
		Long: `Delete every transaction in the active user's ledger and restore the default
category set. The profile and login are kept. This cannot be undone.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			s, err := openSession(ctx)
			if err != nil {
				return err
			}
			defer s.close()

			if !force {
				fmt.Printf("This will erase all transactions for %q. Type the user name to confirm: ", s.namespace)
				reader := bufio.NewReader(os.Stdin)
				answer, err := reader.ReadString('\n')
				if err != nil {
					return fmt.Errorf("failed to read confirmation: %w", err)
				}
				if strings.TrimSpace(answer) != s.namespace {
					fmt.Println(cli.SubtleStyle.Render("Aborted."))
					return nil
				}
			}

			if err := s.tracker.ClearData(ctx, s.namespace); err != nil {
				return err
			}
			fmt.Println(cli.FormatSuccess("Data cleared for " + s.namespace))
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "skip the confirmation prompt")

	return cmd
}
