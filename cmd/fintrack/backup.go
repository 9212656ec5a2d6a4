package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joaomsilva/fintrack/internal/cli"
)

func backupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Dump or restore a user's data as JSON",
	}

	cmd.AddCommand(backupDumpCmd())
	cmd.AddCommand(backupRestoreCmd())

	return cmd
}

func backupDumpCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Write the active user's data to a JSON bundle",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			s, err := openSession(ctx)
			if err != nil {
				return err
			}
			defer s.close()

			data, err := s.tracker.DumpBackup(ctx, s.namespace)
			if err != nil {
				return err
			}

			if out == "-" {
				_, err = os.Stdout.Write(data)
				return err
			}
			if out == "" {
				out = fmt.Sprintf("fintrack-backup-%s.json", s.namespace)
			}
			if err := os.WriteFile(out, data, 0o600); err != nil {
				return fmt.Errorf("failed to write %s: %w", out, err)
			}
			fmt.Println(cli.FormatSuccess("Wrote " + out))
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default fintrack-backup-<user>.json, - for stdout)")

	return cmd
}

func backupRestoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "restore <file>",
		Short: "Load a JSON bundle into the active user's namespace",
		Long: `Load a backup bundle. The user's transactions and profile are replaced with
the bundle's contents; categories are merged by id.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s, err := openSession(ctx)
			if err != nil {
				return err
			}
			defer s.close()

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", args[0], err)
			}

			if err := s.tracker.RestoreBackup(ctx, s.namespace, data); err != nil {
				return err
			}
			fmt.Println(cli.FormatSuccess("Backup restored"))
			return nil
		},
	}
}
