package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/joaomsilva/fintrack/internal/cli"
)

func exportCmd() *cobra.Command {
	var (
		format string
		month  string
		outDir string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a month's transactions as CSV, XLSX or PDF",
		Long: `Render the active user's transactions for a month into a downloadable
artifact. A month with no transactions is refused; no empty file is written.`,
		Example: `  fintrack export --format pdf --month 2025-01
  fintrack export --format csv -o ~/Downloads`,
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

			artifact, err := s.tracker.Export(ctx, s.namespace, format, period)
			if err != nil {
				return err
			}

			path := filepath.Join(outDir, artifact.Filename)
			if err := os.WriteFile(path, artifact.Data, 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", path, err)
			}

			fmt.Println(cli.FormatSuccess("Wrote " + path))
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "csv", "output format (csv, xlsx, pdf)")
	cmd.Flags().StringVar(&month, "month", "", "month to export (YYYY-MM, default current)")
	cmd.Flags().StringVarP(&outDir, "out", "o", ".", "output directory")

	return cmd
}
