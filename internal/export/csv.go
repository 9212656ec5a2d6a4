package export

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/joaomsilva/fintrack/internal/model"
)

// utf8BOM is prepended so spreadsheet tools decode accented characters
// correctly when opening the file directly.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// CSVRenderer produces the delimited-text artifact: one row per transaction,
// locale-appropriate separators, fields quoted and escaped by encoding/csv.
// Row order equals the input order; callers pre-sort.
type CSVRenderer struct{}

// Kind identifies the artifact in filenames.
func (r *CSVRenderer) Kind() string { return "Export" }

// Extension returns the artifact file extension.
func (r *CSVRenderer) Extension() string { return "csv" }

// Render writes the BOM, a localized header and one row per transaction.
// Amounts use the locale's decimal separator; the type column keeps the raw
// enum so re-imports stay unambiguous.
func (r *CSVRenderer) Render(input Input) ([]byte, error) {
	f := NewFormatter(input.Profile)
	labels := f.Labels()

	var buf bytes.Buffer
	buf.Write(utf8BOM)

	w := csv.NewWriter(&buf)
	w.Comma = f.CSVComma()

	header := []string{
		labels.ColumnID,
		labels.ColumnDate,
		labels.ColumnDescription,
		labels.ColumnAmount,
		labels.ColumnType,
		labels.ColumnMethod,
		labels.ColumnCategory,
		labels.ColumnRecurring,
	}
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}

	for _, t := range input.Transactions {
		cat := model.LookupCategory(input.Categories, t.CategoryID)
		row := []string{
			t.ID,
			f.FormatDate(t.Date),
			t.Description,
			f.FormatDecimal(t.Amount),
			string(t.Type),
			t.Method,
			cat.Name,
			f.BoolLabel(t.IsRecurring),
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write row for %s: %w", t.ID, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}

	return buf.Bytes(), nil
}
