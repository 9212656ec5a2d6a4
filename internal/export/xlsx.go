package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/joaomsilva/fintrack/internal/model"
)

// XLSXRenderer produces the spreadsheet artifact: one worksheet, a styled
// header row, fixed column widths and a currency-typed amount column. Amounts
// are written as native numbers, not pre-formatted strings, so the receiving
// tool can re-aggregate them.
type XLSXRenderer struct{}

// Kind identifies the artifact in filenames.
func (r *XLSXRenderer) Kind() string { return "Export" }

// Extension returns the artifact file extension.
func (r *XLSXRenderer) Extension() string { return "xlsx" }

// Column widths mirror the statement layout: wide description, narrow flags.
var xlsxColumnWidths = []float64{36, 12, 40, 14, 12, 16, 20, 12}

// Render builds the workbook in memory and returns its bytes.
func (r *XLSXRenderer) Render(input Input) ([]byte, error) {
	f := NewFormatter(input.Profile)
	labels := f.Labels()

	wb := excelize.NewFile()
	defer func() { _ = wb.Close() }()

	const sheet = "FinTrack"
	if err := wb.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

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

	for i, width := range xlsxColumnWidths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve column: %w", err)
		}
		if err := wb.SetColWidth(sheet, col, col, width); err != nil {
			return nil, fmt.Errorf("failed to set column width: %w", err)
		}
	}

	headerStyle, err := wb.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"0075EB"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	numFmt := fmt.Sprintf("#,##0.00\\ \"%s\"", f.CurrencySymbol())
	amountStyle, err := wb.NewStyle(&excelize.Style{CustomNumFmt: &numFmt})
	if err != nil {
		return nil, fmt.Errorf("failed to create amount style: %w", err)
	}

	for i, h := range header {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve cell: %w", err)
		}
		if err := wb.SetCellValue(sheet, cell, h); err != nil {
			return nil, fmt.Errorf("failed to write header cell: %w", err)
		}
	}
	lastHeaderCell, _ := excelize.CoordinatesToCellName(len(header), 1)
	if err := wb.SetCellStyle(sheet, "A1", lastHeaderCell, headerStyle); err != nil {
		return nil, fmt.Errorf("failed to style header: %w", err)
	}

	for i, t := range input.Transactions {
		row := i + 2
		cat := model.LookupCategory(input.Categories, t.CategoryID)

		// Native numeric amount, signed by direction, so SUM() works on the
		// column in the receiving tool.
		amount, _ := t.Signed().Round(2).Float64()

		cells := []any{
			t.ID,
			f.FormatDate(t.Date),
			t.Description,
			amount,
			f.TypeLabel(t.Type),
			t.Method,
			cat.Name,
			f.BoolLabel(t.IsRecurring),
		}
		for col, value := range cells {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return nil, fmt.Errorf("failed to resolve cell: %w", err)
			}
			if err := wb.SetCellValue(sheet, cell, value); err != nil {
				return nil, fmt.Errorf("failed to write cell %s: %w", cell, err)
			}
		}

		amountCell, _ := excelize.CoordinatesToCellName(4, row)
		if err := wb.SetCellStyle(sheet, amountCell, amountCell, amountStyle); err != nil {
			return nil, fmt.Errorf("failed to style amount cell: %w", err)
		}
	}

	buf, err := wb.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}
