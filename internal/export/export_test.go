package export

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/joaomsilva/fintrack/internal/model"
)

func TestFilename(t *testing.T) {
	d := model.NewDate(2025, time.February, 1)

	assert.Equal(t, "FinTrack-Export_2025-02-01.csv", Filename("Export", "csv", d))
	assert.Equal(t, "FinTrack-Extrato_2025-02-01.pdf", Filename("Extrato", "pdf", d))
}

func TestForFormat(t *testing.T) {
	tests := []struct {
		format  string
		ext     string
		wantErr bool
	}{
		{format: "csv", ext: "csv"},
		{format: "xlsx", ext: "xlsx"},
		{format: "pdf", ext: "pdf"},
		{format: "docx", wantErr: true},
		{format: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			r, err := ForFormat(tt.format)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.ext, r.Extension())
		})
	}
}

// Renderers consume the same Input through the same Formatter, so the amounts
// they emit must agree to the cent.
func TestRenderersAgreeOnAmounts(t *testing.T) {
	input := sampleInput(model.UserProfile{Name: "João", Currency: "EUR", Locale: "pt-PT"})

	// CSV: parse the amount column back through the same locale rules.
	csvData, err := (&CSVRenderer{}).Render(input)
	require.NoError(t, err)
	reader := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(csvData, utf8BOM)))
	reader.Comma = ';'
	records, err := reader.ReadAll()
	require.NoError(t, err)

	f := NewFormatter(input.Profile)
	csvAmounts := make([]decimal.Decimal, 0, len(records)-1)
	for _, rec := range records[1:] {
		amount, err := f.ParseDecimal(rec[3])
		require.NoError(t, err)
		csvAmounts = append(csvAmounts, amount)
	}

	// XLSX: read the raw numeric cells.
	xlsxData, err := (&XLSXRenderer{}).Render(input)
	require.NoError(t, err)
	wb, err := excelize.OpenReader(bytes.NewReader(xlsxData))
	require.NoError(t, err)
	defer func() { _ = wb.Close() }()

	for i, txn := range input.Transactions {
		cell, err := excelize.CoordinatesToCellName(4, i+2)
		require.NoError(t, err)
		raw, err := wb.GetCellValue("FinTrack", cell, excelize.Options{RawCellValue: true})
		require.NoError(t, err)
		xlsxAmount, err := decimal.NewFromString(raw)
		require.NoError(t, err)

		// The CSV column is unsigned magnitude; XLSX carries the direction.
		assert.True(t, csvAmounts[i].Equal(xlsxAmount.Abs()),
			"row %d: csv %s vs xlsx %s", i, csvAmounts[i], xlsxAmount)
		assert.True(t, txn.Signed().Round(2).Equal(xlsxAmount),
			"row %d: source %s vs xlsx %s", i, txn.Signed(), xlsxAmount)
	}
}
