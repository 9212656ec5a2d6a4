package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/joaomsilva/fintrack/internal/model"
)

func TestXLSXRender(t *testing.T) {
	r := &XLSXRenderer{}
	data, err := r.Render(sampleInput(model.UserProfile{Name: "João", Currency: "EUR", Locale: "pt-PT"}))
	require.NoError(t, err)
	require.NotEmpty(t, data)

	wb, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() { _ = wb.Close() }()

	assert.Equal(t, []string{"FinTrack"}, wb.GetSheetList())

	rows, err := wb.GetRows("FinTrack")
	require.NoError(t, err)
	require.Len(t, rows, 4, "header plus three rows")

	assert.Equal(t, []string{"ID", "Data", "Descrição", "Valor", "Tipo", "Método", "Categoria", "Recorrente"}, rows[0])

	// Amounts are native numbers, signed by direction.
	income, err := wb.GetCellValue("FinTrack", "D2", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	assert.Equal(t, "2500", income)

	expense, err := wb.GetCellValue("FinTrack", "D3", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	assert.Equal(t, "-45.5", expense)

	// Display columns are localized.
	assert.Equal(t, "Receita", rows[1][4])
	assert.Equal(t, "Despesa", rows[2][4])
	assert.Equal(t, "Geral", rows[3][6])
}

func TestXLSXRenderEmptySet(t *testing.T) {
	input := sampleInput(model.UserProfile{Locale: "en-US"})
	input.Transactions = nil

	data, err := (&XLSXRenderer{}).Render(input)
	require.NoError(t, err)

	wb, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() { _ = wb.Close() }()

	rows, err := wb.GetRows("FinTrack")
	require.NoError(t, err)
	assert.Len(t, rows, 1, "header only")
}
