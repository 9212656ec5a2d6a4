package export

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joaomsilva/fintrack/internal/model"
	"github.com/joaomsilva/fintrack/internal/service"
)

func sampleInput(profile model.UserProfile) Input {
	cats := model.DefaultCategories()
	return Input{
		Transactions: []model.Transaction{
			{
				ID:          "t1",
				Amount:      decimal.RequireFromString("2500.00"),
				Type:        model.TypeIncome,
				CategoryID:  "income-cat",
				Date:        model.NewDate(2025, time.January, 1),
				Method:      "Transferência",
				Description: "Salário; Janeiro",
				IsRecurring: true,
			},
			{
				ID:          "t2",
				Amount:      decimal.RequireFromString("45.50"),
				Type:        model.TypeExpense,
				CategoryID:  "2",
				Date:        model.NewDate(2025, time.January, 10),
				Method:      "Cartão Débito",
				Description: "Mercado",
			},
			{
				ID:         "t3",
				Amount:     decimal.RequireFromString("9.99"),
				Type:       model.TypeExpense,
				CategoryID: "ghost-cat",
				Date:       model.NewDate(2025, time.January, 12),
				Method:     "MB Way",
			},
		},
		Categories: cats,
		Profile:    profile,
		Period:     service.Period{Month: time.January, Year: 2025},
		IssuedOn:   model.NewDate(2025, time.February, 1),
	}
}

func TestCSVRenderPortuguese(t *testing.T) {
	r := &CSVRenderer{}
	data, err := r.Render(sampleInput(model.UserProfile{Name: "João", Currency: "EUR", Locale: "pt-PT"}))
	require.NoError(t, err)

	require.True(t, bytes.HasPrefix(data, utf8BOM), "artifact starts with the UTF-8 BOM")

	reader := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(data, utf8BOM)))
	reader.Comma = ';'
	records, err := reader.ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4, "header plus three rows")

	assert.Equal(t, []string{"ID", "Data", "Descrição", "Valor", "Tipo", "Método", "Categoria", "Recorrente"}, records[0])

	income := records[1]
	assert.Equal(t, "t1", income[0])
	assert.Equal(t, "01/01/2025", income[1])
	assert.Equal(t, "Salário; Janeiro", income[2], "embedded separator survives quoting")
	assert.Equal(t, "2500,00", income[3])
	assert.Equal(t, "INCOME", income[4], "type column keeps the raw enum")
	assert.Equal(t, "Sim", income[7])

	expense := records[2]
	assert.Equal(t, "45,50", expense[3])
	assert.Equal(t, "EXPENSE", expense[4])
	assert.Equal(t, "Alimentação", expense[6], "category id resolved to its name")
	assert.Equal(t, "Não", expense[7])

	orphan := records[3]
	assert.Equal(t, "Geral", orphan[6], "unresolved category falls back")
}

func TestCSVRenderEnglishSeparator(t *testing.T) {
	r := &CSVRenderer{}
	data, err := r.Render(sampleInput(model.UserProfile{Name: "Jane", Currency: "USD", Locale: "en-US"}))
	require.NoError(t, err)

	reader := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(data, utf8BOM)))
	records, err := reader.ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4)

	assert.Equal(t, "Description", records[0][2])
	assert.Equal(t, "2500.00", records[1][3], "point decimal under comma delimiter")
}

func TestCSVRenderEmptySet(t *testing.T) {
	input := sampleInput(model.UserProfile{Locale: "pt-PT"})
	input.Transactions = nil

	data, err := (&CSVRenderer{}).Render(input)
	require.NoError(t, err, "renderers tolerate empty sets; refusal happens upstream")

	reader := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(data, utf8BOM)))
	reader.Comma = ';'
	records, err := reader.ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 1, "header only")
}
