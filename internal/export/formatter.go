package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/joaomsilva/fintrack/internal/model"
)

// Labels holds the locale-dependent strings shared by the renderers.
type Labels struct {
	ColumnID          string
	ColumnDate        string
	ColumnDescription string
	ColumnAmount      string
	ColumnType        string
	ColumnMethod      string
	ColumnCategory    string
	ColumnRecurring   string

	Income  string
	Expense string
	Yes     string
	No      string

	StatementTitle string
	SummaryTitle   string
	TotalIncome    string
	TotalExpenses  string
	NetBalance     string
	PeriodPrefix   string
	IssuedPrefix   string
	UserPrefix     string
	JobPrefix      string
	Page           string
	FooterNote     string

	Months [12]string
}

var labelsPT = Labels{
	ColumnID:          "ID",
	ColumnDate:        "Data",
	ColumnDescription: "Descrição",
	ColumnAmount:      "Valor",
	ColumnType:        "Tipo",
	ColumnMethod:      "Método",
	ColumnCategory:    "Categoria",
	ColumnRecurring:   "Recorrente",
	Income:            "Receita",
	Expense:           "Despesa",
	Yes:               "Sim",
	No:                "Não",
	StatementTitle:    "EXTRATO DE MOVIMENTOS",
	SummaryTitle:      "RESUMO FINANCEIRO",
	TotalIncome:       "Total Receitas:",
	TotalExpenses:     "Total Despesas:",
	NetBalance:        "Saldo Líquido:",
	PeriodPrefix:      "Período",
	IssuedPrefix:      "Emitido em",
	UserPrefix:        "Utilizador",
	JobPrefix:         "Profissão",
	Page:              "Página",
	FooterNote:        "Gerado automaticamente pelo FinTrack - O seu gestor financeiro pessoal",
	Months: [12]string{
		"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
		"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
	},
}

var labelsEN = Labels{
	ColumnID:          "ID",
	ColumnDate:        "Date",
	ColumnDescription: "Description",
	ColumnAmount:      "Amount",
	ColumnType:        "Type",
	ColumnMethod:      "Method",
	ColumnCategory:    "Category",
	ColumnRecurring:   "Recurring",
	Income:            "Income",
	Expense:           "Expense",
	Yes:               "Yes",
	No:                "No",
	StatementTitle:    "TRANSACTION STATEMENT",
	SummaryTitle:      "FINANCIAL SUMMARY",
	TotalIncome:       "Total income:",
	TotalExpenses:     "Total expenses:",
	NetBalance:        "Net balance:",
	PeriodPrefix:      "Period",
	IssuedPrefix:      "Issued on",
	UserPrefix:        "User",
	JobPrefix:         "Occupation",
	Page:              "Page",
	FooterNote:        "Automatically generated by FinTrack - your personal finance manager",
	Months: [12]string{
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	},
}

// decimalCommaLocales are the language subtags that write 12,34 and group
// thousands with a dot. Everything else gets point-decimal formatting.
var decimalCommaLocales = map[string]bool{
	"pt": true, "es": true, "fr": true, "de": true, "it": true, "nl": true,
}

// currencySymbols maps common ISO codes to their display symbol. Unknown
// codes fall back to the code itself.
var currencySymbols = map[string]string{
	"EUR": "€",
	"USD": "$",
	"GBP": "£",
	"BRL": "R$",
	"JPY": "¥",
}

// Formatter renders numbers, dates and labels consistently for one profile.
// All three renderers share a single Formatter per export so column semantics
// and number conventions can never drift apart.
type Formatter struct {
	labels       Labels
	currency     string
	dateLayout   string
	decimalSep   byte
	thousandsSep byte
}

// NewFormatter builds a Formatter from the profile's locale and currency.
func NewFormatter(profile model.UserProfile) *Formatter {
	lang := strings.ToLower(profile.Locale)
	if i := strings.IndexAny(lang, "-_"); i > 0 {
		lang = lang[:i]
	}

	f := &Formatter{
		labels:       labelsEN,
		currency:     strings.ToUpper(profile.Currency),
		dateLayout:   "2006-01-02",
		decimalSep:   '.',
		thousandsSep: ',',
	}
	if decimalCommaLocales[lang] {
		f.decimalSep = ','
		f.thousandsSep = '.'
		f.dateLayout = "02/01/2006"
	}
	if lang == "pt" {
		f.labels = labelsPT
	}
	if f.currency == "" {
		f.currency = "EUR"
	}
	return f
}

// Labels exposes the locale strings for the renderers.
func (f *Formatter) Labels() Labels { return f.labels }

// CurrencySymbol returns the display symbol for the profile's currency.
func (f *Formatter) CurrencySymbol() string {
	if sym, ok := currencySymbols[f.currency]; ok {
		return sym
	}
	return f.currency
}

// CSVComma picks the field separator: semicolon for decimal-comma locales so
// spreadsheet tools do not confuse the decimal separator with the delimiter.
func (f *Formatter) CSVComma() rune {
	if f.decimalSep == ',' {
		return ';'
	}
	return ','
}

// FormatDate renders a date in the locale's layout.
func (f *Formatter) FormatDate(d model.Date) string {
	return d.Time().Format(f.dateLayout)
}

// ParseDate is the inverse of FormatDate.
func (f *Formatter) ParseDate(s string) (model.Date, error) {
	t, err := time.Parse(f.dateLayout, s)
	if err != nil {
		return model.Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return model.DateOf(t), nil
}

// FormatDecimal renders an amount with two fraction digits and the locale's
// decimal separator, without grouping. This is the machine-readable form the
// CSV renderer emits.
func (f *Formatter) FormatDecimal(d decimal.Decimal) string {
	s := d.StringFixed(2)
	if f.decimalSep != '.' {
		s = strings.Replace(s, ".", string(f.decimalSep), 1)
	}
	return s
}

// ParseDecimal is the inverse of FormatDecimal, normalizing the locale's
// separators back to a plain decimal.
func (f *Formatter) ParseDecimal(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, string(f.thousandsSep), "")
	if f.decimalSep != '.' {
		s = strings.Replace(s, string(f.decimalSep), ".", 1)
	}
	return decimal.NewFromString(s)
}

// FormatMoney renders an amount with thousands grouping and the currency
// symbol, e.g. "2.500,00 €" for pt-PT or "€2,500.00" otherwise.
func (f *Formatter) FormatMoney(d decimal.Decimal) string {
	grouped := f.group(d.StringFixed(2))
	if f.decimalSep == ',' {
		return grouped + " " + f.CurrencySymbol()
	}
	return f.CurrencySymbol() + grouped
}

// SignedMoney renders an amount with the sign implied by the transaction
// type, as the statement shows it: +2.500,00 € / -45,50 €.
func (f *Formatter) SignedMoney(amount decimal.Decimal, t model.TransactionType) string {
	sign := "-"
	if t == model.TypeIncome {
		sign = "+"
	}
	return sign + f.FormatMoney(amount)
}

// TypeLabel localizes a transaction type for display surfaces. Machine
// surfaces (CSV) keep the raw enum instead.
func (f *Formatter) TypeLabel(t model.TransactionType) string {
	if t == model.TypeIncome {
		return f.labels.Income
	}
	return f.labels.Expense
}

// BoolLabel localizes a yes/no flag.
func (f *Formatter) BoolLabel(b bool) string {
	if b {
		return f.labels.Yes
	}
	return f.labels.No
}

// PeriodLabel renders a month+year heading, e.g. "Janeiro de 2025".
func (f *Formatter) PeriodLabel(month time.Month, year int) string {
	name := f.labels.Months[int(month)-1]
	if f.labels.PeriodPrefix == labelsPT.PeriodPrefix {
		return fmt.Sprintf("%s de %d", name, year)
	}
	return fmt.Sprintf("%s %d", name, year)
}

// group inserts the thousands separator into a fixed two-decimal string.
func (f *Formatter) group(s string) string {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart, fracPart, _ := strings.Cut(s, ".")

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(f.thousandsSep)
		}
		b.WriteRune(r)
	}
	b.WriteByte(f.decimalSep)
	b.WriteString(fracPart)
	return b.String()
}
