package export

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/joaomsilva/fintrack/internal/model"
	"github.com/joaomsilva/fintrack/internal/report"
)

// Statement palette, matching the in-app accent colors.
var (
	pdfPrimary  = [3]int{0, 117, 235}   // #0075EB
	pdfTextDark = [3]int{25, 28, 31}    // #191C1F
	pdfTextGray = [3]int{100, 100, 100} //
	pdfGreen    = [3]int{34, 197, 94}   // income accent
	pdfRed      = [3]int{239, 68, 68}   // expense accent
)

// PDFRenderer produces the paginated statement: cover header, colored summary
// block, tabular body with automatic page breaks and a numbered footer on
// every page.
type PDFRenderer struct{}

// Kind identifies the artifact in filenames.
func (r *PDFRenderer) Kind() string { return "Extrato" }

// Extension returns the artifact file extension.
func (r *PDFRenderer) Extension() string { return "pdf" }

var pdfColumnWidths = [6]float64{22, 60, 30, 20, 25, 25}

// Render lays out the statement on A4 portrait pages.
func (r *PDFRenderer) Render(input Input) ([]byte, error) {
	f := NewFormatter(input.Profile)
	labels := f.Labels()

	pdf := gofpdf.New("P", "mm", "A4", "")
	// Core fonts are cp1252; translate so accented labels render correctly.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Helvetica", "", 8)
		pdf.SetTextColor(pdfTextGray[0], pdfTextGray[1], pdfTextGray[2])
		pdf.CellFormat(95, 10, tr(fmt.Sprintf("%s %d", labels.Page, pdf.PageNo())), "", 0, "L", false, 0, "")
		pdf.CellFormat(95, 10, tr(labels.FooterNote), "", 0, "R", false, 0, "")
	})
	pdf.SetAutoPageBreak(true, 25)
	pdf.AddPage()

	r.renderHeader(pdf, tr, f, input)
	r.renderSummary(pdf, tr, f, input)
	r.renderTable(pdf, tr, f, input)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *PDFRenderer) renderHeader(pdf *gofpdf.Fpdf, tr func(string) string, f *Formatter, input Input) {
	labels := f.Labels()

	pdf.SetFont("Helvetica", "B", 22)
	pdf.SetTextColor(pdfPrimary[0], pdfPrimary[1], pdfPrimary[2])
	pdf.Text(14, 20, ProductName)

	pdf.SetFontSize(10)
	pdf.SetTextColor(pdfTextDark[0], pdfTextDark[1], pdfTextDark[2])
	pdf.Text(14, 26, tr(labels.StatementTitle))

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(pdfTextGray[0], pdfTextGray[1], pdfTextGray[2])
	period := f.PeriodLabel(input.Period.Month, input.Period.Year)
	pdf.Text(14, 32, tr(fmt.Sprintf("%s: %s", labels.PeriodPrefix, period)))
	pdf.Text(14, 37, tr(fmt.Sprintf("%s: %s", labels.IssuedPrefix, f.FormatDate(input.IssuedOn))))

	pdf.Text(140, 26, tr(fmt.Sprintf("%s: %s", labels.UserPrefix, input.Profile.Name)))
	pdf.Text(140, 31, tr(fmt.Sprintf("%s: %s", labels.JobPrefix, input.Profile.Job)))

	pdf.SetDrawColor(230, 230, 230)
	pdf.Line(14, 45, 196, 45)
}

func (r *PDFRenderer) renderSummary(pdf *gofpdf.Fpdf, tr func(string) string, f *Formatter, input Input) {
	labels := f.Labels()
	totals := report.Totals(input.Transactions)

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetTextColor(pdfTextGray[0], pdfTextGray[1], pdfTextGray[2])
	pdf.Text(14, 52, tr(labels.SummaryTitle))

	pdf.SetFontSize(11)
	pdf.SetTextColor(pdfTextDark[0], pdfTextDark[1], pdfTextDark[2])
	pdf.Text(14, 60, tr(labels.TotalIncome))
	pdf.SetTextColor(pdfGreen[0], pdfGreen[1], pdfGreen[2])
	pdf.Text(50, 60, tr("+"+f.FormatMoney(totals.Income)))

	pdf.SetTextColor(pdfTextDark[0], pdfTextDark[1], pdfTextDark[2])
	pdf.Text(14, 67, tr(labels.TotalExpenses))
	pdf.SetTextColor(pdfRed[0], pdfRed[1], pdfRed[2])
	pdf.Text(50, 67, tr("-"+f.FormatMoney(totals.Expenses)))

	pdf.SetTextColor(pdfTextDark[0], pdfTextDark[1], pdfTextDark[2])
	pdf.Text(120, 63, tr(labels.NetBalance))
	pdf.SetFontSize(14)
	if totals.Balance.IsNegative() {
		pdf.SetTextColor(pdfRed[0], pdfRed[1], pdfRed[2])
	} else {
		pdf.SetTextColor(pdfPrimary[0], pdfPrimary[1], pdfPrimary[2])
	}
	pdf.Text(150, 63, tr(f.FormatMoney(totals.Balance)))
}

func (r *PDFRenderer) renderTable(pdf *gofpdf.Fpdf, tr func(string) string, f *Formatter, input Input) {
	labels := f.Labels()
	header := [6]string{
		labels.ColumnDate,
		labels.ColumnDescription,
		labels.ColumnCategory,
		labels.ColumnType,
		labels.ColumnMethod,
		labels.ColumnAmount,
	}

	pdf.SetY(75)
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(pdfPrimary[0], pdfPrimary[1], pdfPrimary[2])
	pdf.SetTextColor(255, 255, 255)
	for i, h := range header {
		pdf.CellFormat(pdfColumnWidths[i], 8, tr(h), "", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(pdfTextDark[0], pdfTextDark[1], pdfTextDark[2])

	for i, t := range input.Transactions {
		// Striped body rows.
		fill := i%2 == 1
		pdf.SetFillColor(245, 246, 248)

		cat := model.LookupCategory(input.Categories, t.CategoryID)
		style := ""
		if t.Type == model.TypeIncome {
			style = "B"
		}

		pdf.CellFormat(pdfColumnWidths[0], 7, f.FormatDate(t.Date), "", 0, "L", fill, 0, "")
		pdf.CellFormat(pdfColumnWidths[1], 7, tr(truncate(t.Description, 40)), "", 0, "L", fill, 0, "")
		pdf.CellFormat(pdfColumnWidths[2], 7, tr(truncate(cat.Name, 20)), "", 0, "L", fill, 0, "")
		pdf.CellFormat(pdfColumnWidths[3], 7, tr(f.TypeLabel(t.Type)), "", 0, "L", fill, 0, "")
		pdf.CellFormat(pdfColumnWidths[4], 7, tr(truncate(t.Method, 16)), "", 0, "L", fill, 0, "")
		pdf.SetFont("Helvetica", style, 8)
		pdf.CellFormat(pdfColumnWidths[5], 7, tr(f.SignedMoney(t.Amount, t.Type)), "", 0, "R", fill, 0, "")
		pdf.SetFont("Helvetica", "", 8)
		pdf.Ln(-1)
	}
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
