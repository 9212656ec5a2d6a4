// Package cli provides styled terminal output using lipgloss.
package cli

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// PrimaryColor is the main theme color (FinTrack blue).
	PrimaryColor = lipgloss.Color("#0075EB")
	// IncomeColor marks income amounts.
	IncomeColor = lipgloss.Color("#22C55E") // Green
	// ExpenseColor marks expense amounts.
	ExpenseColor = lipgloss.Color("#EF4444") // Red
	// WarningColor indicates warnings or caution messages.
	WarningColor = lipgloss.Color("#F59E0B") // Amber
	// ErrorColor indicates errors or failure messages.
	ErrorColor = lipgloss.Color("#EF4444") // Red
	// SubtleColor indicates less prominent UI elements.
	SubtleColor = lipgloss.Color("#666666") // Gray

	// TitleStyle is used for section titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor).
			MarginBottom(1)

	// SubtitleStyle is used for secondary headings.
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			MarginBottom(1)

	// IncomeStyle formats income amounts.
	IncomeStyle = lipgloss.NewStyle().
			Foreground(IncomeColor)

	// ExpenseStyle formats expense amounts.
	ExpenseStyle = lipgloss.NewStyle().
			Foreground(ExpenseColor)

	// WarningStyle formats warning messages.
	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor)

	// ErrorStyle formats error messages.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor)

	// SubtleStyle formats less prominent text.
	SubtleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// BoldStyle makes text bold.
	BoldStyle = lipgloss.NewStyle().
			Bold(true)

	// TableHeaderStyle is used for table headers.
	TableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				BorderStyle(lipgloss.NormalBorder()).
				BorderBottom(true).
				BorderForeground(lipgloss.Color("#333"))

	// TableCellStyle formats table cells with appropriate padding.
	TableCellStyle = lipgloss.NewStyle().
			PaddingRight(2)
)

// FormatError formats an error message with the error style.
func FormatError(msg string) string {
	return ErrorStyle.Render("✗ " + msg)
}

// FormatSuccess formats a success message.
func FormatSuccess(msg string) string {
	return IncomeStyle.Render("✓ " + msg)
}

// FormatWarning formats a warning message.
func FormatWarning(msg string) string {
	return WarningStyle.Render("⚠ " + msg)
}

// FormatAmount styles a rendered amount by transaction direction.
func FormatAmount(rendered string, income bool) string {
	if income {
		return IncomeStyle.Render(rendered)
	}
	return ExpenseStyle.Render(rendered)
}

// Bar renders a simple utilization bar of the given width, colored by how
// close spend is to the ceiling.
func Bar(fraction float64, width int) string {
	if fraction < 0 {
		fraction = 0
	}
	filled := int(fraction * float64(width))
	if filled > width {
		filled = width
	}
	style := IncomeStyle
	switch {
	case fraction >= 1:
		style = ErrorStyle
	case fraction >= 0.8:
		style = WarningStyle
	}

	bar := make([]rune, 0, width)
	for i := 0; i < width; i++ {
		if i < filled {
			bar = append(bar, '█')
		} else {
			bar = append(bar, '░')
		}
	}
	return style.Render(string(bar))
}
