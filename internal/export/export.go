// Package export renders a transaction subset into downloadable artifacts:
// delimited text, spreadsheet and paginated document. All renderers share one
// input contract and one Formatter so their monetary values always agree.
package export

import (
	"fmt"

	"github.com/joaomsilva/fintrack/internal/model"
	"github.com/joaomsilva/fintrack/internal/service"
)

// ProductName prefixes every artifact filename.
const ProductName = "FinTrack"

// Input is the shared contract consumed by every renderer. Transactions are
// rendered in the order given; callers pre-sort, typically date descending.
type Input struct {
	Transactions []model.Transaction
	Categories   []model.Category
	Profile      model.UserProfile
	Period       service.Period
	IssuedOn     model.Date
}

// Renderer turns an Input into a complete artifact. Renderers must tolerate
// empty transaction sets without failing; refusing empty exports is the
// caller's job, not theirs.
type Renderer interface {
	Kind() string
	Extension() string
	Render(input Input) ([]byte, error)
}

// Filename builds the artifact name: <product>-<kind>_<ISO-date>.<ext>.
func Filename(kind, ext string, date model.Date) string {
	return fmt.Sprintf("%s-%s_%s.%s", ProductName, kind, date.String(), ext)
}

// ForFormat returns the renderer for a format tag (csv, xlsx, pdf).
func ForFormat(format string) (Renderer, error) {
	switch format {
	case "csv":
		return &CSVRenderer{}, nil
	case "xlsx":
		return &XLSXRenderer{}, nil
	case "pdf":
		return &PDFRenderer{}, nil
	default:
		return nil, fmt.Errorf("unknown export format %q", format)
	}
}
