package tracker_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joaomsilva/fintrack/internal/common"
	"github.com/joaomsilva/fintrack/internal/service"
	"github.com/joaomsilva/fintrack/internal/testutil"
)

func TestExportRefusesEmptyMonth(t *testing.T) {
	tr, db := newTracker(t)
	ctx := context.Background()

	// Data exists, but not in the requested month.
	db.MustAdd(testutil.Expense("10.00", "2", "2025-01-10"))

	for _, format := range []string{"csv", "xlsx", "pdf"} {
		_, err := tr.Export(ctx, "alice", format, service.Period{Month: time.March, Year: 2025})
		assert.ErrorIs(t, err, common.ErrNoTransactions, "format %s", format)
	}
}

func TestExportUnknownFormat(t *testing.T) {
	tr, _ := newTracker(t)

	_, err := tr.Export(context.Background(), "alice", "docx", service.Period{Month: time.January, Year: 2025})
	assert.ErrorIs(t, err, common.ErrExport)
}

func TestExportProducesArtifacts(t *testing.T) {
	tr, db := newTracker(t)
	ctx := context.Background()

	db.MustAdd(testutil.Income("2500.00", "income-cat", "2025-01-01"))
	db.MustAdd(testutil.Expense("45.50", "2", "2025-01-10"))

	period := service.Period{Month: time.January, Year: 2025}

	tests := []struct {
		format       string
		wantFilename string
		wantPrefix   []byte
	}{
		// The fixed clock dates every filename 2025-01-20.
		{format: "csv", wantFilename: "FinTrack-Export_2025-01-20.csv", wantPrefix: []byte{0xEF, 0xBB, 0xBF}},
		{format: "xlsx", wantFilename: "FinTrack-Export_2025-01-20.xlsx", wantPrefix: []byte("PK")},
		{format: "pdf", wantFilename: "FinTrack-Extrato_2025-01-20.pdf", wantPrefix: []byte("%PDF")},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			artifact, err := tr.Export(ctx, "alice", tt.format, period)
			require.NoError(t, err)
			assert.Equal(t, tt.wantFilename, artifact.Filename)
			assert.True(t, bytes.HasPrefix(artifact.Data, tt.wantPrefix))
			assert.NotEmpty(t, artifact.Data)
		})
	}
}
