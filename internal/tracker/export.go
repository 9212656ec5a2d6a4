package tracker

import (
	"context"
	"fmt"

	"github.com/joaomsilva/fintrack/internal/common"
	"github.com/joaomsilva/fintrack/internal/export"
	"github.com/joaomsilva/fintrack/internal/model"
	"github.com/joaomsilva/fintrack/internal/service"
)

// Artifact is a rendered export, ready to write to disk or a download.
type Artifact struct {
	Filename string
	Data     []byte
}

// Export renders the namespace's transactions for the period into the given
// format (csv, xlsx or pdf). An empty result set is refused here, before any
// renderer runs, so no blank artifact is ever produced.
func (t *Tracker) Export(ctx context.Context, namespace, format string, period service.Period) (*Artifact, error) {
	renderer, err := export.ForFormat(format)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrExport, err)
	}

	txns, err := t.store.GetTransactions(ctx, namespace, service.TransactionFilter{
		Period: &period,
		Sort:   service.SortDateDesc,
	})
	if err != nil {
		return nil, err
	}
	if len(txns) == 0 {
		return nil, fmt.Errorf("%w: no transactions in %s %d",
			common.ErrNoTransactions, period.Month, period.Year)
	}

	categories, err := t.store.GetCategories(ctx, namespace)
	if err != nil {
		return nil, err
	}
	profile, err := t.store.GetProfile(ctx, namespace)
	if err != nil {
		return nil, err
	}

	today := model.DateOf(t.now())
	data, err := renderer.Render(export.Input{
		Transactions: txns,
		Categories:   categories,
		Profile:      *profile,
		Period:       period,
		IssuedOn:     today,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrExport, err)
	}

	t.logger.Info("export rendered",
		"namespace", namespace,
		"format", format,
		"transactions", len(txns),
		"bytes", len(data))

	return &Artifact{
		Filename: export.Filename(renderer.Kind(), renderer.Extension(), today),
		Data:     data,
	}, nil
}
