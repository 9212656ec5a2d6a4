package tracker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/joaomsilva/fintrack/internal/common"
	"github.com/joaomsilva/fintrack/internal/model"
	"github.com/joaomsilva/fintrack/internal/service"
)

// backupVersion tags the bundle layout so future readers can migrate old
// dumps.
const backupVersion = 1

// Backup is one namespace's complete data as a portable JSON bundle.
type Backup struct {
	Version      int                 `json:"version"`
	Namespace    string              `json:"namespace"`
	ExportedAt   time.Time           `json:"exportedAt"`
	Profile      model.UserProfile   `json:"profile"`
	Categories   []model.Category    `json:"categories"`
	Transactions []model.Transaction `json:"transactions"`
}

// DumpBackup serializes the namespace's profile, categories and transactions.
// Transactions keep their insertion order so a restore reproduces it.
func (t *Tracker) DumpBackup(ctx context.Context, namespace string) ([]byte, error) {
	profile, err := t.store.GetProfile(ctx, namespace)
	if err != nil {
		return nil, err
	}
	categories, err := t.store.GetCategories(ctx, namespace)
	if err != nil {
		return nil, err
	}
	txns, err := t.store.GetTransactions(ctx, namespace, service.TransactionFilter{})
	if err != nil {
		return nil, err
	}

	bundle := Backup{
		Version:      backupVersion,
		Namespace:    namespace,
		ExportedAt:   t.now().UTC(),
		Profile:      *profile,
		Categories:   categories,
		Transactions: txns,
	}
	data, err := json.MarshalIndent(bundle, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize backup: %w", err)
	}
	return data, nil
}

// RestoreBackup loads a bundle into the namespace, replacing its transactions
// and profile wholesale. Categories are merged by id: known ids get their
// budget and color updated, unknown ids are created.
func (t *Tracker) RestoreBackup(ctx context.Context, namespace string, data []byte) error {
	var bundle Backup
	if err := json.Unmarshal(data, &bundle); err != nil {
		return fmt.Errorf("%w: not a valid backup bundle: %v", common.ErrValidation, err)
	}
	if bundle.Version != backupVersion {
		return fmt.Errorf("%w: unsupported backup version %d", common.ErrValidation, bundle.Version)
	}

	if err := t.store.EnsureUser(ctx, namespace); err != nil {
		return err
	}
	if err := t.store.SaveProfile(ctx, namespace, bundle.Profile); err != nil {
		return err
	}

	existing, err := t.store.GetCategories(ctx, namespace)
	if err != nil {
		return err
	}
	known := make(map[string]bool, len(existing))
	for _, c := range existing {
		known[c.ID] = true
	}
	for _, c := range bundle.Categories {
		if known[c.ID] {
			if err := t.store.UpdateCategoryBudget(ctx, namespace, c.ID, c.Budget); err != nil {
				return err
			}
			if err := t.store.UpdateCategoryColor(ctx, namespace, c.ID, c.Color); err != nil {
				return err
			}
			continue
		}
		if _, err := t.store.CreateCategory(ctx, namespace, c); err != nil {
			return err
		}
	}

	if err := t.store.ReplaceAllTransactions(ctx, namespace, bundle.Transactions); err != nil {
		return err
	}

	t.logger.Info("backup restored",
		"namespace", namespace,
		"transactions", len(bundle.Transactions),
		"categories", len(bundle.Categories))
	return nil
}
