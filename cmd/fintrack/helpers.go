package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"

	"github.com/joaomsilva/fintrack/internal/config"
	"github.com/joaomsilva/fintrack/internal/export"
	"github.com/joaomsilva/fintrack/internal/model"
	"github.com/joaomsilva/fintrack/internal/service"
	"github.com/joaomsilva/fintrack/internal/storage"
	"github.com/joaomsilva/fintrack/internal/tracker"
)

// initStorage initializes the storage service with proper path expansion.
func initStorage(ctx context.Context) (service.Storage, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = "$HOME/.local/share/fintrack/fintrack.db"
	}

	// Expand tilde and environment variables
	dbPath = config.ExpandPath(dbPath)

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// session bundles everything a command needs: the service, the acting
// namespace and its profile-aware formatter.
type session struct {
	tracker   *tracker.Tracker
	store     service.Storage
	namespace string
	profile   model.UserProfile
	formatter *export.Formatter
}

// openSession initializes storage and resolves the acting user: the --user
// flag when given, otherwise the active login.
func openSession(ctx context.Context) (*session, error) {
	store, err := initStorage(ctx)
	if err != nil {
		return nil, err
	}

	t := tracker.New(store)

	namespace := strings.TrimSpace(viper.GetString("user"))
	if namespace == "" {
		namespace, err = t.ActiveUser(ctx)
		if err != nil {
			_ = store.Close()
			return nil, err
		}
	}
	if namespace == "" {
		_ = store.Close()
		return nil, fmt.Errorf("no active user; run 'fintrack login <name>' first")
	}
	if err := store.EnsureUser(ctx, namespace); err != nil {
		_ = store.Close()
		return nil, err
	}

	profile, err := t.Profile(ctx, namespace)
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	return &session{
		tracker:   t,
		store:     store,
		namespace: namespace,
		profile:   *profile,
		formatter: export.NewFormatter(*profile),
	}, nil
}

func (s *session) close() {
	_ = s.store.Close()
}

// money renders an amount for display, honoring the profile's hide-balance
// setting. Hiding only masks output; stored values are untouched.
func (s *session) money(d decimal.Decimal) string {
	if s.profile.HideBalance {
		return "•••••"
	}
	return s.formatter.FormatMoney(d)
}

// parsePeriod parses a --month value in YYYY-MM form, defaulting to the
// current month.
func parsePeriod(s string) (service.Period, error) {
	if s == "" {
		return service.PeriodOf(time.Now()), nil
	}
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return service.Period{}, fmt.Errorf("invalid month %q, want YYYY-MM", s)
	}
	return service.PeriodOf(t), nil
}
