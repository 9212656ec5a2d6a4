package tracker

import (
	"context"
	"fmt"
	"strings"

	"github.com/joaomsilva/fintrack/internal/common"
	"github.com/joaomsilva/fintrack/internal/model"
)

// Login makes the named user the active session, creating the namespace with
// a default profile and default categories on first use. When the profile
// carries a password, the supplied one must match.
func (t *Tracker) Login(ctx context.Context, name, password string) (*model.UserProfile, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: user name cannot be empty", common.ErrValidation)
	}

	if err := t.store.EnsureUser(ctx, name); err != nil {
		return nil, err
	}

	profile, err := t.store.GetProfile(ctx, name)
	if err != nil {
		return nil, err
	}
	if profile.Password != "" && profile.Password != password {
		return nil, fmt.Errorf("%w: wrong password for %q", common.ErrValidation, name)
	}

	if err := t.store.SetActiveUser(ctx, name); err != nil {
		return nil, err
	}

	t.logger.Info("user logged in", "namespace", name)
	return profile, nil
}

// Logout clears the active session. Data stays put.
func (t *Tracker) Logout(ctx context.Context) error {
	return t.store.ClearActiveUser(ctx)
}

// ActiveUser returns the logged-in namespace, or "" when nobody is.
func (t *Tracker) ActiveUser(ctx context.Context) (string, error) {
	return t.store.GetActiveUser(ctx)
}

// ListUsers returns every known namespace.
func (t *Tracker) ListUsers(ctx context.Context) ([]string, error) {
	return t.store.ListUsers(ctx)
}

// Profile returns the namespace's profile.
func (t *Tracker) Profile(ctx context.Context, namespace string) (*model.UserProfile, error) {
	return t.store.GetProfile(ctx, namespace)
}

// UpdateProfile applies a partial update to the namespace's profile. Untouched
// fields keep their stored values.
func (t *Tracker) UpdateProfile(ctx context.Context, namespace string, update model.ProfileUpdate) (*model.UserProfile, error) {
	if update.Currency != nil {
		code := strings.ToUpper(strings.TrimSpace(*update.Currency))
		if len(code) != 3 {
			return nil, fmt.Errorf("%w: currency must be a 3-letter ISO code", common.ErrValidation)
		}
		update.Currency = &code
	}
	if update.Age != nil && *update.Age < 0 {
		return nil, fmt.Errorf("%w: age cannot be negative", common.ErrValidation)
	}

	profile, err := t.store.GetProfile(ctx, namespace)
	if err != nil {
		return nil, err
	}

	updated := update.Apply(*profile)
	if err := t.store.SaveProfile(ctx, namespace, updated); err != nil {
		return nil, err
	}
	return &updated, nil
}
