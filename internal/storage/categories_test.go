package storage_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joaomsilva/fintrack/internal/common"
	"github.com/joaomsilva/fintrack/internal/model"
	"github.com/joaomsilva/fintrack/internal/testutil"
)

func TestGetCategoriesKeepsSeedOrder(t *testing.T) {
	db := testutil.SetupTestDB(t, "alice")

	cats, err := db.Storage.GetCategories(context.Background(), "alice")
	require.NoError(t, err)
	require.Len(t, cats, 8)

	defaults := model.DefaultCategories()
	for i, cat := range cats {
		assert.Equal(t, defaults[i].ID, cat.ID)
		assert.Equal(t, defaults[i].Name, cat.Name)
		assert.Equal(t, defaults[i].Group, cat.Group)
		assert.True(t, defaults[i].Budget.Equal(cat.Budget))
	}
}

func TestCreateCategory(t *testing.T) {
	db := testutil.SetupTestDB(t, "alice")
	ctx := context.Background()

	created, err := db.Storage.CreateCategory(ctx, "alice", model.Category{
		ID:     "pets",
		Name:   "Animais",
		Icon:   "fa-paw",
		Color:  "#F97316",
		Group:  model.GroupWant,
		Budget: decimal.NewFromInt(60),
	})
	require.NoError(t, err)
	assert.Equal(t, "pets", created.ID)

	back, err := db.Storage.GetCategoryByID(ctx, "alice", "pets")
	require.NoError(t, err)
	require.NotNil(t, back)
	assert.Equal(t, "Animais", back.Name)
	assert.Equal(t, "60", back.Budget.String())

	// Unknown ids return nil, not an error.
	missing, err := db.Storage.GetCategoryByID(ctx, "alice", "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUpdateCategoryBudget(t *testing.T) {
	db := testutil.SetupTestDB(t, "alice")
	ctx := context.Background()

	require.NoError(t, db.Storage.UpdateCategoryBudget(ctx, "alice", "2", decimal.NewFromInt(450)))
	cat := db.MustCategory("2")
	assert.Equal(t, "450", cat.Budget.String())

	// Zero lifts the ceiling entirely.
	require.NoError(t, db.Storage.UpdateCategoryBudget(ctx, "alice", "2", decimal.Zero))
	cat = db.MustCategory("2")
	assert.True(t, cat.Budget.IsZero())

	err := db.Storage.UpdateCategoryBudget(ctx, "alice", "2", decimal.NewFromInt(-5))
	assert.ErrorIs(t, err, common.ErrValidation)

	err = db.Storage.UpdateCategoryBudget(ctx, "alice", "ghost", decimal.NewFromInt(10))
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestUpdateCategoryColor(t *testing.T) {
	db := testutil.SetupTestDB(t, "alice")
	ctx := context.Background()

	require.NoError(t, db.Storage.UpdateCategoryColor(ctx, "alice", "4", "#000000"))
	cat := db.MustCategory("4")
	assert.Equal(t, "#000000", cat.Color)

	err := db.Storage.UpdateCategoryColor(ctx, "alice", "ghost", "#FFFFFF")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestCategoryNamespaceIsolation(t *testing.T) {
	db := testutil.SetupTestDB(t, "alice")
	ctx := context.Background()
	require.NoError(t, db.Storage.EnsureUser(ctx, "bob"))

	require.NoError(t, db.Storage.UpdateCategoryBudget(ctx, "alice", "2", decimal.NewFromInt(999)))

	bobCat, err := db.Storage.GetCategoryByID(ctx, "bob", "2")
	require.NoError(t, err)
	require.NotNil(t, bobCat)
	assert.Equal(t, "300", bobCat.Budget.String(), "bob keeps the default budget")
}
