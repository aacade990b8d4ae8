package repository

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"todo-tracker/internal/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := NewDB(dsn)
	require.NoError(t, err)
	return db
}

func TestGetAllEmptyTable(t *testing.T) {
	repo := NewRepository[model.Category](newTestDB(t))

	categories, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, categories)
	assert.Empty(t, categories)
}

func TestCreatePopulatesGeneratedKey(t *testing.T) {
	repo := NewRepository[model.Category](newTestDB(t))

	category := model.Category{Name: "Errands"}
	require.NoError(t, repo.Create(context.Background(), &category))
	assert.NotZero(t, category.ID)
}

func TestGetByFilter(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository[model.Priority](newTestDB(t))

	require.NoError(t, repo.Create(ctx, &model.Priority{Level: "1"}))
	require.NoError(t, repo.Create(ctx, &model.Priority{Level: "2"}))

	priority, err := repo.Get(ctx, Where("level = ?", "2"))
	require.NoError(t, err)
	assert.Equal(t, "2", priority.Level)

	_, err = repo.Get(ctx, Where("level = ?", "9"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdatePreservesIdentity(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository[model.Location](newTestDB(t))

	location := model.Location{Name: "Store", City: "Malmo"}
	require.NoError(t, repo.Create(ctx, &location))

	updated, err := repo.Update(ctx, ByID(location.ID), &model.Location{Name: "Warehouse", City: "Lund"})
	require.NoError(t, err)
	assert.Equal(t, location.ID, updated.ID)
	assert.Equal(t, "Warehouse", updated.Name)

	fresh, err := repo.Get(ctx, ByID(location.ID))
	require.NoError(t, err)
	assert.Equal(t, "Warehouse", fresh.Name)
	assert.Equal(t, "Lund", fresh.City)
}

func TestUpdateOverwritesAllScalarColumns(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository[model.Location](newTestDB(t))

	location := model.Location{Name: "Store", Street: "Main st 1", City: "Malmo", PostalCode: "21145"}
	require.NoError(t, repo.Create(ctx, &location))

	// Zero fields in the replacement clear the stored values too.
	_, err := repo.Update(ctx, ByID(location.ID), &model.Location{Name: "Store"})
	require.NoError(t, err)

	fresh, err := repo.Get(ctx, ByID(location.ID))
	require.NoError(t, err)
	assert.Equal(t, "Store", fresh.Name)
	assert.Empty(t, fresh.Street)
	assert.Empty(t, fresh.City)
}

func TestUpdateMissingRow(t *testing.T) {
	repo := NewRepository[model.Category](newTestDB(t))

	_, err := repo.Update(context.Background(), ByID(42), &model.Category{Name: "nope"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteReportsWhetherRowWasRemoved(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository[model.Category](newTestDB(t))

	category := model.Category{Name: "Errands"}
	require.NoError(t, repo.Create(ctx, &category))

	deleted, err := repo.Delete(ctx, ByID(category.ID))
	require.NoError(t, err)
	assert.True(t, deleted)

	// Absent rows are a miss, not a failure.
	deleted, err = repo.Delete(ctx, ByID(category.ID))
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestExists(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository[model.Category](newTestDB(t))

	exists, err := repo.Exists(ctx, Where("name = ?", "Errands"))
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, repo.Create(ctx, &model.Category{Name: "Errands"}))

	exists, err = repo.Exists(ctx, Where("name = ?", "Errands"))
	require.NoError(t, err)
	assert.True(t, exists)
}
