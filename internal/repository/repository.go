package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrNotFound reports that no row matched a filter. Callers can tell it apart
// from a genuine storage failure with errors.Is.
var ErrNotFound = errors.New("record not found")

// Filter narrows a query. It is an ordinary gorm scope, so any condition a
// caller can express composes without widening the repository interface.
type Filter func(*gorm.DB) *gorm.DB

// Where builds a filter from a plain condition.
func Where(query any, args ...any) Filter {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(query, args...)
	}
}

// ByID filters on the surrogate primary key.
func ByID(id any) Filter {
	return Where("id = ?", id)
}

// Repository provides CRUD over a single entity type. Every mutation commits
// on its own; there is no batched or deferred write mode.
type Repository[T any] struct {
	db *gorm.DB
}

func NewRepository[T any](db *gorm.DB) *Repository[T] {
	return &Repository[T]{db: db}
}

// Create inserts the entity and populates its generated key.
func (r *Repository[T]) Create(ctx context.Context, entity *T) error {
	if err := r.db.WithContext(ctx).Create(entity).Error; err != nil {
		return fmt.Errorf("create: %w", err)
	}
	return nil
}

// Get returns the first entity matching the filter, or ErrNotFound.
func (r *Repository[T]) Get(ctx context.Context, filter Filter) (*T, error) {
	var entity T
	err := filter(r.db.WithContext(ctx)).First(&entity).Error
	switch {
	case err == nil:
		return &entity, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, ErrNotFound
	default:
		return nil, fmt.Errorf("get: %w", err)
	}
}

// GetAll returns every row of the entity's table. An empty table yields an
// empty slice, never an error.
func (r *Repository[T]) GetAll(ctx context.Context) ([]T, error) {
	entities := make([]T, 0)
	if err := r.db.WithContext(ctx).Find(&entities).Error; err != nil {
		return nil, fmt.Errorf("get all: %w", err)
	}
	return entities, nil
}

// Update overwrites the scalar columns of the first entity matching the
// filter with the values from updated. The primary key and creation time are
// preserved; the refreshed entity is returned.
func (r *Repository[T]) Update(ctx context.Context, filter Filter, updated *T) (*T, error) {
	var existing T
	err := filter(r.db.WithContext(ctx)).First(&existing).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, ErrNotFound
	case err != nil:
		return nil, fmt.Errorf("update: %w", err)
	}

	err = r.db.WithContext(ctx).
		Model(&existing).
		Select("*").
		Omit("id", "created_at", clause.Associations).
		Updates(updated).Error
	if err != nil {
		return nil, fmt.Errorf("update: %w", err)
	}
	return &existing, nil
}

// Delete removes the first entity matching the filter and reports whether a
// row was removed. A miss is not an error.
func (r *Repository[T]) Delete(ctx context.Context, filter Filter) (bool, error) {
	var existing T
	err := filter(r.db.WithContext(ctx)).First(&existing).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("delete: %w", err)
	}

	res := r.db.WithContext(ctx).Delete(&existing)
	if res.Error != nil {
		return false, fmt.Errorf("delete: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

// Exists reports whether at least one row matches the filter.
func (r *Repository[T]) Exists(ctx context.Context, filter Filter) (bool, error) {
	var count int64
	if err := filter(r.db.WithContext(ctx).Model(new(T))).Count(&count).Error; err != nil {
		return false, fmt.Errorf("exists: %w", err)
	}
	return count > 0, nil
}
