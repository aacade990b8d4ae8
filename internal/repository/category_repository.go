package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"todo-tracker/internal/model"
)

// CategoryRepository manages task categories. Get and GetAll eagerly load the
// category's tasks so projection never needs a second round-trip.
type CategoryRepository struct {
	*Repository[model.Category]
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{Repository: NewRepository[model.Category](db), db: db}
}

func (r *CategoryRepository) Get(ctx context.Context, filter Filter) (*model.Category, error) {
	var category model.Category
	err := filter(r.db.WithContext(ctx).Preload("Tasks")).First(&category).Error
	switch {
	case err == nil:
		return &category, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, ErrNotFound
	default:
		return nil, fmt.Errorf("get category: %w", err)
	}
}

func (r *CategoryRepository) GetAll(ctx context.Context) ([]model.Category, error) {
	categories := make([]model.Category, 0)
	if err := r.db.WithContext(ctx).Preload("Tasks").Order("name ASC").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("get categories: %w", err)
	}
	return categories, nil
}
