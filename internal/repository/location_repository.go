package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"todo-tracker/internal/model"
)

// LocationRepository manages locations, tasks included.
type LocationRepository struct {
	*Repository[model.Location]
	db *gorm.DB
}

func NewLocationRepository(db *gorm.DB) *LocationRepository {
	return &LocationRepository{Repository: NewRepository[model.Location](db), db: db}
}

func (r *LocationRepository) Get(ctx context.Context, filter Filter) (*model.Location, error) {
	var location model.Location
	err := filter(r.db.WithContext(ctx).Preload("Tasks")).First(&location).Error
	switch {
	case err == nil:
		return &location, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, ErrNotFound
	default:
		return nil, fmt.Errorf("get location: %w", err)
	}
}

func (r *LocationRepository) GetAll(ctx context.Context) ([]model.Location, error) {
	locations := make([]model.Location, 0)
	if err := r.db.WithContext(ctx).Preload("Tasks").Order("name ASC").Find(&locations).Error; err != nil {
		return nil, fmt.Errorf("get locations: %w", err)
	}
	return locations, nil
}
