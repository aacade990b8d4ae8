package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"todo-tracker/internal/model"
)

// PriorityRepository manages priority reference rows, tasks included.
type PriorityRepository struct {
	*Repository[model.Priority]
	db *gorm.DB
}

func NewPriorityRepository(db *gorm.DB) *PriorityRepository {
	return &PriorityRepository{Repository: NewRepository[model.Priority](db), db: db}
}

func (r *PriorityRepository) Get(ctx context.Context, filter Filter) (*model.Priority, error) {
	var priority model.Priority
	err := filter(r.db.WithContext(ctx).Preload("Tasks")).First(&priority).Error
	switch {
	case err == nil:
		return &priority, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, ErrNotFound
	default:
		return nil, fmt.Errorf("get priority: %w", err)
	}
}

func (r *PriorityRepository) GetAll(ctx context.Context) ([]model.Priority, error) {
	priorities := make([]model.Priority, 0)
	if err := r.db.WithContext(ctx).Preload("Tasks").Order("level ASC").Find(&priorities).Error; err != nil {
		return nil, fmt.Errorf("get priorities: %w", err)
	}
	return priorities, nil
}
