package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"todo-tracker/internal/model"
)

// UserRepository manages users, tasks included.
type UserRepository struct {
	*Repository[model.User]
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{Repository: NewRepository[model.User](db), db: db}
}

func (r *UserRepository) Get(ctx context.Context, filter Filter) (*model.User, error) {
	var user model.User
	err := filter(r.db.WithContext(ctx).Preload("Tasks")).First(&user).Error
	switch {
	case err == nil:
		return &user, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, ErrNotFound
	default:
		return nil, fmt.Errorf("get user: %w", err)
	}
}

func (r *UserRepository) GetAll(ctx context.Context) ([]model.User, error) {
	users := make([]model.User, 0)
	if err := r.db.WithContext(ctx).Preload("Tasks").Order("username ASC").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("get users: %w", err)
	}
	return users, nil
}
