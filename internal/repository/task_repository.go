package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"todo-tracker/internal/model"
)

// TaskRepository manages tasks. Get and GetAll load the task's category,
// priority, user and location in the same fetch so DTO projection downstream
// never triggers additional queries.
type TaskRepository struct {
	*Repository[model.Task]
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{Repository: NewRepository[model.Task](db), db: db}
}

func (r *TaskRepository) withRelations(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Category").
		Preload("Priority").
		Preload("User").
		Preload("Location")
}

func (r *TaskRepository) Get(ctx context.Context, filter Filter) (*model.Task, error) {
	var task model.Task
	err := filter(r.withRelations(ctx)).First(&task).Error
	switch {
	case err == nil:
		return &task, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, ErrNotFound
	default:
		return nil, fmt.Errorf("get task: %w", err)
	}
}

func (r *TaskRepository) GetAll(ctx context.Context) ([]model.Task, error) {
	tasks := make([]model.Task, 0)
	if err := r.withRelations(ctx).Order("id ASC").Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("get tasks: %w", err)
	}
	return tasks, nil
}

// TasksForCategory returns all tasks whose category name equals the argument
// (exact, case-sensitive match). No match yields an empty slice.
func (r *TaskRepository) TasksForCategory(ctx context.Context, categoryName string) ([]model.Task, error) {
	tasks := make([]model.Task, 0)
	err := r.withRelations(ctx).
		Joins("JOIN categories ON categories.id = tasks.category_id").
		Where("categories.name = ?", categoryName).
		Order("tasks.id ASC").
		Find(&tasks).Error
	if err != nil {
		return nil, fmt.Errorf("tasks for category: %w", err)
	}
	return tasks, nil
}

// TasksForUser returns all tasks owned by the named user.
func (r *TaskRepository) TasksForUser(ctx context.Context, username string) ([]model.Task, error) {
	tasks := make([]model.Task, 0)
	err := r.withRelations(ctx).
		Joins("JOIN users ON users.id = tasks.user_id").
		Where("users.username = ?", username).
		Order("tasks.id ASC").
		Find(&tasks).Error
	if err != nil {
		return nil, fmt.Errorf("tasks for user: %w", err)
	}
	return tasks, nil
}
