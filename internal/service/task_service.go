package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"todo-tracker/internal/model"
	"todo-tracker/internal/repository"
)

// CreateTaskInput carries the task's own fields plus the denormalized fields
// of the four entities Create resolves into reference rows.
type CreateTaskInput struct {
	Title       string `validate:"required"`
	Description string
	Deadline    *time.Time
	Status      string

	CategoryName string `validate:"required"`
	IsPrivate    bool

	PriorityLevel string `validate:"required"`

	Username string `validate:"required"`
	Email    string `validate:"required,email"`
	Password string `validate:"required"`

	LocationName string
	Street       string
	City         string
	PostalCode   string `validate:"omitempty,max=6"`
}

func (in CreateTaskInput) hasLocation() bool {
	return in.LocationName != "" || in.Street != "" || in.City != "" || in.PostalCode != ""
}

// UpdateTaskInput is the richer update variant: besides the scalar fields,
// the category, priority and location may be re-pointed by natural key, and
// the category privacy flag edited. An empty location name detaches the task
// from its location.
type UpdateTaskInput struct {
	ID          uint   `validate:"required"`
	Title       string `validate:"required"`
	Description string
	Deadline    *time.Time
	Status      string

	CategoryName  string `validate:"required"`
	IsPrivate     bool
	PriorityLevel string `validate:"required"`
	LocationName  string
}

// TaskService orchestrates task creation across the four reference
// repositories and provides lookup, projection, update and removal.
type TaskService struct {
	locations  *repository.LocationRepository
	priorities *repository.PriorityRepository
	users      *repository.UserRepository
	categories *repository.CategoryRepository
	tasks      *repository.TaskRepository
}

func NewTaskService(
	locations *repository.LocationRepository,
	priorities *repository.PriorityRepository,
	users *repository.UserRepository,
	categories *repository.CategoryRepository,
	tasks *repository.TaskRepository,
) *TaskService {
	return &TaskService{
		locations:  locations,
		priorities: priorities,
		users:      users,
		categories: categories,
		tasks:      tasks,
	}
}

// Create resolves or creates the task's location, priority, user and
// category, then inserts the task referencing all four.
//
// The steps are sequential, individually committed operations, not one
// transaction: reference rows created before a later failure stay behind and
// are reused by natural key on the next attempt. The title check is a guard
// against duplicate quick entries, not a unique constraint.
func (s *TaskService) Create(ctx context.Context, input CreateTaskInput) (*TaskDTO, error) {
	if err := validate.Struct(input); err != nil {
		return nil, fmt.Errorf("invalid task: %w", err)
	}

	exists, err := s.tasks.Exists(ctx, repository.Where("title = ?", input.Title))
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("task %q: %w", input.Title, ErrAlreadyExists)
	}

	var locationID *uint
	if input.hasLocation() {
		location, err := s.resolveLocation(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("%w: location %q: %v", ErrDependencyFailed, input.LocationName, err)
		}
		locationID = &location.ID
	}

	priority, err := s.resolvePriority(ctx, input.PriorityLevel)
	if err != nil {
		return nil, fmt.Errorf("%w: priority %q: %v", ErrDependencyFailed, input.PriorityLevel, err)
	}

	user, err := s.resolveUser(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("%w: user %q: %v", ErrDependencyFailed, input.Username, err)
	}

	category, err := s.resolveCategory(ctx, input.CategoryName, input.IsPrivate)
	if err != nil {
		return nil, fmt.Errorf("%w: category %q: %v", ErrDependencyFailed, input.CategoryName, err)
	}

	task := model.Task{
		Title:       input.Title,
		Description: input.Description,
		Deadline:    input.Deadline,
		Status:      statusOrDefault(input.Status),
		CategoryID:  category.ID,
		PriorityID:  priority.ID,
		UserID:      user.ID,
		LocationID:  locationID,
	}
	if err := s.tasks.Create(ctx, &task); err != nil {
		return nil, err
	}

	// Re-read so the DTO carries the related rows.
	created, err := s.tasks.Get(ctx, repository.ByID(task.ID))
	if err != nil {
		return nil, err
	}
	dto := taskToDTO(created)
	return &dto, nil
}

func (s *TaskService) resolveLocation(ctx context.Context, input CreateTaskInput) (*model.Location, error) {
	location, err := s.locations.Get(ctx, repository.Where("name = ?", input.LocationName))
	switch {
	case err == nil:
		return location, nil
	case errors.Is(err, repository.ErrNotFound):
		created := model.Location{
			Name:       input.LocationName,
			Street:     input.Street,
			City:       input.City,
			PostalCode: input.PostalCode,
		}
		if err := s.locations.Create(ctx, &created); err != nil {
			return nil, err
		}
		return &created, nil
	default:
		return nil, err
	}
}

func (s *TaskService) resolvePriority(ctx context.Context, level string) (*model.Priority, error) {
	priority, err := s.priorities.Get(ctx, repository.Where("level = ?", level))
	switch {
	case err == nil:
		return priority, nil
	case errors.Is(err, repository.ErrNotFound):
		created := model.Priority{Level: level}
		if err := s.priorities.Create(ctx, &created); err != nil {
			return nil, err
		}
		return &created, nil
	default:
		return nil, err
	}
}

func (s *TaskService) resolveUser(ctx context.Context, input CreateTaskInput) (*model.User, error) {
	user, err := s.users.Get(ctx, repository.Where("username = ?", input.Username))
	switch {
	case err == nil:
		return user, nil
	case errors.Is(err, repository.ErrNotFound):
		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		created := model.User{
			Username:     input.Username,
			Email:        input.Email,
			PasswordHash: string(hash),
		}
		if err := s.users.Create(ctx, &created); err != nil {
			return nil, err
		}
		return &created, nil
	default:
		return nil, err
	}
}

func (s *TaskService) resolveCategory(ctx context.Context, name string, isPrivate bool) (*model.Category, error) {
	category, err := s.categories.Get(ctx, repository.Where("name = ?", name))
	switch {
	case err == nil:
		return category, nil
	case errors.Is(err, repository.ErrNotFound):
		created := model.Category{Name: name, IsPrivate: &isPrivate}
		if err := s.categories.Create(ctx, &created); err != nil {
			return nil, err
		}
		return &created, nil
	default:
		return nil, err
	}
}

func (s *TaskService) Get(ctx context.Context, id uint) (*TaskDTO, error) {
	task, err := s.tasks.Get(ctx, repository.ByID(id))
	if err != nil {
		return nil, err
	}
	dto := taskToDTO(task)
	return &dto, nil
}

func (s *TaskService) GetByTitle(ctx context.Context, title string) (*TaskDTO, error) {
	task, err := s.tasks.Get(ctx, repository.Where("title = ?", title))
	if err != nil {
		return nil, err
	}
	dto := taskToDTO(task)
	return &dto, nil
}

func (s *TaskService) GetAll(ctx context.Context) ([]TaskDTO, error) {
	tasks, err := s.tasks.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return tasksToDTOs(tasks), nil
}

// Update overwrites the task's scalar fields and re-points its category,
// priority and location by natural key, creating missing reference rows the
// same way Create does. The owning user never changes.
func (s *TaskService) Update(ctx context.Context, input UpdateTaskInput) (*TaskDTO, error) {
	if err := validate.Struct(input); err != nil {
		return nil, fmt.Errorf("invalid task: %w", err)
	}

	existing, err := s.tasks.Get(ctx, repository.ByID(input.ID))
	if err != nil {
		return nil, err
	}

	category, err := s.resolveCategory(ctx, input.CategoryName, input.IsPrivate)
	if err != nil {
		return nil, fmt.Errorf("%w: category %q: %v", ErrDependencyFailed, input.CategoryName, err)
	}
	if category.Private() != input.IsPrivate {
		flag := input.IsPrivate
		category.IsPrivate = &flag
		if _, err := s.categories.Update(ctx, repository.ByID(category.ID), category); err != nil {
			return nil, fmt.Errorf("%w: category %q: %v", ErrDependencyFailed, input.CategoryName, err)
		}
	}

	priority, err := s.resolvePriority(ctx, input.PriorityLevel)
	if err != nil {
		return nil, fmt.Errorf("%w: priority %q: %v", ErrDependencyFailed, input.PriorityLevel, err)
	}

	var locationID *uint
	if input.LocationName != "" {
		location, err := s.resolveLocation(ctx, CreateTaskInput{LocationName: input.LocationName})
		if err != nil {
			return nil, fmt.Errorf("%w: location %q: %v", ErrDependencyFailed, input.LocationName, err)
		}
		locationID = &location.ID
	}

	updated := model.Task{
		Title:       input.Title,
		Description: input.Description,
		Deadline:    input.Deadline,
		Status:      statusOrDefault(input.Status),
		CategoryID:  category.ID,
		PriorityID:  priority.ID,
		UserID:      existing.UserID,
		LocationID:  locationID,
	}
	if _, err := s.tasks.Update(ctx, repository.ByID(input.ID), &updated); err != nil {
		return nil, err
	}

	fresh, err := s.tasks.Get(ctx, repository.ByID(input.ID))
	if err != nil {
		return nil, err
	}
	dto := taskToDTO(fresh)
	return &dto, nil
}

// MarkDone flips the task's status to done.
func (s *TaskService) MarkDone(ctx context.Context, id uint) (*TaskDTO, error) {
	existing, err := s.tasks.Get(ctx, repository.ByID(id))
	if err != nil {
		return nil, err
	}
	if existing.Status == model.StatusDone {
		return nil, fmt.Errorf("task #%d: %w", id, ErrAlreadyExists)
	}

	existing.Status = model.StatusDone
	if _, err := s.tasks.Update(ctx, repository.ByID(id), existing); err != nil {
		return nil, err
	}

	fresh, err := s.tasks.Get(ctx, repository.ByID(id))
	if err != nil {
		return nil, err
	}
	dto := taskToDTO(fresh)
	return &dto, nil
}

// Delete removes the task by id and reports whether a row was removed.
func (s *TaskService) Delete(ctx context.Context, id uint) (bool, error) {
	return s.tasks.Delete(ctx, repository.ByID(id))
}

// TasksForCategory lists tasks under the named category. No match is an
// empty list, not an error.
func (s *TaskService) TasksForCategory(ctx context.Context, categoryName string) ([]TaskDTO, error) {
	tasks, err := s.tasks.TasksForCategory(ctx, categoryName)
	if err != nil {
		return nil, err
	}
	return tasksToDTOs(tasks), nil
}

// TasksForUser lists tasks owned by the named user.
func (s *TaskService) TasksForUser(ctx context.Context, username string) ([]TaskDTO, error) {
	tasks, err := s.tasks.TasksForUser(ctx, username)
	if err != nil {
		return nil, err
	}
	return tasksToDTOs(tasks), nil
}

func statusOrDefault(status string) string {
	if status == "" {
		return model.StatusTodo
	}
	return status
}
