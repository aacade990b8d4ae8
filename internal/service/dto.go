package service

import (
	"time"

	"github.com/google/uuid"

	"todo-tracker/internal/model"
)

// Transfer objects exposed to the UI. They are plain records decoupled from
// the persisted entities; password material never appears in them.

type CategoryDTO struct {
	ID        uint
	Name      string
	IsPrivate bool
	TaskCount int
}

type PriorityDTO struct {
	ID        uint
	Level     string
	TaskCount int
}

type LocationDTO struct {
	ID         uint
	Name       string
	Street     string
	City       string
	PostalCode string
	TaskCount  int
}

type UserDTO struct {
	ID        uuid.UUID
	Username  string
	Email     string
	TaskCount int
}

type TaskDTO struct {
	ID          uint
	Title       string
	Description string
	Deadline    *time.Time
	Status      string

	CategoryName string
	IsPrivate    bool

	PriorityLevel string

	Username string
	Email    string

	LocationName string
	Street       string
	City         string
	PostalCode   string
}

func categoryToDTO(c *model.Category) CategoryDTO {
	return CategoryDTO{
		ID:        c.ID,
		Name:      c.Name,
		IsPrivate: c.Private(),
		TaskCount: len(c.Tasks),
	}
}

func priorityToDTO(p *model.Priority) PriorityDTO {
	return PriorityDTO{ID: p.ID, Level: p.Level, TaskCount: len(p.Tasks)}
}

func locationToDTO(l *model.Location) LocationDTO {
	return LocationDTO{
		ID:         l.ID,
		Name:       l.Name,
		Street:     l.Street,
		City:       l.City,
		PostalCode: l.PostalCode,
		TaskCount:  len(l.Tasks),
	}
}

func userToDTO(u *model.User) UserDTO {
	return UserDTO{ID: u.ID, Username: u.Username, Email: u.Email, TaskCount: len(u.Tasks)}
}

// taskToDTO projects a task with its preloaded relations. The location is the
// only optional one.
func taskToDTO(t *model.Task) TaskDTO {
	dto := TaskDTO{
		ID:            t.ID,
		Title:         t.Title,
		Description:   t.Description,
		Deadline:      t.Deadline,
		Status:        t.Status,
		CategoryName:  t.Category.Name,
		IsPrivate:     t.Category.Private(),
		PriorityLevel: t.Priority.Level,
		Username:      t.User.Username,
		Email:         t.User.Email,
	}
	if t.Location != nil {
		dto.LocationName = t.Location.Name
		dto.Street = t.Location.Street
		dto.City = t.Location.City
		dto.PostalCode = t.Location.PostalCode
	}
	return dto
}

func tasksToDTOs(tasks []model.Task) []TaskDTO {
	dtos := make([]TaskDTO, 0, len(tasks))
	for i := range tasks {
		dtos = append(dtos, taskToDTO(&tasks[i]))
	}
	return dtos
}
