package service

import (
	"context"
	"fmt"

	"todo-tracker/internal/model"
	"todo-tracker/internal/repository"
)

// PriorityService wraps priority reference rows. Levels are free-form labels
// ("1", "2", "3") deduplicated on create.
type PriorityService struct {
	repo *repository.PriorityRepository
}

func NewPriorityService(repo *repository.PriorityRepository) *PriorityService {
	return &PriorityService{repo: repo}
}

func (s *PriorityService) Create(ctx context.Context, level string) (*PriorityDTO, error) {
	if level == "" {
		return nil, fmt.Errorf("priority level is required")
	}

	exists, err := s.repo.Exists(ctx, repository.Where("level = ?", level))
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("priority %q: %w", level, ErrAlreadyExists)
	}

	priority := model.Priority{Level: level}
	if err := s.repo.Create(ctx, &priority); err != nil {
		return nil, err
	}
	dto := priorityToDTO(&priority)
	return &dto, nil
}

func (s *PriorityService) Get(ctx context.Context, id uint) (*PriorityDTO, error) {
	priority, err := s.repo.Get(ctx, repository.ByID(id))
	if err != nil {
		return nil, err
	}
	dto := priorityToDTO(priority)
	return &dto, nil
}

func (s *PriorityService) GetAll(ctx context.Context) ([]PriorityDTO, error) {
	priorities, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	dtos := make([]PriorityDTO, 0, len(priorities))
	for i := range priorities {
		dtos = append(dtos, priorityToDTO(&priorities[i]))
	}
	return dtos, nil
}

func (s *PriorityService) Update(ctx context.Context, id uint, level string) (*PriorityDTO, error) {
	updated := model.Priority{Level: level}
	priority, err := s.repo.Update(ctx, repository.ByID(id), &updated)
	if err != nil {
		return nil, err
	}
	dto := priorityToDTO(priority)
	return &dto, nil
}

func (s *PriorityService) Delete(ctx context.Context, id uint) (bool, error) {
	return s.repo.Delete(ctx, repository.ByID(id))
}
