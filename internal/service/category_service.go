package service

import (
	"context"
	"fmt"

	"todo-tracker/internal/model"
	"todo-tracker/internal/repository"
)

// CategoryService wraps category business logic: duplicate-free creation by
// name, DTO projection and update/delete by identifier.
type CategoryService struct {
	repo *repository.CategoryRepository
}

func NewCategoryService(repo *repository.CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

func (s *CategoryService) Create(ctx context.Context, name string, isPrivate bool) (*CategoryDTO, error) {
	if name == "" {
		return nil, fmt.Errorf("category name is required")
	}

	exists, err := s.repo.Exists(ctx, repository.Where("name = ?", name))
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("category %q: %w", name, ErrAlreadyExists)
	}

	category := model.Category{Name: name, IsPrivate: &isPrivate}
	if err := s.repo.Create(ctx, &category); err != nil {
		return nil, err
	}
	dto := categoryToDTO(&category)
	return &dto, nil
}

func (s *CategoryService) Get(ctx context.Context, id uint) (*CategoryDTO, error) {
	category, err := s.repo.Get(ctx, repository.ByID(id))
	if err != nil {
		return nil, err
	}
	dto := categoryToDTO(category)
	return &dto, nil
}

func (s *CategoryService) GetByName(ctx context.Context, name string) (*CategoryDTO, error) {
	category, err := s.repo.Get(ctx, repository.Where("name = ?", name))
	if err != nil {
		return nil, err
	}
	dto := categoryToDTO(category)
	return &dto, nil
}

func (s *CategoryService) GetAll(ctx context.Context) ([]CategoryDTO, error) {
	categories, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	dtos := make([]CategoryDTO, 0, len(categories))
	for i := range categories {
		dtos = append(dtos, categoryToDTO(&categories[i]))
	}
	return dtos, nil
}

// Update overwrites the category's name and privacy flag, keeping its
// identity and tasks.
func (s *CategoryService) Update(ctx context.Context, id uint, name string, isPrivate bool) (*CategoryDTO, error) {
	updated := model.Category{Name: name, IsPrivate: &isPrivate}
	category, err := s.repo.Update(ctx, repository.ByID(id), &updated)
	if err != nil {
		return nil, err
	}
	dto := categoryToDTO(category)
	return &dto, nil
}

// Delete removes the category by id. Its tasks go with it at the database
// level (cascade); nothing is re-validated here.
func (s *CategoryService) Delete(ctx context.Context, id uint) (bool, error) {
	return s.repo.Delete(ctx, repository.ByID(id))
}
