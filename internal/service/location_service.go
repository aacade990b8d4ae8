package service

import (
	"context"
	"fmt"

	"todo-tracker/internal/model"
	"todo-tracker/internal/repository"
)

// LocationInput carries the fields a caller may set on a location. All of
// them are optional except the name, which doubles as the natural key.
type LocationInput struct {
	Name       string `validate:"required"`
	Street     string
	City       string
	PostalCode string `validate:"omitempty,max=6"`
}

// LocationService wraps location business logic.
type LocationService struct {
	repo *repository.LocationRepository
}

func NewLocationService(repo *repository.LocationRepository) *LocationService {
	return &LocationService{repo: repo}
}

func (s *LocationService) Create(ctx context.Context, input LocationInput) (*LocationDTO, error) {
	if err := validate.Struct(input); err != nil {
		return nil, fmt.Errorf("invalid location: %w", err)
	}

	exists, err := s.repo.Exists(ctx, repository.Where("name = ?", input.Name))
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("location %q: %w", input.Name, ErrAlreadyExists)
	}

	location := model.Location{
		Name:       input.Name,
		Street:     input.Street,
		City:       input.City,
		PostalCode: input.PostalCode,
	}
	if err := s.repo.Create(ctx, &location); err != nil {
		return nil, err
	}
	dto := locationToDTO(&location)
	return &dto, nil
}

func (s *LocationService) Get(ctx context.Context, id uint) (*LocationDTO, error) {
	location, err := s.repo.Get(ctx, repository.ByID(id))
	if err != nil {
		return nil, err
	}
	dto := locationToDTO(location)
	return &dto, nil
}

func (s *LocationService) GetAll(ctx context.Context) ([]LocationDTO, error) {
	locations, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	dtos := make([]LocationDTO, 0, len(locations))
	for i := range locations {
		dtos = append(dtos, locationToDTO(&locations[i]))
	}
	return dtos, nil
}

func (s *LocationService) Update(ctx context.Context, id uint, input LocationInput) (*LocationDTO, error) {
	if err := validate.Struct(input); err != nil {
		return nil, fmt.Errorf("invalid location: %w", err)
	}

	updated := model.Location{
		Name:       input.Name,
		Street:     input.Street,
		City:       input.City,
		PostalCode: input.PostalCode,
	}
	location, err := s.repo.Update(ctx, repository.ByID(id), &updated)
	if err != nil {
		return nil, err
	}
	dto := locationToDTO(location)
	return &dto, nil
}

func (s *LocationService) Delete(ctx context.Context, id uint) (bool, error) {
	return s.repo.Delete(ctx, repository.ByID(id))
}
