package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"todo-tracker/internal/model"
	"todo-tracker/internal/repository"
)

// RegisterUserInput carries registration data. The password is hashed before
// it reaches the store.
type RegisterUserInput struct {
	Username string `validate:"required"`
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

// UserService wraps user business logic.
type UserService struct {
	repo *repository.UserRepository
}

func NewUserService(repo *repository.UserRepository) *UserService {
	return &UserService{repo: repo}
}

// Register creates a user unless the email or username is already taken.
func (s *UserService) Register(ctx context.Context, input RegisterUserInput) (*UserDTO, error) {
	if err := validate.Struct(input); err != nil {
		return nil, fmt.Errorf("invalid user: %w", err)
	}

	exists, err := s.repo.Exists(ctx, repository.Where("email = ? OR username = ?", input.Email, input.Username))
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("user %q: %w", input.Username, ErrAlreadyExists)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := model.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(hash),
	}
	if err := s.repo.Create(ctx, &user); err != nil {
		return nil, err
	}
	dto := userToDTO(&user)
	return &dto, nil
}

func (s *UserService) Get(ctx context.Context, id uuid.UUID) (*UserDTO, error) {
	user, err := s.repo.Get(ctx, repository.ByID(id))
	if err != nil {
		return nil, err
	}
	dto := userToDTO(user)
	return &dto, nil
}

func (s *UserService) GetByUsername(ctx context.Context, username string) (*UserDTO, error) {
	user, err := s.repo.Get(ctx, repository.Where("username = ?", username))
	if err != nil {
		return nil, err
	}
	dto := userToDTO(user)
	return &dto, nil
}

func (s *UserService) GetAll(ctx context.Context) ([]UserDTO, error) {
	users, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	dtos := make([]UserDTO, 0, len(users))
	for i := range users {
		dtos = append(dtos, userToDTO(&users[i]))
	}
	return dtos, nil
}

// Update changes the username and email. The password hash is carried over
// from the stored row so a profile edit can never blank it.
func (s *UserService) Update(ctx context.Context, id uuid.UUID, username, email string) (*UserDTO, error) {
	existing, err := s.repo.Get(ctx, repository.ByID(id))
	if err != nil {
		return nil, err
	}

	updated := model.User{
		Username:     username,
		Email:        email,
		PasswordHash: existing.PasswordHash,
	}
	user, err := s.repo.Update(ctx, repository.ByID(id), &updated)
	if err != nil {
		return nil, err
	}
	dto := userToDTO(user)
	return &dto, nil
}

func (s *UserService) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	return s.repo.Delete(ctx, repository.ByID(id))
}
