package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"todo-tracker/internal/repository"
)

func registerAlice(t *testing.T, env *testEnv) *UserDTO {
	t.Helper()
	user, err := env.users.Register(context.Background(), RegisterUserInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "hunter2",
	})
	require.NoError(t, err)
	return user
}

func TestRegisterStoresHashedPassword(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	dto := registerAlice(t, env)
	assert.NotEqual(t, dto.ID.String(), "00000000-0000-0000-0000-000000000000")

	stored, err := env.userRepo.Get(ctx, repository.Where("username = ?", "alice"))
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("hunter2")))
}

func TestRegisterRejectsTakenEmailOrUsername(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	registerAlice(t, env)

	_, err := env.users.Register(ctx, RegisterUserInput{
		Username: "alice2",
		Email:    "alice@example.com",
		Password: "secret",
	})
	assert.ErrorIs(t, err, ErrAlreadyExists)

	_, err = env.users.Register(ctx, RegisterUserInput{
		Username: "alice",
		Email:    "other@example.com",
		Password: "secret",
	})
	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestRegisterValidatesInput(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.users.Register(context.Background(), RegisterUserInput{
		Username: "alice",
		Email:    "not-an-email",
		Password: "secret",
	})
	assert.Error(t, err)
}

func TestUserUpdateKeepsPasswordHash(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	dto := registerAlice(t, env)

	before, err := env.userRepo.Get(ctx, repository.ByID(dto.ID))
	require.NoError(t, err)

	updated, err := env.users.Update(ctx, dto.ID, "alice-m", "alice.m@example.com")
	require.NoError(t, err)
	assert.Equal(t, dto.ID, updated.ID)
	assert.Equal(t, "alice-m", updated.Username)

	after, err := env.userRepo.Get(ctx, repository.ByID(dto.ID))
	require.NoError(t, err)
	assert.Equal(t, before.PasswordHash, after.PasswordHash)
}

func TestGetByUsername(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	registerAlice(t, env)

	user, err := env.users.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)

	_, err = env.users.GetByUsername(ctx, "bob")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestDeleteUser(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	dto := registerAlice(t, env)

	deleted, err := env.users.Delete(ctx, dto.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = env.users.Delete(ctx, dto.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}
