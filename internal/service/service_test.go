package service

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"todo-tracker/internal/repository"
)

// testEnv wires the full service stack against a fresh in-memory database.
type testEnv struct {
	db *gorm.DB

	locationRepo *repository.LocationRepository
	priorityRepo *repository.PriorityRepository
	userRepo     *repository.UserRepository
	categoryRepo *repository.CategoryRepository
	taskRepo     *repository.TaskRepository

	tasks      *TaskService
	users      *UserService
	categories *CategoryService
	reminders  *ReminderService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := repository.NewDB(dsn)
	require.NoError(t, err)

	env := &testEnv{
		db:           db,
		locationRepo: repository.NewLocationRepository(db),
		priorityRepo: repository.NewPriorityRepository(db),
		userRepo:     repository.NewUserRepository(db),
		categoryRepo: repository.NewCategoryRepository(db),
		taskRepo:     repository.NewTaskRepository(db),
	}
	env.tasks = NewTaskService(env.locationRepo, env.priorityRepo, env.userRepo, env.categoryRepo, env.taskRepo)
	env.users = NewUserService(env.userRepo)
	env.categories = NewCategoryService(env.categoryRepo)
	env.reminders = NewReminderService(env.taskRepo)
	return env
}

// count returns the number of rows for the given model value.
func (e *testEnv) count(t *testing.T, value any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, e.db.Model(value).Count(&n).Error)
	return n
}
