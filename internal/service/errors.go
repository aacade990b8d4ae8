package service

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// ErrAlreadyExists reports a create attempt for a natural key that is already
// taken (task title, category name, priority level, user email).
var ErrAlreadyExists = errors.New("already exists")

// ErrDependencyFailed reports that one of a task's reference entities could
// not be resolved or created during orchestration.
var ErrDependencyFailed = errors.New("dependency could not be resolved")

// validate checks struct tags on service inputs.
var validate = validator.New(validator.WithRequiredStructEnabled())
