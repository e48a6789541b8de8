package domain

import (
	"fmt"

	"github.com/google/uuid"

	"task-manager/internal/errors"
	"task-manager/internal/validation"
)

// nameValidator carries the rule every Task holds: a trimmed, non-blank name.
// Length caps are configuration and are applied by the task service.
var nameValidator = validation.NewTaskValidator()

// Task represents a task in the domain model.
// Identity is the opaque ID; two tasks with the same ID are the same task
// regardless of their other fields.
type Task struct {
	id          string
	name        string
	description string
	completed   bool
}

// NewTask creates a pending Task with a freshly generated ID.
// The name is trimmed and must not be blank.
func NewTask(name, description string) (*Task, error) {
	return NewTaskWithID(uuid.NewString(), name, description)
}

// NewTaskWithID creates a pending Task that keeps the given ID verbatim.
// Used when rebuilding tasks from storage.
func NewTaskWithID(id, name, description string) (*Task, error) {
	if id == "" {
		return nil, errors.NewInvalidArgumentError("task id", "cannot be empty")
	}
	validName, err := validateName(name)
	if err != nil {
		return nil, err
	}
	return &Task{
		id:          id,
		name:        validName,
		description: description,
	}, nil
}

func validateName(name string) (string, error) {
	validName, err := nameValidator.GetValidTaskName(name)
	if err != nil {
		return "", errors.NewValidationError("invalid task name", err)
	}
	return validName, nil
}

// ID returns the task's immutable identifier.
func (t *Task) ID() string {
	return t.id
}

// Name returns the trimmed task name.
func (t *Task) Name() string {
	return t.name
}

// SetName replaces the name. A blank name is rejected and the current name is kept.
func (t *Task) SetName(name string) error {
	validName, err := validateName(name)
	if err != nil {
		return err
	}
	t.name = validName
	return nil
}

// Description returns the task description, empty when none was given.
func (t *Task) Description() string {
	return t.description
}

// SetDescription replaces the description.
func (t *Task) SetDescription(description string) {
	t.description = description
}

// IsCompleted reports whether the task has been completed.
func (t *Task) IsCompleted() bool {
	return t.completed
}

// SetCompleted sets the completion flag directly.
func (t *Task) SetCompleted(completed bool) {
	t.completed = completed
}

// MarkAsCompleted marks the task as done. Calling it again has no further effect.
func (t *Task) MarkAsCompleted() {
	t.completed = true
}

// Equal reports whether both tasks share the same ID.
func (t *Task) Equal(other *Task) bool {
	if t == nil || other == nil {
		return t == other
	}
	return t.id == other.id
}

// Clone returns an independent copy of the task.
func (t *Task) Clone() *Task {
	if t == nil {
		return nil
	}
	clone := *t
	return &clone
}

// String returns a debug representation of the task.
func (t *Task) String() string {
	return fmt.Sprintf("Task{id='%s', name='%s', completed=%t}", t.id, t.name, t.completed)
}
