package services

import (
	"context"

	"task-manager/internal/domain"
	"task-manager/internal/errors"
	"task-manager/internal/logging"
	"task-manager/internal/repository"
	"task-manager/internal/validation"
)

// taskServiceImpl implements the TaskService interface
type taskServiceImpl struct {
	repo          repository.TaskRepository
	taskValidator *validation.TaskValidator
}

// NewTaskService creates a new TaskService instance.
// A nil validator means names have no length cap.
func NewTaskService(repo repository.TaskRepository, taskValidator *validation.TaskValidator) (TaskService, error) {
	if repo == nil {
		return nil, errors.NewInvalidArgumentError("task repository", "cannot be nil")
	}
	if taskValidator == nil {
		taskValidator = validation.NewTaskValidator()
	}
	return &taskServiceImpl{
		repo:          repo,
		taskValidator: taskValidator,
	}, nil
}

// checkNameLength applies the configured length cap. The non-blank rule
// belongs to domain.Task itself and is enforced by NewTask and SetName.
func (s *taskServiceImpl) checkNameLength(name string) error {
	if err := s.taskValidator.ValidateTaskNameLength(name); err != nil {
		return errors.NewValidationError("invalid task name", err)
	}
	return nil
}

// CreateTask creates and stores a new pending task
func (s *taskServiceImpl) CreateTask(ctx context.Context, name, description string) (*domain.Task, error) {
	if err := s.checkNameLength(name); err != nil {
		return nil, err
	}

	task, err := domain.NewTask(name, description)
	if err != nil {
		return nil, err
	}

	saved, err := s.repo.Save(ctx, task)
	if err != nil {
		return nil, err
	}

	logging.Debugf("task service: created %s\n", saved)
	return saved, nil
}

// CreateTaskWithName creates a task with an empty description
func (s *taskServiceImpl) CreateTaskWithName(ctx context.Context, name string) (*domain.Task, error) {
	return s.CreateTask(ctx, name, "")
}

func (s *taskServiceImpl) GetAllTasks(ctx context.Context) ([]*domain.Task, error) {
	return s.repo.FindAll(ctx)
}

func (s *taskServiceImpl) GetTaskByID(ctx context.Context, id string) (*domain.Task, bool, error) {
	return s.repo.FindByID(ctx, id)
}

// GetTaskByIndex resolves a 1-based position; zero and negative positions are never found
func (s *taskServiceImpl) GetTaskByIndex(ctx context.Context, position int) (*domain.Task, bool, error) {
	return s.repo.FindByIndex(ctx, position-1)
}

func (s *taskServiceImpl) GetTaskCount(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}

func (s *taskServiceImpl) RemoveTask(ctx context.Context, id string) (bool, error) {
	removed, err := s.repo.DeleteByID(ctx, id)
	if err != nil {
		return false, err
	}
	logging.Debugf("task service: remove id=%q removed=%t\n", id, removed)
	return removed, nil
}

func (s *taskServiceImpl) RemoveTaskByIndex(ctx context.Context, position int) (bool, error) {
	removed, err := s.repo.DeleteByIndex(ctx, position-1)
	if err != nil {
		return false, err
	}
	logging.Debugf("task service: remove position=%d removed=%t\n", position, removed)
	return removed, nil
}

// CompleteTask marks the task as completed. Completing an already completed
// task succeeds again.
func (s *taskServiceImpl) CompleteTask(ctx context.Context, id string) (bool, error) {
	task, found, err := s.repo.FindByID(ctx, id)
	if err != nil || !found {
		return false, err
	}

	task.MarkAsCompleted()
	if _, err := s.repo.Save(ctx, task); err != nil {
		return false, err
	}
	return true, nil
}

// UpdateTask renames the task at position and replaces its description.
// A missing task or a rejected name both yield false with a nil error,
// and the stored task is left untouched.
func (s *taskServiceImpl) UpdateTask(ctx context.Context, position int, name, description string) (bool, error) {
	task, found, err := s.GetTaskByIndex(ctx, position)
	if err != nil || !found {
		return false, err
	}

	if err := s.checkNameLength(name); err != nil {
		logging.Debugf("task service: update position=%d rejected: %v\n", position, err)
		return false, nil
	}
	if err := task.SetName(name); err != nil {
		logging.Debugf("task service: update position=%d rejected: %v\n", position, err)
		return false, nil
	}
	task.SetDescription(description)

	if _, err := s.repo.Save(ctx, task); err != nil {
		return false, err
	}
	return true, nil
}
