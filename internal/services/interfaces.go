package services

import (
	"context"

	"task-manager/internal/domain"
)

// TaskService handles task lifecycle operations.
// Positions are 1-based. The error return only reports store failures;
// lookups that miss return found == false.
type TaskService interface {
	// Task creation
	CreateTask(ctx context.Context, name, description string) (*domain.Task, error)
	CreateTaskWithName(ctx context.Context, name string) (*domain.Task, error)

	// Task lookup
	GetAllTasks(ctx context.Context) ([]*domain.Task, error)
	GetTaskByID(ctx context.Context, id string) (*domain.Task, bool, error)
	GetTaskByIndex(ctx context.Context, position int) (*domain.Task, bool, error)
	GetTaskCount(ctx context.Context) (int, error)

	// Task mutation
	RemoveTask(ctx context.Context, id string) (bool, error)
	RemoveTaskByIndex(ctx context.Context, position int) (bool, error)
	CompleteTask(ctx context.Context, id string) (bool, error)
	UpdateTask(ctx context.Context, position int, name, description string) (bool, error)
}
