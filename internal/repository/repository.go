package repository

import (
	"context"

	"task-manager/internal/domain"
)

// TaskRepository owns the ordered collection of tasks.
// Insertion order is display order. Lookups that miss report found == false
// with a nil error; errors are reserved for backend failures.
type TaskRepository interface {
	// Save upserts by ID, keeping an existing task at its position.
	Save(ctx context.Context, task *domain.Task) (*domain.Task, error)

	FindByID(ctx context.Context, id string) (*domain.Task, bool, error)
	FindByIndex(ctx context.Context, index int) (*domain.Task, bool, error)
	// FindAll returns a snapshot; changing it never affects the repository.
	FindAll(ctx context.Context) ([]*domain.Task, error)

	DeleteByID(ctx context.Context, id string) (bool, error)
	DeleteByIndex(ctx context.Context, index int) (bool, error)

	Count(ctx context.Context) (int, error)
	ExistsByID(ctx context.Context, id string) (bool, error)

	Close() error
}
