package repository

import (
	"context"
	"sync"

	"task-manager/internal/domain"
	"task-manager/internal/errors"
)

// MemoryRepository keeps tasks in a slice for the lifetime of the process.
// A single lock guards the whole sequence. Tasks are copied on the way in and
// out, so callers never share state with the repository.
type MemoryRepository struct {
	mu    sync.RWMutex
	tasks []*domain.Task
}

// NewMemoryRepository creates an empty in-memory repository
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		tasks: make([]*domain.Task, 0),
	}
}

// Save appends a new task or replaces the stored task with the same ID in place
func (r *MemoryRepository) Save(_ context.Context, task *domain.Task) (*domain.Task, error) {
	if task == nil {
		return nil, errors.NewInvalidArgumentError("task", "cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if i := r.indexOf(task.ID()); i >= 0 {
		r.tasks[i] = task.Clone()
	} else {
		r.tasks = append(r.tasks, task.Clone())
	}
	return task, nil
}

// FindByID scans for the task with the given ID
func (r *MemoryRepository) FindByID(_ context.Context, id string) (*domain.Task, bool, error) {
	if id == "" {
		return nil, false, nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if i := r.indexOf(id); i >= 0 {
		return r.tasks[i].Clone(), true, nil
	}
	return nil, false, nil
}

// FindByIndex returns the task at the zero-based position
func (r *MemoryRepository) FindByIndex(_ context.Context, index int) (*domain.Task, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if !r.inBounds(index) {
		return nil, false, nil
	}
	return r.tasks[index].Clone(), true, nil
}

// FindAll returns a copy of every task in insertion order
func (r *MemoryRepository) FindAll(_ context.Context) ([]*domain.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshot := make([]*domain.Task, len(r.tasks))
	for i, task := range r.tasks {
		snapshot[i] = task.Clone()
	}
	return snapshot, nil
}

// DeleteByID removes the task with the given ID
func (r *MemoryRepository) DeleteByID(_ context.Context, id string) (bool, error) {
	if id == "" {
		return false, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return false, nil
	}
	r.removeAt(i)
	return true, nil
}

// DeleteByIndex removes the task at the zero-based position
func (r *MemoryRepository) DeleteByIndex(_ context.Context, index int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.inBounds(index) {
		return false, nil
	}
	r.removeAt(index)
	return true, nil
}

// Count returns the number of stored tasks
func (r *MemoryRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.tasks), nil
}

// ExistsByID reports whether a task with the given ID is stored
func (r *MemoryRepository) ExistsByID(ctx context.Context, id string) (bool, error) {
	_, found, err := r.FindByID(ctx, id)
	return found, err
}

// Close is a no-op for the in-memory repository
func (r *MemoryRepository) Close() error {
	return nil
}

// indexOf must be called with the lock held
func (r *MemoryRepository) indexOf(id string) int {
	for i, task := range r.tasks {
		if task.ID() == id {
			return i
		}
	}
	return -1
}

func (r *MemoryRepository) inBounds(index int) bool {
	return index >= 0 && index < len(r.tasks)
}

func (r *MemoryRepository) removeAt(index int) {
	copy(r.tasks[index:], r.tasks[index+1:])
	r.tasks[len(r.tasks)-1] = nil
	r.tasks = r.tasks[:len(r.tasks)-1]
}
