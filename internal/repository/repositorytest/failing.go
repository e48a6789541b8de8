package repositorytest

import (
	"context"
	stderrors "errors"

	"task-manager/internal/domain"
	"task-manager/internal/errors"
	"task-manager/internal/repository"
)

// ErrBackend is the cause carried by every FailingRepository error.
var ErrBackend = stderrors.New("backend unavailable")

// FailingRepository wraps a repository and fails the operations named in FailOn
// with a storage error. Operations not listed are delegated.
type FailingRepository struct {
	repository.TaskRepository
	FailOn map[string]bool
}

// NewFailingRepository wraps repo so that the named operations fail.
func NewFailingRepository(repo repository.TaskRepository, ops ...string) *FailingRepository {
	failOn := make(map[string]bool, len(ops))
	for _, op := range ops {
		failOn[op] = true
	}
	return &FailingRepository{TaskRepository: repo, FailOn: failOn}
}

func (r *FailingRepository) fail(op string) error {
	if r.FailOn[op] {
		return errors.NewStorageError(op, ErrBackend)
	}
	return nil
}

func (r *FailingRepository) Save(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	if err := r.fail("save"); err != nil {
		return nil, err
	}
	return r.TaskRepository.Save(ctx, task)
}

func (r *FailingRepository) FindByID(ctx context.Context, id string) (*domain.Task, bool, error) {
	if err := r.fail("find_by_id"); err != nil {
		return nil, false, err
	}
	return r.TaskRepository.FindByID(ctx, id)
}

func (r *FailingRepository) FindByIndex(ctx context.Context, index int) (*domain.Task, bool, error) {
	if err := r.fail("find_by_index"); err != nil {
		return nil, false, err
	}
	return r.TaskRepository.FindByIndex(ctx, index)
}

func (r *FailingRepository) FindAll(ctx context.Context) ([]*domain.Task, error) {
	if err := r.fail("find_all"); err != nil {
		return nil, err
	}
	return r.TaskRepository.FindAll(ctx)
}

func (r *FailingRepository) DeleteByID(ctx context.Context, id string) (bool, error) {
	if err := r.fail("delete_by_id"); err != nil {
		return false, err
	}
	return r.TaskRepository.DeleteByID(ctx, id)
}

func (r *FailingRepository) DeleteByIndex(ctx context.Context, index int) (bool, error) {
	if err := r.fail("delete_by_index"); err != nil {
		return false, err
	}
	return r.TaskRepository.DeleteByIndex(ctx, index)
}

func (r *FailingRepository) Count(ctx context.Context) (int, error) {
	if err := r.fail("count"); err != nil {
		return 0, err
	}
	return r.TaskRepository.Count(ctx)
}
