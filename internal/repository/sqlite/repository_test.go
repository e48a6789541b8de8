package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-manager/internal/errors"
	"task-manager/internal/repository"
	"task-manager/internal/repository/repositorytest"
)

func setupTestRepository(t *testing.T) *Repository {
	t.Helper()
	repo, err := New(context.Background(), MemoryDSN)
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return repo
}

func TestRepository_Contract(t *testing.T) {
	repositorytest.RunTaskRepositoryTests(t, func(t *testing.T) repository.TaskRepository {
		return setupTestRepository(t)
	})
}

func TestRepository_SaveKeepsPositionAfterDelete(t *testing.T) {
	repo := setupTestRepository(t)
	ctx := context.Background()
	tasks := repositorytest.Seed(t, repo, "A", "B", "C")

	removed, err := repo.DeleteByIndex(ctx, 0)
	require.NoError(t, err)
	require.True(t, removed)

	tasks[2].MarkAsCompleted()
	_, err = repo.Save(ctx, tasks[2])
	require.NoError(t, err)

	last, ok, err := repo.FindByIndex(ctx, 1)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "C", last.Name())
	assert.True(t, last.IsCompleted())
}

func TestRepository_FileDSN(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "tasks.db")

	repo, err := New(ctx, dsn)
	require.NoError(t, err)
	repositorytest.Seed(t, repo, "Persisted row")
	require.NoError(t, repo.Close())

	reopened, err := New(ctx, dsn)
	require.NoError(t, err)
	defer reopened.Close()

	count, err := reopened.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestRepository_CancelledContext(t *testing.T) {
	repo := setupTestRepository(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.FindAll(ctx)
	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeTimeout))
}

func TestRepository_ClosedDatabase(t *testing.T) {
	repo, err := New(context.Background(), MemoryDSN)
	require.NoError(t, err)
	require.NoError(t, repo.Close())

	_, err = repo.Count(context.Background())
	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeStorage))
}
