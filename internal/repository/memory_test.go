package repository_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-manager/internal/domain"
	"task-manager/internal/repository"
	"task-manager/internal/repository/repositorytest"
)

func TestMemoryRepository(t *testing.T) {
	repositorytest.RunTaskRepositoryTests(t, func(t *testing.T) repository.TaskRepository {
		return repository.NewMemoryRepository()
	})
}

func TestMemoryRepository_ConcurrentSaves(t *testing.T) {
	repo := repository.NewMemoryRepository()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			task, err := domain.NewTask("Concurrent", "")
			if !assert.NoError(t, err) {
				return
			}
			_, err = repo.Save(ctx, task)
			assert.NoError(t, err)
			_, err = repo.FindAll(ctx)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 50, count)
}

func TestMemoryRepository_Close(t *testing.T) {
	assert.NoError(t, repository.NewMemoryRepository().Close())
}
