// Package repositorytest holds the behaviour every TaskRepository backend must share.
package repositorytest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-manager/internal/domain"
	"task-manager/internal/errors"
	"task-manager/internal/repository"
)

// Factory returns a fresh, empty repository. Cleanup is the factory's job.
type Factory func(t *testing.T) repository.TaskRepository

// MustTask builds a task or fails the test.
func MustTask(t *testing.T, name, description string) *domain.Task {
	t.Helper()
	task, err := domain.NewTask(name, description)
	require.NoError(t, err)
	return task
}

// Seed saves tasks with the given names in order and returns them.
func Seed(t *testing.T, repo repository.TaskRepository, names ...string) []*domain.Task {
	t.Helper()
	tasks := make([]*domain.Task, 0, len(names))
	for _, name := range names {
		task := MustTask(t, name, "")
		_, err := repo.Save(context.Background(), task)
		require.NoError(t, err)
		tasks = append(tasks, task)
	}
	return tasks
}

// RunTaskRepositoryTests runs the shared suite against a backend.
func RunTaskRepositoryTests(t *testing.T, newRepo Factory) {
	t.Run("save appends and returns the task", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()
		task := MustTask(t, "Buy milk", "2 litres")

		saved, err := repo.Save(ctx, task)
		require.NoError(t, err)
		assert.Same(t, task, saved)

		count, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("save nil task fails with invalid argument", func(t *testing.T) {
		repo := newRepo(t)

		saved, err := repo.Save(context.Background(), nil)
		require.Error(t, err)
		assert.Nil(t, saved)
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeInvalidArgument))
	})

	t.Run("save then find by id round trips every field", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()
		task := MustTask(t, "Write report", "quarterly")
		task.MarkAsCompleted()
		_, err := repo.Save(ctx, task)
		require.NoError(t, err)

		found, ok, err := repo.FindByID(ctx, task.ID())
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, task.ID(), found.ID())
		assert.Equal(t, "Write report", found.Name())
		assert.Equal(t, "quarterly", found.Description())
		assert.True(t, found.IsCompleted())
	})

	t.Run("save existing id replaces in place without changing count or order", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()
		tasks := Seed(t, repo, "A", "B", "C")

		updated := tasks[1].Clone()
		require.NoError(t, updated.SetName("B2"))
		updated.SetDescription("edited")
		_, err := repo.Save(ctx, updated)
		require.NoError(t, err)

		count, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 3, count)

		all, err := repo.FindAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 3)
		assert.Equal(t, []string{"A", "B2", "C"}, names(all))
		assert.Equal(t, "edited", all[1].Description())
	})

	t.Run("find by id misses", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()
		Seed(t, repo, "A")

		for _, id := range []string{"", "does-not-exist"} {
			found, ok, err := repo.FindByID(ctx, id)
			require.NoError(t, err)
			assert.False(t, ok, "id %q", id)
			assert.Nil(t, found)
		}
	})

	t.Run("find by index honours bounds", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()
		tasks := Seed(t, repo, "A", "B")

		first, ok, err := repo.FindByIndex(ctx, 0)
		require.NoError(t, err)
		require.True(t, ok)
		assert.True(t, first.Equal(tasks[0]))

		second, ok, err := repo.FindByIndex(ctx, 1)
		require.NoError(t, err)
		require.True(t, ok)
		assert.True(t, second.Equal(tasks[1]))

		for _, index := range []int{-1, 2, 100} {
			found, ok, err := repo.FindByIndex(ctx, index)
			require.NoError(t, err)
			assert.False(t, ok, "index %d", index)
			assert.Nil(t, found)
		}
	})

	t.Run("find all returns a snapshot", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()
		Seed(t, repo, "A", "B")

		all, err := repo.FindAll(ctx)
		require.NoError(t, err)
		all[0] = nil
		all = append(all, MustTask(t, "Injected", ""))
		require.NoError(t, all[1].SetName("Mutated"))

		again, err := repo.FindAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"A", "B"}, names(again))

		count, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, count)
	})

	t.Run("find all on empty repository", func(t *testing.T) {
		repo := newRepo(t)

		all, err := repo.FindAll(context.Background())
		require.NoError(t, err)
		assert.NotNil(t, all)
		assert.Empty(t, all)
	})

	t.Run("delete by id", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()
		tasks := Seed(t, repo, "A", "B", "C")

		removed, err := repo.DeleteByID(ctx, tasks[1].ID())
		require.NoError(t, err)
		assert.True(t, removed)

		removed, err = repo.DeleteByID(ctx, tasks[1].ID())
		require.NoError(t, err)
		assert.False(t, removed)

		removed, err = repo.DeleteByID(ctx, "")
		require.NoError(t, err)
		assert.False(t, removed)

		all, err := repo.FindAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"A", "C"}, names(all))
	})

	t.Run("delete by index", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()
		Seed(t, repo, "A", "B", "C")

		for _, index := range []int{-1, 3} {
			removed, err := repo.DeleteByIndex(ctx, index)
			require.NoError(t, err)
			assert.False(t, removed, "index %d", index)
		}

		removed, err := repo.DeleteByIndex(ctx, 0)
		require.NoError(t, err)
		assert.True(t, removed)

		all, err := repo.FindAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"B", "C"}, names(all))

		second, ok, err := repo.FindByIndex(ctx, 1)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "C", second.Name())
	})

	t.Run("delete by index on empty repository", func(t *testing.T) {
		repo := newRepo(t)

		removed, err := repo.DeleteByIndex(context.Background(), 0)
		require.NoError(t, err)
		assert.False(t, removed)
	})

	t.Run("exists by id", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()
		tasks := Seed(t, repo, "A")

		exists, err := repo.ExistsByID(ctx, tasks[0].ID())
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = repo.ExistsByID(ctx, "missing")
		require.NoError(t, err)
		assert.False(t, exists)

		exists, err = repo.ExistsByID(ctx, "")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("returned tasks do not alias stored state", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()
		tasks := Seed(t, repo, "A")

		found, ok, err := repo.FindByID(ctx, tasks[0].ID())
		require.NoError(t, err)
		require.True(t, ok)
		found.MarkAsCompleted()

		again, _, err := repo.FindByID(ctx, tasks[0].ID())
		require.NoError(t, err)
		assert.False(t, again.IsCompleted(), "mutation without Save must not leak into the repository")
	})
}

func names(tasks []*domain.Task) []string {
	result := make([]string, len(tasks))
	for i, task := range tasks {
		result[i] = task.Name()
	}
	return result
}
