package cli

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"task-manager/internal/config"
	"task-manager/internal/manager"
	"task-manager/internal/presentation"
	"task-manager/internal/repository"
	"task-manager/internal/services"
	"task-manager/internal/validation"
)

// testBuilder wires an App the same way the binary does, always with plain output
func testBuilder(ctx context.Context, cfg *config.Config, out io.Writer) (*App, error) {
	repo, err := config.CreateRepository(ctx, cfg)
	if err != nil {
		return nil, err
	}
	service, err := services.NewTaskService(repo, validation.NewTaskValidatorWithLimits(cfg.Validation.TaskNameMaxLength))
	if err != nil {
		return nil, err
	}
	presenter := presentation.NewConsolePresenter(out, presentation.SelectStyle(cfg.Display.Emoji, out), cfg.Display.SeparatorWidth)
	taskManager, err := manager.NewTaskManager(service, presenter)
	if err != nil {
		return nil, err
	}
	return NewApp(taskManager, presenter, repo, cfg.Application.Timeout), nil
}

func newTestApp(t *testing.T, out io.Writer, style presentation.Style, repo repository.TaskRepository) *App {
	t.Helper()
	return newTimedTestApp(t, out, style, repo, 0)
}

func newTimedTestApp(t *testing.T, out io.Writer, style presentation.Style, repo repository.TaskRepository, timeout time.Duration) *App {
	t.Helper()
	if repo == nil {
		repo = repository.NewMemoryRepository()
	}
	service, err := services.NewTaskService(repo, nil)
	require.NoError(t, err)
	presenter := presentation.NewConsolePresenter(out, style, 40)
	taskManager, err := manager.NewTaskManager(service, presenter)
	require.NoError(t, err)
	return NewApp(taskManager, presenter, repo, timeout)
}

// slowReader returns one line per Read, pausing before the lines listed in delays
type slowReader struct {
	lines  []string
	delays map[int]time.Duration
	next   int
}

func (r *slowReader) Read(p []byte) (int, error) {
	if r.next >= len(r.lines) {
		return 0, io.EOF
	}
	if d := r.delays[r.next]; d > 0 {
		time.Sleep(d)
	}
	n := copy(p, r.lines[r.next]+"\n")
	r.next++
	return n, nil
}
