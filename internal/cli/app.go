package cli

import (
	"context"
	"io"
	"time"

	"task-manager/internal/config"
	"task-manager/internal/manager"
	"task-manager/internal/presentation"
)

// App holds the wired components the interactive menu drives
type App struct {
	manager   *manager.TaskManager
	presenter *presentation.ConsolePresenter
	store     io.Closer
	timeout   time.Duration
}

// AppBuilder wires an App from configuration. Output written by the
// presenter goes to out.
type AppBuilder func(ctx context.Context, cfg *config.Config, out io.Writer) (*App, error)

// NewApp creates a new CLI application instance with dependency injection.
// store is closed by Close and may be nil.
func NewApp(taskManager *manager.TaskManager, presenter *presentation.ConsolePresenter, store io.Closer, timeout time.Duration) *App {
	return &App{
		manager:   taskManager,
		presenter: presenter,
		store:     store,
		timeout:   timeout,
	}
}

// Close releases the task store
func (a *App) Close() error {
	if a.store == nil {
		return nil
	}
	return a.store.Close()
}

// actionContext bounds a single menu action with the configured timeout
func (a *App) actionContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, a.timeout)
}
