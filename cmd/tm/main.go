package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"task-manager/internal/cli"
	"task-manager/internal/config"
	"task-manager/internal/manager"
	"task-manager/internal/presentation"
	"task-manager/internal/services"
	"task-manager/internal/validation"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

func main() {
	root := cli.NewRootCommand(buildApp, version)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// buildApp wires store, service, presenter and manager from configuration
func buildApp(ctx context.Context, cfg *config.Config, out io.Writer) (*cli.App, error) {
	repo, err := config.CreateRepository(ctx, cfg)
	if err != nil {
		return nil, err
	}

	validator := validation.NewTaskValidatorWithLimits(cfg.Validation.TaskNameMaxLength)
	service, err := services.NewTaskService(repo, validator)
	if err != nil {
		repo.Close()
		return nil, err
	}

	style := presentation.SelectStyle(cfg.Display.Emoji, out)
	presenter := presentation.NewConsolePresenter(out, style, cfg.Display.SeparatorWidth)

	taskManager, err := manager.NewTaskManager(service, presenter)
	if err != nil {
		repo.Close()
		return nil, err
	}

	return cli.NewApp(taskManager, presenter, repo, cfg.Application.Timeout), nil
}
