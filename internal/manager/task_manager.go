// Package manager turns task service outcomes into presenter messages.
package manager

import (
	"context"
	"fmt"

	"task-manager/internal/errors"
	"task-manager/internal/logging"
	"task-manager/internal/presentation"
	"task-manager/internal/services"
)

// TaskManager is the entry point for user actions. Every action reports
// exactly one message through the presenter.
type TaskManager struct {
	service   services.TaskService
	presenter presentation.Presenter
}

// NewTaskManager creates a TaskManager; both collaborators are required
func NewTaskManager(service services.TaskService, presenter presentation.Presenter) (*TaskManager, error) {
	if service == nil {
		return nil, errors.NewInvalidArgumentError("task service", "cannot be nil")
	}
	if presenter == nil {
		return nil, errors.NewInvalidArgumentError("task presenter", "cannot be nil")
	}
	return &TaskManager{service: service, presenter: presenter}, nil
}

// AddTask creates a task and reports its name
func (m *TaskManager) AddTask(ctx context.Context, name, description string) {
	task, err := m.service.CreateTask(ctx, name, description)
	if err != nil {
		m.reportError("add task", err)
		return
	}
	m.presenter.DisplaySuccess("Task added: " + task.Name())
}

// AddTaskWithName creates a task without a description
func (m *TaskManager) AddTaskWithName(ctx context.Context, name string) {
	m.AddTask(ctx, name, "")
}

// ListTasks hands every task to the presenter in one call
func (m *TaskManager) ListTasks(ctx context.Context) {
	tasks, err := m.service.GetAllTasks(ctx)
	if err != nil {
		m.reportError("list tasks", err)
		return
	}
	m.presenter.DisplayTasks(tasks)
}

// RemoveTask removes the task at a 1-based position
func (m *TaskManager) RemoveTask(ctx context.Context, position int) {
	task, found, err := m.service.GetTaskByIndex(ctx, position)
	if err != nil {
		m.reportError("remove task", err)
		return
	}
	if !found {
		m.reportNotFound(position)
		return
	}

	removed, err := m.service.RemoveTaskByIndex(ctx, position)
	switch {
	case err != nil:
		m.reportError("remove task", err)
	case removed:
		m.presenter.DisplaySuccess("Task removed: " + task.Name())
	default:
		m.presenter.DisplayError("Failed to remove task.")
	}
}

// CompleteTask marks the task at a 1-based position as completed.
// The task is completed by ID once resolved.
func (m *TaskManager) CompleteTask(ctx context.Context, position int) {
	task, found, err := m.service.GetTaskByIndex(ctx, position)
	if err != nil {
		m.reportError("complete task", err)
		return
	}
	if !found {
		m.reportNotFound(position)
		return
	}

	completed, err := m.service.CompleteTask(ctx, task.ID())
	switch {
	case err != nil:
		m.reportError("complete task", err)
	case completed:
		m.presenter.DisplaySuccess("Task completed: " + task.Name())
	default:
		m.presenter.DisplayError("Failed to complete task.")
	}
}

// EditTask renames and re-describes the task at a 1-based position
func (m *TaskManager) EditTask(ctx context.Context, position int, name, description string) {
	_, found, err := m.service.GetTaskByIndex(ctx, position)
	if err != nil {
		m.reportError("edit task", err)
		return
	}
	if !found {
		m.reportNotFound(position)
		return
	}

	updated, err := m.service.UpdateTask(ctx, position, name, description)
	switch {
	case err != nil:
		m.reportError("edit task", err)
	case updated:
		m.presenter.DisplaySuccess("Task updated successfully")
	default:
		m.presenter.DisplayError("Failed to update task. Name cannot be empty.")
	}
}

// GetTaskCount returns the number of stored tasks
func (m *TaskManager) GetTaskCount(ctx context.Context) (int, error) {
	return m.service.GetTaskCount(ctx)
}

func (m *TaskManager) reportNotFound(position int) {
	notFound := errors.NewNotFoundError("Task", fmt.Sprintf("index %d", position))
	m.presenter.DisplayError(errors.GetUserMessage(notFound))
}

func (m *TaskManager) reportError(op string, err error) {
	if errors.ShouldLogError(err) {
		logging.Debugf("task manager: %s failed [%s]: %v\n", op, errors.GetErrorCode(err), err)
	}
	m.presenter.DisplayError(errors.GetUserMessage(err))
}
