// Package presentation renders task manager output.
package presentation

import "task-manager/internal/domain"

// Presenter displays tasks and the outcome of user actions.
// Index arguments are 1-based positions.
type Presenter interface {
	DisplayTask(task *domain.Task, index int)
	DisplayTasks(tasks []*domain.Task)
	DisplaySuccess(message string)
	DisplayError(message string)
	DisplayInfo(message string)
}
