package sqlite

import (
	"task-manager/internal/domain"
)

// TaskMapper handles conversion between domain tasks and table rows.
type TaskMapper struct{}

// NewTaskMapper creates a new TaskMapper instance.
func NewTaskMapper() *TaskMapper {
	return &TaskMapper{}
}

// ToRow converts a domain Task to a row. Seq is assigned by the database.
func (m *TaskMapper) ToRow(task *domain.Task) TaskRow {
	return TaskRow{
		ID:          task.ID(),
		Name:        task.Name(),
		Description: task.Description(),
		Completed:   task.IsCompleted(),
	}
}

// ToDomain rebuilds a domain Task from a row, keeping its ID.
func (m *TaskMapper) ToDomain(row TaskRow) (*domain.Task, error) {
	task, err := domain.NewTaskWithID(row.ID, row.Name, row.Description)
	if err != nil {
		return nil, err
	}
	task.SetCompleted(row.Completed)
	return task, nil
}

// ToDomainSlice converts rows to domain tasks, preserving order.
func (m *TaskMapper) ToDomainSlice(rows []*TaskRow) ([]*domain.Task, error) {
	tasks := make([]*domain.Task, 0, len(rows))
	for _, row := range rows {
		task, err := m.ToDomain(*row)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}
