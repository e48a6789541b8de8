package sqlite

import (
	"context"
	"database/sql"

	"task-manager/internal/domain"
	"task-manager/internal/errors"
	"task-manager/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// MemoryDSN keeps the database inside the process; it is gone on exit.
const MemoryDSN = ":memory:"

const taskColumns = `seq, id, name, description, completed`

// Repository implements repository.TaskRepository on SQLite
type Repository struct {
	db     *sql.DB
	mapper *TaskMapper
}

// New opens the database at dsn and applies pending migrations
func New(ctx context.Context, dsn string) (*Repository, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, HandleStorageError("open database", err).WithContext("dsn", dsn)
	}
	// Every pooled connection to :memory: would see its own empty database.
	db.SetMaxOpenConns(1)

	if err := migrations.RunMigrations(ctx, db); err != nil {
		db.Close()
		return nil, HandleStorageError("run migrations", err).WithContext("dsn", dsn)
	}

	return &Repository{db: db, mapper: NewTaskMapper()}, nil
}

// Close closes the database connection
func (r *Repository) Close() error {
	return r.db.Close()
}

// Save inserts the task or updates the row with the same id without moving it
func (r *Repository) Save(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	if task == nil {
		return nil, errors.NewInvalidArgumentError("task", "cannot be nil")
	}

	row := r.mapper.ToRow(task)
	query := `
	INSERT INTO tasks (id, name, description, completed)
	VALUES (?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
		name = excluded.name,
		description = excluded.description,
		completed = excluded.completed`

	_, err := ExecuteWithRowsAffected(ctx, r.db, "save task", query, row.ID, row.Name, row.Description, FormatBoolForDB(row.Completed))
	if err != nil {
		return nil, err
	}
	return task, nil
}

// FindByID retrieves a task by id
func (r *Repository) FindByID(ctx context.Context, id string) (*domain.Task, bool, error) {
	if id == "" {
		return nil, false, nil
	}
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = ?`
	return r.findOne(ctx, query, id)
}

// FindByIndex retrieves the task at the zero-based insertion position
func (r *Repository) FindByIndex(ctx context.Context, index int) (*domain.Task, bool, error) {
	if index < 0 {
		return nil, false, nil
	}
	query := `SELECT ` + taskColumns + ` FROM tasks ORDER BY seq ASC LIMIT 1 OFFSET ?`
	return r.findOne(ctx, query, index)
}

// FindAll retrieves every task in insertion order
func (r *Repository) FindAll(ctx context.Context) ([]*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks ORDER BY seq ASC`
	rows, err := QueryMultiple(ctx, r.db, query, ScanTasks, "tasks")
	if err != nil {
		return nil, err
	}
	tasks, err := r.mapper.ToDomainSlice(rows)
	if err != nil {
		return nil, HandleStorageError("map tasks", err)
	}
	return tasks, nil
}

// DeleteByID deletes the task with the given id
func (r *Repository) DeleteByID(ctx context.Context, id string) (bool, error) {
	if id == "" {
		return false, nil
	}
	affected, err := ExecuteWithRowsAffected(ctx, r.db, "delete task", `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// DeleteByIndex deletes the task at the zero-based insertion position
func (r *Repository) DeleteByIndex(ctx context.Context, index int) (bool, error) {
	if index < 0 {
		return false, nil
	}
	query := `
	DELETE FROM tasks
	WHERE seq = (SELECT seq FROM tasks ORDER BY seq ASC LIMIT 1 OFFSET ?)`

	affected, err := ExecuteWithRowsAffected(ctx, r.db, "delete task", query, index)
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// Count returns the number of stored tasks
func (r *Repository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM tasks`).Scan(&count); err != nil {
		return 0, HandleStorageError("count tasks", err)
	}
	return count, nil
}

// ExistsByID reports whether a task with the given id is stored
func (r *Repository) ExistsByID(ctx context.Context, id string) (bool, error) {
	_, found, err := r.FindByID(ctx, id)
	return found, err
}

func (r *Repository) findOne(ctx context.Context, query string, args ...interface{}) (*domain.Task, bool, error) {
	row, found, err := QuerySingle(ctx, r.db, query, ScanTask, "task", args...)
	if err != nil || !found {
		return nil, false, err
	}
	task, err := r.mapper.ToDomain(*row)
	if err != nil {
		return nil, false, HandleStorageError("map task", err)
	}
	return task, true, nil
}
