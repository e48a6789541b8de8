package sqlite

// Scanner interface defines the common scanning behavior for both sql.Row and sql.Rows
type Scanner interface {
	Scan(dest ...interface{}) error
}

// Rows interface defines the common behavior for sql.Rows
type Rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

// ScanTask scans a single task row in column order seq, id, name, description, completed
func ScanTask(scanner Scanner) (*TaskRow, error) {
	row := &TaskRow{}
	var completed int64

	err := scanner.Scan(
		&row.Seq,
		&row.ID,
		&row.Name,
		&row.Description,
		&completed,
	)
	if err != nil {
		return nil, err
	}

	row.Completed = ParseBoolFromDB(completed)
	return row, nil
}

// ScanTasks scans multiple task rows
func ScanTasks(rows Rows) ([]*TaskRow, error) {
	tasks := make([]*TaskRow, 0)
	for rows.Next() {
		task, err := ScanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tasks, nil
}
