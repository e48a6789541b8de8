package sqlite

// TaskRow is the tasks table as stored.
// Seq orders rows by insertion and never changes on update.
type TaskRow struct {
	Seq         int64
	ID          string
	Name        string
	Description string
	Completed   bool
}
