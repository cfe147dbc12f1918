package models

// CareTask is a recurring daily-care routine (e.g. "tomar vitamina").
type CareTask struct {
	// ID is the unique identifier (UUID format).
	ID string

	// UserID is the owning user's ID.
	UserID string

	// Name describes the routine.
	Name string

	// CreatedAt is the Unix timestamp when the task was created.
	CreatedAt int64
}

// CareLog records the completion of a task on a given day. At most one
// log exists per (task, day).
type CareLog struct {
	// ID is the unique identifier (UUID format).
	ID string

	// UserID is the owning user's ID.
	UserID string

	// TaskID references the completed CareTask.
	TaskID string

	// Day is the calendar day in "2006-01-02" format (server-local).
	Day string

	// Done marks the task as completed for the day.
	Done bool

	// CreatedAt is the Unix timestamp when the log was written.
	CreatedAt int64
}
