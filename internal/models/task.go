package models

import "time"

// StatusCompleted is the status value set by the complete action.
// Status is otherwise free text supplied by the user.
const StatusCompleted = "Completed"

type Task struct {
	ID          int       `db:"id"`
	Title       string    `db:"title"`
	Description string    `db:"description"`
	Deadline    string    `db:"deadline"` // expected YYYY-MM-DD, stored as given
	Status      string    `db:"status"`
	AuthorID    int       `db:"author_id"`
	Created     time.Time `db:"created"`
}

func (t *Task) Completed() bool {
	return t.Status == StatusCompleted
}
