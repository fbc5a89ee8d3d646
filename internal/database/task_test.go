package database

import (
	"errors"
	"testing"

	"github.com/muhammadusama-15/Todo-List-Website/internal/models"
)

func newTestUsers(t *testing.T, db *Database) (int, int) {
	t.Helper()

	us := NewUserService(db)
	a, err := us.Create("Ann", "a@x.com", "pw123")
	if err != nil {
		t.Fatalf("creating user A: %v", err)
	}
	b, err := us.Create("Bob", "b@x.com", "pw456")
	if err != nil {
		t.Fatalf("creating user B: %v", err)
	}
	return a.ID, b.ID
}

func TestTaskServiceCreateNormalizes(t *testing.T) {
	db := newTestDatabase(t)
	annID, _ := newTestUsers(t, db)
	ts := NewTaskService(db)

	task, err := ts.Create(annID, "buy milk", "2% from the corner shop", "2025-01-01", "pending")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if task.Title != "Buy Milk" {
		t.Errorf("title = %q, want %q", task.Title, "Buy Milk")
	}
	if task.Description != "2% From The Corner Shop" {
		t.Errorf("description = %q, want title case", task.Description)
	}
	if task.Status != "Pending" {
		t.Errorf("status = %q, want %q", task.Status, "Pending")
	}
	if task.Deadline != "2025-01-01" {
		t.Errorf("deadline = %q, want stored verbatim", task.Deadline)
	}
	if task.AuthorID != annID {
		t.Errorf("author_id = %d, want %d", task.AuthorID, annID)
	}
}

func TestTaskServiceListByAuthor(t *testing.T) {
	db := newTestDatabase(t)
	annID, bobID := newTestUsers(t, db)
	ts := NewTaskService(db)

	for _, title := range []string{"buy milk", "walk dog"} {
		if _, err := ts.Create(annID, title, "d", "2025-01-01", "pending"); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := ts.Create(bobID, "bob task", "d", "2025-01-01", "pending"); err != nil {
		t.Fatal(err)
	}

	tasks, err := ts.ListByAuthor(annID)
	if err != nil {
		t.Fatalf("ListByAuthor: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("got %d tasks for Ann, want 2", len(tasks))
	}
	for _, task := range tasks {
		if task.AuthorID != annID {
			t.Errorf("task %q owned by %d, want %d", task.Title, task.AuthorID, annID)
		}
	}
}

func TestTaskServiceGetByTitleOwnerScoped(t *testing.T) {
	db := newTestDatabase(t)
	annID, bobID := newTestUsers(t, db)
	ts := NewTaskService(db)

	if _, err := ts.Create(annID, "buy milk", "d", "2025-01-01", "pending"); err != nil {
		t.Fatal(err)
	}

	if _, err := ts.GetByTitle(annID, "Buy Milk"); err != nil {
		t.Errorf("owner lookup failed: %v", err)
	}

	// Another user must not be able to resolve Ann's task by title.
	if _, err := ts.GetByTitle(bobID, "Buy Milk"); !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("cross-user lookup: want ErrTaskNotFound, got %v", err)
	}

	if _, err := ts.GetByTitle(annID, "No Such Task"); !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("missing title: want ErrTaskNotFound, got %v", err)
	}
}

func TestTaskServiceComplete(t *testing.T) {
	db := newTestDatabase(t)
	annID, bobID := newTestUsers(t, db)
	ts := NewTaskService(db)

	created, err := ts.Create(annID, "buy milk", "2%", "2025-01-01", "pending")
	if err != nil {
		t.Fatal(err)
	}

	if err := ts.Complete(annID, "Buy Milk"); err != nil {
		t.Fatalf("Complete: %v", err)
	}

	task, err := ts.GetByTitle(annID, "Buy Milk")
	if err != nil {
		t.Fatal(err)
	}
	if task.Status != models.StatusCompleted {
		t.Errorf("status = %q, want %q", task.Status, models.StatusCompleted)
	}

	// Only the status may change.
	if task.Title != created.Title || task.Description != created.Description ||
		task.Deadline != created.Deadline || task.AuthorID != created.AuthorID {
		t.Errorf("Complete mutated fields other than status: %+v", task)
	}

	if err := ts.Complete(bobID, "Buy Milk"); !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("cross-user complete: want ErrTaskNotFound, got %v", err)
	}
}

func TestTaskServiceDelete(t *testing.T) {
	db := newTestDatabase(t)
	annID, bobID := newTestUsers(t, db)
	ts := NewTaskService(db)

	if _, err := ts.Create(annID, "buy milk", "2%", "2025-01-01", "pending"); err != nil {
		t.Fatal(err)
	}

	if err := ts.Delete(bobID, "Buy Milk"); !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("cross-user delete: want ErrTaskNotFound, got %v", err)
	}

	if err := ts.Delete(annID, "Buy Milk"); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if _, err := ts.GetByTitle(annID, "Buy Milk"); !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("task still present after delete: %v", err)
	}

	tasks, err := ts.ListByAuthor(annID)
	if err != nil {
		t.Fatal(err)
	}
	if len(tasks) != 0 {
		t.Errorf("got %d tasks after delete, want 0", len(tasks))
	}
}

func TestTitleCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"buy milk", "Buy Milk"},
		{"BUY MILK", "Buy Milk"},
		{"pending", "Pending"},
		{"  spaced out  ", "Spaced Out"},
		{"", ""},
		{"2% milk", "2% Milk"},
	}

	for _, tt := range tests {
		if got := titleCase(tt.in); got != tt.want {
			t.Errorf("titleCase(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
