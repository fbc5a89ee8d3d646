package database

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/muhammadusama-15/Todo-List-Website/internal/models"
)

var (
	ErrTaskNotFound     = errors.New("task not found")
	ErrTaskCreateFailed = errors.New("failed to create task")
)

type TaskService struct {
	db *Database
}

func NewTaskService(db *Database) *TaskService {
	return &TaskService{db: db}
}

// Create stores a new task owned by authorID. Title, description and
// status are normalized to title case; the deadline string is stored as
// submitted.
func (ts *TaskService) Create(authorID int, title, description, deadline, status string) (*models.Task, error) {
	task := models.Task{
		Title:       titleCase(title),
		Description: titleCase(description),
		Deadline:    strings.TrimSpace(deadline),
		Status:      titleCase(status),
		AuthorID:    authorID,
		Created:     time.Now(),
	}

	query := `INSERT INTO tasks (title, description, deadline, status, author_id, created)
		  VALUES (?, ?, ?, ?, ?, ?)`
	res, err := ts.db.DB.Exec(query, task.Title, task.Description, task.Deadline,
		task.Status, task.AuthorID, task.Created)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTaskCreateFailed, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTaskCreateFailed, err)
	}
	task.ID = int(id)

	return &task, nil
}

func (ts *TaskService) ListByAuthor(authorID int) ([]*models.Task, error) {
	var tasks []*models.Task

	query := `SELECT id, title, description, deadline, status, author_id, created
		  FROM tasks WHERE author_id = ? ORDER BY created, id`
	if err := ts.db.DB.Select(&tasks, query, authorID); err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}

	return tasks, nil
}

// GetByTitle resolves a task by title, scoped to its owner. Titles are
// not unique per user, so the newest match wins.
func (ts *TaskService) GetByTitle(authorID int, title string) (*models.Task, error) {
	var task models.Task

	query := `SELECT id, title, description, deadline, status, author_id, created
		  FROM tasks WHERE author_id = ? AND title = ? ORDER BY id DESC LIMIT 1`
	err := ts.db.DB.Get(&task, query, authorID, title)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("looking up task by title: %w", err)
	}

	return &task, nil
}

// Complete sets the matched task's status to Completed, leaving every
// other field untouched.
func (ts *TaskService) Complete(authorID int, title string) error {
	task, err := ts.GetByTitle(authorID, title)
	if err != nil {
		return err
	}

	query := `UPDATE tasks SET status = ? WHERE id = ? AND author_id = ?`
	res, err := ts.db.DB.Exec(query, models.StatusCompleted, task.ID, authorID)
	if err != nil {
		return fmt.Errorf("completing task: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("completing task: %w", err)
	}
	if n == 0 {
		return ErrTaskNotFound
	}

	return nil
}

func (ts *TaskService) Delete(authorID int, title string) error {
	task, err := ts.GetByTitle(authorID, title)
	if err != nil {
		return err
	}

	query := `DELETE FROM tasks WHERE id = ? AND author_id = ?`
	res, err := ts.db.DB.Exec(query, task.ID, authorID)
	if err != nil {
		return fmt.Errorf("deleting task: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting task: %w", err)
	}
	if n == 0 {
		return ErrTaskNotFound
	}

	return nil
}

// titleCase uppercases the first letter of every word and lowercases the
// rest, e.g. "buy milk" -> "Buy Milk".
func titleCase(s string) string {
	var b strings.Builder
	startOfWord := true
	for _, r := range strings.TrimSpace(s) {
		switch {
		case unicode.IsSpace(r):
			startOfWord = true
			b.WriteRune(r)
		case startOfWord:
			b.WriteRune(unicode.ToUpper(r))
			startOfWord = false
		default:
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}
