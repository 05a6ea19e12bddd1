package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"part-tracker/core/models"

	"github.com/google/uuid"
)

const taskColumns = `id, task_id, title, description, priority, assignee, department, part_id, status, due_date, completed_at, created_at`

// TaskRepository handles database operations for tasks
type TaskRepository struct {
	db *DB
}

// NewTaskRepository creates a new task repository
func NewTaskRepository(db *DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// buildListTasksQuery scopes the task listing to an assignee when one is set
func buildListTasksQuery(assignee string) (string, []interface{}) {
	query := `SELECT ` + taskColumns + ` FROM tasks`
	var args []interface{}

	if assignee != "" {
		args = append(args, assignee)
		query += fmt.Sprintf(" WHERE assignee = $%d", len(args))
	}

	query += " ORDER BY due_date ASC NULLS LAST, created_at ASC"
	return query, args
}

// ListTasks returns tasks soonest due first, optionally scoped to an assignee
func (r *TaskRepository) ListTasks(ctx context.Context, assignee string) ([]models.Task, error) {
	query, args := buildListTasksQuery(assignee)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := []models.Task{}
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, *task)
	}

	return tasks, rows.Err()
}

// CreateTask inserts a new task, assigning its ID and creation time
func (r *TaskRepository) CreateTask(ctx context.Context, task *models.Task) error {
	query := `
		INSERT INTO tasks (` + taskColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	if task.ID == "" {
		task.ID = uuid.New().String()
	}
	if task.Status == "" {
		task.Status = models.TaskStatusPending
	}
	task.CreatedAt = time.Now().UTC()
	if task.Status == models.TaskStatusCompleted && task.CompletedAt == nil {
		completed := task.CreatedAt
		task.CompletedAt = &completed
	}

	_, err := r.db.ExecContext(ctx, query,
		task.ID,
		task.TaskID,
		task.Title,
		task.Description,
		task.Priority,
		task.Assignee,
		task.Department,
		nullString(task.PartID),
		task.Status,
		task.DueDate,
		task.CompletedAt,
		task.CreatedAt,
	)
	return err
}

// UpdateTaskStatus sets the status of a task and returns the updated row.
// completed_at is stamped on completion and cleared otherwise.
func (r *TaskRepository) UpdateTaskStatus(ctx context.Context, id string, status models.TaskStatus) (*models.Task, error) {
	query := `
		UPDATE tasks
		SET status = $1,
			completed_at = CASE WHEN $1 = 'completed' THEN COALESCE(completed_at, NOW()) ELSE NULL END
		WHERE id = $2
		RETURNING ` + taskColumns

	task, err := scanTask(r.db.QueryRowContext(ctx, query, string(status), id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return task, err
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func scanTask(row rowScanner) (*models.Task, error) {
	var (
		task        models.Task
		partID      sql.NullString
		dueDate     sql.NullTime
		completedAt sql.NullTime
	)
	err := row.Scan(
		&task.ID,
		&task.TaskID,
		&task.Title,
		&task.Description,
		&task.Priority,
		&task.Assignee,
		&task.Department,
		&partID,
		&task.Status,
		&dueDate,
		&completedAt,
		&task.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	task.PartID = partID.String
	if dueDate.Valid {
		task.DueDate = &dueDate.Time
	}
	if completedAt.Valid {
		task.CompletedAt = &completedAt.Time
	}
	return &task, nil
}
