package postgres

import (
	"context"
	"database/sql"

	"diaryapi/internal/model"
	"diaryapi/internal/repository"
)

// TaskPostgres is a PostgreSQL implementation of repository.TaskRepository.
type TaskPostgres struct {
	db *sql.DB
}

// NewTaskPostgres creates a new TaskPostgres repository.
func NewTaskPostgres(db *sql.DB) *TaskPostgres {
	return &TaskPostgres{db: db}
}

var _ repository.TaskRepository = (*TaskPostgres)(nil)

const taskColumns = `id, diary_id, title`

func scanTask(row interface{ Scan(...any) error }) (*model.Task, error) {
	var t model.Task
	if err := row.Scan(&t.ID, &t.DiaryID, &t.Title); err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TaskPostgres) query(ctx context.Context, q string, args ...any) ([]model.Task, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Task, 0)
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// FindAll returns all tasks ordered by id.
func (r *TaskPostgres) FindAll(ctx context.Context) ([]model.Task, error) {
	return r.query(ctx, `SELECT `+taskColumns+` FROM tasks ORDER BY id`)
}

// FindByDiaryID returns the tasks recorded with diaryID, ordered by id.
func (r *TaskPostgres) FindByDiaryID(ctx context.Context, diaryID int64) ([]model.Task, error) {
	return r.query(ctx, `SELECT `+taskColumns+` FROM tasks WHERE diary_id = $1 ORDER BY id`, diaryID)
}

// FindByID fetches a single task by its ID.
func (r *TaskPostgres) FindByID(ctx context.Context, id int64) (*model.Task, error) {
	return scanTask(r.db.QueryRowContext(ctx, `SELECT `+taskColumns+` FROM tasks WHERE id = $1`, id))
}

// Save inserts a task row and returns the stored record.
func (r *TaskPostgres) Save(ctx context.Context, task *model.Task) (*model.Task, error) {
	const q = `INSERT INTO tasks (diary_id, title) VALUES ($1, $2) RETURNING ` + taskColumns
	return scanTask(r.db.QueryRowContext(ctx, q, task.DiaryID, task.Title))
}

// UpdateTitle replaces the title in a single statement; no row means sql.ErrNoRows.
func (r *TaskPostgres) UpdateTitle(ctx context.Context, id int64, title string) (*model.Task, error) {
	const q = `UPDATE tasks SET title = $1 WHERE id = $2 RETURNING ` + taskColumns
	return scanTask(r.db.QueryRowContext(ctx, q, title, id))
}

// Delete removes a task row and returns it.
func (r *TaskPostgres) Delete(ctx context.Context, id int64) (*model.Task, error) {
	const q = `DELETE FROM tasks WHERE id = $1 RETURNING ` + taskColumns
	return scanTask(r.db.QueryRowContext(ctx, q, id))
}
