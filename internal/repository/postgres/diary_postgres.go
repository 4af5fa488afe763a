package postgres

import (
	"context"
	"database/sql"

	"diaryapi/internal/model"
	"diaryapi/internal/repository"
)

// DiaryPostgres is a PostgreSQL implementation of repository.DiaryRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type DiaryPostgres struct {
	db *sql.DB
}

// NewDiaryPostgres creates a new DiaryPostgres repository.
func NewDiaryPostgres(db *sql.DB) *DiaryPostgres {
	return &DiaryPostgres{db: db}
}

var _ repository.DiaryRepository = (*DiaryPostgres)(nil)

// FindAll returns all diaries ordered by id.
func (r *DiaryPostgres) FindAll(ctx context.Context) ([]model.Diary, error) {
	const q = `SELECT id, title, comment FROM diaries ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Diary, 0)
	for rows.Next() {
		var d model.Diary
		if err := rows.Scan(&d.ID, &d.Title, &d.Comment); err != nil {
			return nil, err
		}
		items = append(items, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// FindByID fetches a single diary by its ID. A missing row surfaces as sql.ErrNoRows.
func (r *DiaryPostgres) FindByID(ctx context.Context, id int64) (*model.Diary, error) {
	const q = `SELECT id, title, comment FROM diaries WHERE id = $1`
	var d model.Diary
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&d.ID, &d.Title, &d.Comment); err != nil {
		return nil, err
	}
	return &d, nil
}

// Save inserts a diary row and returns the stored record.
func (r *DiaryPostgres) Save(ctx context.Context, diary *model.Diary) (*model.Diary, error) {
	const q = `
		INSERT INTO diaries (title, comment)
		VALUES ($1, $2)
		RETURNING id, title, comment
	`
	var out model.Diary
	if err := r.db.QueryRowContext(ctx, q, diary.Title, diary.Comment).
		Scan(&out.ID, &out.Title, &out.Comment); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes a diary row and returns it. A missing row surfaces as sql.ErrNoRows.
func (r *DiaryPostgres) Delete(ctx context.Context, id int64) (*model.Diary, error) {
	const q = `DELETE FROM diaries WHERE id = $1 RETURNING id, title, comment`
	var d model.Diary
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&d.ID, &d.Title, &d.Comment); err != nil {
		return nil, err
	}
	return &d, nil
}
