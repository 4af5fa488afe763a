// Package repository contains data access layer abstractions.
// Implementations live in subpackages (postgres, memory) and contain no business logic.
//
// Lookups of an absent identifier report sql.ErrNoRows so every implementation
// signals "not found" the same way.
package repository

import (
	"context"

	"diaryapi/internal/model"
)

// DiaryRepository defines data access for diaries.
type DiaryRepository interface {
	// FindAll returns every stored diary in id order. An empty store yields an empty, non-nil slice.
	FindAll(ctx context.Context) ([]model.Diary, error)

	// FindByID returns a diary by its ID, or sql.ErrNoRows.
	FindByID(ctx context.Context, id int64) (*model.Diary, error)

	// Save inserts a new diary and returns the stored record with its assigned ID.
	Save(ctx context.Context, diary *model.Diary) (*model.Diary, error)

	// Delete removes a diary by ID and returns the removed record, or sql.ErrNoRows.
	Delete(ctx context.Context, id int64) (*model.Diary, error)
}

// TaskRepository defines data access for tasks.
type TaskRepository interface {
	// FindAll returns every stored task in id order, regardless of diary.
	FindAll(ctx context.Context) ([]model.Task, error)

	// FindByDiaryID returns the tasks recorded with the given diary id.
	FindByDiaryID(ctx context.Context, diaryID int64) ([]model.Task, error)

	// FindByID returns a task by its ID, or sql.ErrNoRows.
	FindByID(ctx context.Context, id int64) (*model.Task, error)

	// Save inserts a new task and returns the stored record with its assigned ID.
	Save(ctx context.Context, task *model.Task) (*model.Task, error)

	// UpdateTitle replaces the title of an existing task, or returns sql.ErrNoRows.
	UpdateTitle(ctx context.Context, id int64, title string) (*model.Task, error)

	// Delete removes a task by ID and returns the removed record, or sql.ErrNoRows.
	Delete(ctx context.Context, id int64) (*model.Task, error)
}
