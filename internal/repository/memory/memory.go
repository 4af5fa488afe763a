// Package memory provides mutex-guarded, map-backed implementations of the
// repository interfaces. Identifiers are assigned from a per-store sequence
// starting at 1, mirroring a BIGSERIAL column.
package memory

import (
	"context"
	"database/sql"
	"sort"
	"sync"

	"diaryapi/internal/model"
	"diaryapi/internal/repository"
)

type table[T any] struct {
	mu     sync.RWMutex
	nextID int64
	rows   map[int64]T
}

func newTable[T any]() *table[T] {
	return &table[T]{nextID: 1, rows: make(map[int64]T)}
}

// all returns the rows ordered by id.
func (t *table[T]) all(keep func(T) bool) []T {
	t.mu.RLock()
	defer t.mu.RUnlock()

	ids := make([]int64, 0, len(t.rows))
	for id, row := range t.rows {
		if keep == nil || keep(row) {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]T, 0, len(ids))
	for _, id := range ids {
		out = append(out, t.rows[id])
	}
	return out
}

func (t *table[T]) get(id int64) (T, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	row, ok := t.rows[id]
	if !ok {
		var zero T
		return zero, sql.ErrNoRows
	}
	return row, nil
}

func (t *table[T]) insert(build func(id int64) T) T {
	t.mu.Lock()
	defer t.mu.Unlock()

	id := t.nextID
	t.nextID++
	row := build(id)
	t.rows[id] = row
	return row
}

func (t *table[T]) update(id int64, apply func(*T)) (T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	row, ok := t.rows[id]
	if !ok {
		var zero T
		return zero, sql.ErrNoRows
	}
	apply(&row)
	t.rows[id] = row
	return row, nil
}

func (t *table[T]) remove(id int64) (T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	row, ok := t.rows[id]
	if !ok {
		var zero T
		return zero, sql.ErrNoRows
	}
	delete(t.rows, id)
	return row, nil
}

// DiaryStore keeps diaries in memory.
type DiaryStore struct {
	t *table[model.Diary]
}

// NewDiaryStore returns an empty DiaryStore.
func NewDiaryStore() *DiaryStore {
	return &DiaryStore{t: newTable[model.Diary]()}
}

var _ repository.DiaryRepository = (*DiaryStore)(nil)

func (s *DiaryStore) FindAll(_ context.Context) ([]model.Diary, error) {
	return s.t.all(nil), nil
}

func (s *DiaryStore) FindByID(_ context.Context, id int64) (*model.Diary, error) {
	d, err := s.t.get(id)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (s *DiaryStore) Save(_ context.Context, diary *model.Diary) (*model.Diary, error) {
	d := s.t.insert(func(id int64) model.Diary {
		return model.Diary{ID: id, Title: diary.Title, Comment: diary.Comment}
	})
	return &d, nil
}

func (s *DiaryStore) Delete(_ context.Context, id int64) (*model.Diary, error) {
	d, err := s.t.remove(id)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// TaskStore keeps tasks in memory.
type TaskStore struct {
	t *table[model.Task]
}

// NewTaskStore returns an empty TaskStore.
func NewTaskStore() *TaskStore {
	return &TaskStore{t: newTable[model.Task]()}
}

var _ repository.TaskRepository = (*TaskStore)(nil)

func (s *TaskStore) FindAll(_ context.Context) ([]model.Task, error) {
	return s.t.all(nil), nil
}

func (s *TaskStore) FindByDiaryID(_ context.Context, diaryID int64) ([]model.Task, error) {
	return s.t.all(func(t model.Task) bool { return t.DiaryID == diaryID }), nil
}

func (s *TaskStore) FindByID(_ context.Context, id int64) (*model.Task, error) {
	t, err := s.t.get(id)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *TaskStore) Save(_ context.Context, task *model.Task) (*model.Task, error) {
	t := s.t.insert(func(id int64) model.Task {
		return model.Task{ID: id, DiaryID: task.DiaryID, Title: task.Title}
	})
	return &t, nil
}

func (s *TaskStore) UpdateTitle(_ context.Context, id int64, title string) (*model.Task, error) {
	t, err := s.t.update(id, func(t *model.Task) { t.Title = title })
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *TaskStore) Delete(_ context.Context, id int64) (*model.Task, error) {
	t, err := s.t.remove(id)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
