package memory

import (
	"context"
	"database/sql"
	"sync"
	"testing"

	"diaryapi/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiaryStore(t *testing.T) {
	ctx := context.Background()
	s := NewDiaryStore()

	items, err := s.FindAll(ctx)
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)

	first, err := s.Save(ctx, &model.Diary{Title: "Monday", Comment: "long day"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.ID)

	second, err := s.Save(ctx, &model.Diary{Title: "Tuesday"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), second.ID)

	got, err := s.FindByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "long day", got.Comment)

	_, err = s.FindByID(ctx, 100)
	assert.ErrorIs(t, err, sql.ErrNoRows)

	removed, err := s.Delete(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Monday", removed.Title)

	_, err = s.Delete(ctx, 1)
	assert.ErrorIs(t, err, sql.ErrNoRows)

	items, err = s.FindAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []model.Diary{{ID: 2, Title: "Tuesday"}}, items)

	// ids are never reused
	third, err := s.Save(ctx, &model.Diary{Title: "Wednesday"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), third.ID)
}

func TestTaskStore(t *testing.T) {
	ctx := context.Background()
	s := NewTaskStore()

	a, err := s.Save(ctx, &model.Task{DiaryID: 1, Title: "write tests"})
	require.NoError(t, err)
	_, err = s.Save(ctx, &model.Task{DiaryID: 2, Title: "review"})
	require.NoError(t, err)

	all, err := s.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	scoped, err := s.FindByDiaryID(ctx, 2)
	require.NoError(t, err)
	require.Len(t, scoped, 1)
	assert.Equal(t, "review", scoped[0].Title)

	updated, err := s.UpdateTitle(ctx, a.ID, "write more tests")
	require.NoError(t, err)
	assert.Equal(t, "write more tests", updated.Title)
	assert.Equal(t, int64(1), updated.DiaryID)

	got, err := s.FindByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "write more tests", got.Title)

	_, err = s.UpdateTitle(ctx, 100, "nope")
	assert.ErrorIs(t, err, sql.ErrNoRows)

	_, err = s.Delete(ctx, a.ID)
	require.NoError(t, err)
	_, err = s.FindByID(ctx, a.ID)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestTaskStore_ConcurrentSave(t *testing.T) {
	ctx := context.Background()
	s := NewTaskStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = s.Save(ctx, &model.Task{DiaryID: 1, Title: "t"})
		}()
	}
	wg.Wait()

	all, err := s.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 50)
	assert.Equal(t, int64(1), all[0].ID)
	assert.Equal(t, int64(50), all[49].ID)
}
