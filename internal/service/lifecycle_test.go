package service

import (
	"context"
	"testing"

	"diaryapi/internal/model"
	"diaryapi/internal/repository/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiaryLifecycle(t *testing.T) {
	ctx := context.Background()
	svc := NewDiaryService(memory.NewDiaryStore())

	items, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)

	_, err = svc.Create(ctx, &model.DiaryData{Title: " "})
	assert.ErrorIs(t, err, ErrBadInput)

	items, err = svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, items, "rejected create must not persist")

	created, err := svc.Create(ctx, &model.DiaryData{Title: "T", Comment: "c"})
	require.NoError(t, err)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "T", got.Title)

	items, err = svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []model.Diary{*created}, items)

	_, err = svc.Delete(ctx, created.ID)
	require.NoError(t, err)

	_, err = svc.Get(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = svc.Delete(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTaskLifecycle(t *testing.T) {
	ctx := context.Background()
	svc := NewTaskService(memory.NewTaskStore())

	for _, id := range []int64{1, 42, 1000} {
		_, err := svc.Get(ctx, id)
		assert.ErrorIs(t, err, ErrNotFound)
		_, err = svc.Update(ctx, id, &model.TaskData{Title: "U"})
		assert.ErrorIs(t, err, ErrNotFound)
		_, err = svc.Delete(ctx, id)
		assert.ErrorIs(t, err, ErrNotFound)
	}

	items, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)

	created, err := svc.Create(ctx, 1, &model.TaskData{Title: "T"})
	require.NoError(t, err)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "T", got.Title)

	_, err = svc.Update(ctx, created.ID, &model.TaskData{Title: ""})
	assert.ErrorIs(t, err, ErrBadInput)
	got, err = svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "T", got.Title, "rejected update must not mutate")

	updated, err := svc.Update(ctx, created.ID, &model.TaskData{Title: "U"})
	require.NoError(t, err)
	assert.Equal(t, &model.TaskResult{ID: created.ID, Title: "U"}, updated)

	got, err = svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "U", got.Title)

	items, err = svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []model.TaskResult{{ID: created.ID, Title: "U"}}, items)

	_, err = svc.Delete(ctx, created.ID)
	require.NoError(t, err)
	_, err = svc.Get(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
