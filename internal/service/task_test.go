package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"diaryapi/internal/model"
	repoMocks "diaryapi/internal/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTaskService_List(t *testing.T) {
	ctx := context.Background()
	mRepo := new(repoMocks.MockTaskRepository)
	svc := NewTaskService(mRepo)

	mRepo.On("FindAll", ctx).Return([]model.Task{
		{ID: 1, DiaryID: 1, Title: "write tests"},
		{ID: 2, DiaryID: 7, Title: "review"},
	}, nil)

	items, err := svc.List(ctx)

	assert.NoError(t, err)
	assert.Equal(t, []model.TaskResult{{ID: 1, Title: "write tests"}, {ID: 2, Title: "review"}}, items)
	mRepo.AssertExpectations(t)
}

func TestTaskService_Get(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		id         int64
		setupMocks func(mRepo *repoMocks.MockTaskRepository)
		want       *model.TaskResult
		wantErr    error
	}{
		{
			name: "existing id",
			id:   1,
			setupMocks: func(mRepo *repoMocks.MockTaskRepository) {
				mRepo.On("FindByID", ctx, int64(1)).Return(&model.Task{ID: 1, DiaryID: 1, Title: "write tests"}, nil)
			},
			want: &model.TaskResult{ID: 1, Title: "write tests"},
		},
		{
			name: "missing id",
			id:   100,
			setupMocks: func(mRepo *repoMocks.MockTaskRepository) {
				mRepo.On("FindByID", ctx, int64(100)).Return(nil, sql.ErrNoRows)
			},
			wantErr: ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mRepo := new(repoMocks.MockTaskRepository)
			svc := NewTaskService(mRepo)
			tt.setupMocks(mRepo)

			got, err := svc.Get(ctx, tt.id)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
			mRepo.AssertExpectations(t)
		})
	}
}

func TestTaskService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("valid payload records route diary", func(t *testing.T) {
		mRepo := new(repoMocks.MockTaskRepository)
		svc := NewTaskService(mRepo)

		mRepo.On("Save", ctx, &model.Task{DiaryID: 3, Title: "write tests"}).
			Return(&model.Task{ID: 1, DiaryID: 3, Title: "write tests"}, nil)

		got, err := svc.Create(ctx, 3, &model.TaskData{Title: "write tests"})

		assert.NoError(t, err)
		assert.Equal(t, &model.TaskResult{ID: 1, Title: "write tests"}, got)
		mRepo.AssertExpectations(t)
	})

	t.Run("empty title", func(t *testing.T) {
		mRepo := new(repoMocks.MockTaskRepository)
		svc := NewTaskService(mRepo)

		got, err := svc.Create(ctx, 1, &model.TaskData{Title: ""})

		assert.ErrorIs(t, err, ErrBadInput)
		assert.Nil(t, got)
		mRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestTaskService_Update(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		id         int64
		title      string
		setupMocks func(mRepo *repoMocks.MockTaskRepository)
		want       *model.TaskResult
		wantErr    error
	}{
		{
			name:  "existing id",
			id:    1,
			title: "renamed",
			setupMocks: func(mRepo *repoMocks.MockTaskRepository) {
				mRepo.On("UpdateTitle", ctx, int64(1), "renamed").Return(&model.Task{ID: 1, DiaryID: 1, Title: "renamed"}, nil)
			},
			want: &model.TaskResult{ID: 1, Title: "renamed"},
		},
		{
			name:  "missing id",
			id:    100,
			title: "renamed",
			setupMocks: func(mRepo *repoMocks.MockTaskRepository) {
				mRepo.On("UpdateTitle", ctx, int64(100), "renamed").Return(nil, sql.ErrNoRows)
			},
			wantErr: ErrNotFound,
		},
		{
			name:       "empty title never reaches the store",
			id:         1,
			title:      "",
			setupMocks: func(mRepo *repoMocks.MockTaskRepository) {},
			wantErr:    ErrBadInput,
		},
		{
			name:  "repository error",
			id:    2,
			title: "renamed",
			setupMocks: func(mRepo *repoMocks.MockTaskRepository) {
				mRepo.On("UpdateTitle", ctx, int64(2), "renamed").Return(nil, errors.New("db fail"))
			},
			wantErr: errors.New("db fail"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mRepo := new(repoMocks.MockTaskRepository)
			svc := NewTaskService(mRepo)
			tt.setupMocks(mRepo)

			got, err := svc.Update(ctx, tt.id, &model.TaskData{Title: tt.title})

			switch {
			case errors.Is(tt.wantErr, ErrNotFound), errors.Is(tt.wantErr, ErrBadInput):
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
			case tt.wantErr != nil:
				assert.EqualError(t, err, tt.wantErr.Error())
			default:
				assert.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
			mRepo.AssertExpectations(t)
		})
	}
}

func TestTaskService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("existing id", func(t *testing.T) {
		mRepo := new(repoMocks.MockTaskRepository)
		svc := NewTaskService(mRepo)
		mRepo.On("Delete", ctx, int64(1)).Return(&model.Task{ID: 1, Title: "write tests"}, nil)

		got, err := svc.Delete(ctx, 1)

		assert.NoError(t, err)
		assert.Equal(t, &model.TaskResult{ID: 1, Title: "write tests"}, got)
	})

	t.Run("missing id", func(t *testing.T) {
		mRepo := new(repoMocks.MockTaskRepository)
		svc := NewTaskService(mRepo)
		mRepo.On("Delete", ctx, int64(100)).Return(nil, sql.ErrNoRows)

		got, err := svc.Delete(ctx, 100)

		var nf *NotFoundError
		require.ErrorAs(t, err, &nf)
		assert.Equal(t, "task", nf.Resource)
		assert.Equal(t, int64(100), nf.ID)
		assert.Nil(t, got)
	})
}
