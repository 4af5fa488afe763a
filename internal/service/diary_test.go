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

func TestDiaryService_List(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		setupMocks func(mRepo *repoMocks.MockDiaryRepository)
		wantLen    int
		wantErr    bool
	}{
		{
			name: "diaries exist",
			setupMocks: func(mRepo *repoMocks.MockDiaryRepository) {
				mRepo.On("FindAll", ctx).Return([]model.Diary{{ID: 1, Title: "Monday"}}, nil)
			},
			wantLen: 1,
		},
		{
			name: "no diaries",
			setupMocks: func(mRepo *repoMocks.MockDiaryRepository) {
				mRepo.On("FindAll", ctx).Return(nil, nil)
			},
			wantLen: 0,
		},
		{
			name: "repository error",
			setupMocks: func(mRepo *repoMocks.MockDiaryRepository) {
				mRepo.On("FindAll", ctx).Return(nil, errors.New("db fail"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mRepo := new(repoMocks.MockDiaryRepository)
			svc := NewDiaryService(mRepo)
			tt.setupMocks(mRepo)

			items, err := svc.List(ctx)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "list diaries: db fail")
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, items)
				assert.Len(t, items, tt.wantLen)
			}
			mRepo.AssertExpectations(t)
		})
	}
}

func TestDiaryService_Get(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		id         int64
		setupMocks func(mRepo *repoMocks.MockDiaryRepository)
		wantErr    error
	}{
		{
			name: "existing id",
			id:   1,
			setupMocks: func(mRepo *repoMocks.MockDiaryRepository) {
				mRepo.On("FindByID", ctx, int64(1)).Return(&model.Diary{ID: 1, Title: "Monday", Comment: "long day"}, nil)
			},
		},
		{
			name: "missing id",
			id:   100,
			setupMocks: func(mRepo *repoMocks.MockDiaryRepository) {
				mRepo.On("FindByID", ctx, int64(100)).Return(nil, sql.ErrNoRows)
			},
			wantErr: ErrNotFound,
		},
		{
			name: "repository error",
			id:   2,
			setupMocks: func(mRepo *repoMocks.MockDiaryRepository) {
				mRepo.On("FindByID", ctx, int64(2)).Return(nil, errors.New("db fail"))
			},
			wantErr: errors.New("db fail"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mRepo := new(repoMocks.MockDiaryRepository)
			svc := NewDiaryService(mRepo)
			tt.setupMocks(mRepo)

			d, err := svc.Get(ctx, tt.id)

			switch {
			case errors.Is(tt.wantErr, ErrNotFound):
				assert.ErrorIs(t, err, ErrNotFound)
				var nf *NotFoundError
				require.ErrorAs(t, err, &nf)
				assert.Equal(t, tt.id, nf.ID)
				assert.Equal(t, "diary", nf.Resource)
				assert.Nil(t, d)
			case tt.wantErr != nil:
				assert.Error(t, err)
				assert.NotErrorIs(t, err, ErrNotFound)
				assert.Nil(t, d)
			default:
				assert.NoError(t, err)
				assert.Equal(t, "long day", d.Comment)
			}
			mRepo.AssertExpectations(t)
		})
	}
}

func TestDiaryService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("valid payload", func(t *testing.T) {
		mRepo := new(repoMocks.MockDiaryRepository)
		svc := NewDiaryService(mRepo)

		mRepo.On("Save", ctx, &model.Diary{Title: "Monday", Comment: "long day"}).
			Return(&model.Diary{ID: 1, Title: "Monday", Comment: "long day"}, nil)

		d, err := svc.Create(ctx, &model.DiaryData{Title: "Monday", Comment: "long day"})

		assert.NoError(t, err)
		assert.Equal(t, int64(1), d.ID)
		mRepo.AssertExpectations(t)
	})

	t.Run("empty title", func(t *testing.T) {
		mRepo := new(repoMocks.MockDiaryRepository)
		svc := NewDiaryService(mRepo)

		d, err := svc.Create(ctx, &model.DiaryData{Title: "", Comment: "long day"})

		assert.ErrorIs(t, err, ErrBadInput)
		var bad *BadInputError
		require.ErrorAs(t, err, &bad)
		assert.Equal(t, "title", bad.Field)
		assert.Nil(t, d)
		mRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("repository error", func(t *testing.T) {
		mRepo := new(repoMocks.MockDiaryRepository)
		svc := NewDiaryService(mRepo)

		mRepo.On("Save", ctx, mock.Anything).Return(nil, errors.New("db fail"))

		d, err := svc.Create(ctx, &model.DiaryData{Title: "Monday"})

		assert.EqualError(t, err, "save diary: db fail")
		assert.Nil(t, d)
	})
}

func TestDiaryService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("existing id", func(t *testing.T) {
		mRepo := new(repoMocks.MockDiaryRepository)
		svc := NewDiaryService(mRepo)
		mRepo.On("Delete", ctx, int64(1)).Return(&model.Diary{ID: 1, Title: "Monday"}, nil)

		d, err := svc.Delete(ctx, 1)

		assert.NoError(t, err)
		assert.Equal(t, "Monday", d.Title)
		mRepo.AssertExpectations(t)
	})

	t.Run("missing id", func(t *testing.T) {
		mRepo := new(repoMocks.MockDiaryRepository)
		svc := NewDiaryService(mRepo)
		mRepo.On("Delete", ctx, int64(100)).Return(nil, sql.ErrNoRows)

		d, err := svc.Delete(ctx, 100)

		assert.ErrorIs(t, err, ErrNotFound)
		assert.EqualError(t, err, "diary 100 not found")
		assert.Nil(t, d)
	})
}
