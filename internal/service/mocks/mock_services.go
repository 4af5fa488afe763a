package mocks

import (
	"context"

	"diaryapi/internal/model"
	"github.com/stretchr/testify/mock"
)

type MockDiaryService struct {
	mock.Mock
}

func (m *MockDiaryService) List(ctx context.Context) ([]model.Diary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Diary), args.Error(1)
}

func (m *MockDiaryService) Get(ctx context.Context, id int64) (*model.Diary, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Diary), args.Error(1)
}

func (m *MockDiaryService) Create(ctx context.Context, data *model.DiaryData) (*model.Diary, error) {
	args := m.Called(ctx, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Diary), args.Error(1)
}

func (m *MockDiaryService) Delete(ctx context.Context, id int64) (*model.Diary, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Diary), args.Error(1)
}

type MockTaskService struct {
	mock.Mock
}

func (m *MockTaskService) List(ctx context.Context) ([]model.TaskResult, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.TaskResult), args.Error(1)
}

func (m *MockTaskService) Get(ctx context.Context, id int64) (*model.TaskResult, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TaskResult), args.Error(1)
}

func (m *MockTaskService) Create(ctx context.Context, diaryID int64, data *model.TaskData) (*model.TaskResult, error) {
	args := m.Called(ctx, diaryID, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TaskResult), args.Error(1)
}

func (m *MockTaskService) Update(ctx context.Context, id int64, data *model.TaskData) (*model.TaskResult, error) {
	args := m.Called(ctx, id, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TaskResult), args.Error(1)
}

func (m *MockTaskService) Delete(ctx context.Context, id int64) (*model.TaskResult, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TaskResult), args.Error(1)
}

type MockExportService struct {
	mock.Mock
}

func (m *MockExportService) Export(ctx context.Context, diaryID int64) (*model.ExportResult, error) {
	args := m.Called(ctx, diaryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ExportResult), args.Error(1)
}
