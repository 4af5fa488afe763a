package mocks

import (
	"context"

	"diaryapi/internal/model"
	"github.com/stretchr/testify/mock"
)

type MockDiaryRepository struct {
	mock.Mock
}

func (m *MockDiaryRepository) FindAll(ctx context.Context) ([]model.Diary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Diary), args.Error(1)
}

func (m *MockDiaryRepository) FindByID(ctx context.Context, id int64) (*model.Diary, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Diary), args.Error(1)
}

func (m *MockDiaryRepository) Save(ctx context.Context, diary *model.Diary) (*model.Diary, error) {
	args := m.Called(ctx, diary)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Diary), args.Error(1)
}

func (m *MockDiaryRepository) Delete(ctx context.Context, id int64) (*model.Diary, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Diary), args.Error(1)
}
