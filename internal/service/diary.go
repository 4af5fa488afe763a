package service

import (
	"context"
	"fmt"

	"diaryapi/internal/model"
	"diaryapi/internal/repository"
)

// DiaryService defines the use cases for handling diaries.
type DiaryService interface {
	// List returns every stored diary. An empty store yields an empty slice.
	List(ctx context.Context) ([]model.Diary, error)

	// Get returns a single diary by its ID.
	Get(ctx context.Context, id int64) (*model.Diary, error)

	// Create validates the payload and stores a new diary.
	Create(ctx context.Context, data *model.DiaryData) (*model.Diary, error)

	// Delete removes a diary by ID and returns the removed record.
	Delete(ctx context.Context, id int64) (*model.Diary, error)
}

type diaryService struct {
	repo repository.DiaryRepository
}

// NewDiaryService constructs a new DiaryService.
func NewDiaryService(repo repository.DiaryRepository) DiaryService {
	return &diaryService{repo: repo}
}

func (s *diaryService) List(ctx context.Context) ([]model.Diary, error) {
	items, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list diaries: %w", err)
	}
	if items == nil {
		items = []model.Diary{}
	}
	return items, nil
}

func (s *diaryService) Get(ctx context.Context, id int64) (*model.Diary, error) {
	d, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "diary", id)
	}
	return d, nil
}

func (s *diaryService) Create(ctx context.Context, data *model.DiaryData) (*model.Diary, error) {
	if err := validate(data); err != nil {
		return nil, err
	}
	d, err := s.repo.Save(ctx, &model.Diary{Title: data.Title, Comment: data.Comment})
	if err != nil {
		return nil, fmt.Errorf("save diary: %w", err)
	}
	return d, nil
}

func (s *diaryService) Delete(ctx context.Context, id int64) (*model.Diary, error) {
	d, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, notFound(err, "diary", id)
	}
	return d, nil
}
