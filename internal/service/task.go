package service

import (
	"context"
	"fmt"

	"diaryapi/internal/model"
	"diaryapi/internal/repository"
)

// TaskService defines the use cases for handling tasks.
// Tasks are keyed by their own id; the diary id from the route is recorded on
// create but never used to scope lookups.
type TaskService interface {
	List(ctx context.Context) ([]model.TaskResult, error)
	Get(ctx context.Context, id int64) (*model.TaskResult, error)
	Create(ctx context.Context, diaryID int64, data *model.TaskData) (*model.TaskResult, error)
	Update(ctx context.Context, id int64, data *model.TaskData) (*model.TaskResult, error)
	Delete(ctx context.Context, id int64) (*model.TaskResult, error)
}

type taskService struct {
	repo repository.TaskRepository
}

// NewTaskService constructs a new TaskService.
func NewTaskService(repo repository.TaskRepository) TaskService {
	return &taskService{repo: repo}
}

func (s *taskService) List(ctx context.Context) ([]model.TaskResult, error) {
	tasks, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	out := make([]model.TaskResult, 0, len(tasks))
	for i := range tasks {
		out = append(out, *tasks[i].Result())
	}
	return out, nil
}

func (s *taskService) Get(ctx context.Context, id int64) (*model.TaskResult, error) {
	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "task", id)
	}
	return t.Result(), nil
}

func (s *taskService) Create(ctx context.Context, diaryID int64, data *model.TaskData) (*model.TaskResult, error) {
	if err := validate(data); err != nil {
		return nil, err
	}
	t, err := s.repo.Save(ctx, &model.Task{DiaryID: diaryID, Title: data.Title})
	if err != nil {
		return nil, fmt.Errorf("save task: %w", err)
	}
	return t.Result(), nil
}

// Update validates before touching the store, so a bad payload never reaches it.
func (s *taskService) Update(ctx context.Context, id int64, data *model.TaskData) (*model.TaskResult, error) {
	if err := validate(data); err != nil {
		return nil, err
	}
	t, err := s.repo.UpdateTitle(ctx, id, data.Title)
	if err != nil {
		return nil, notFound(err, "task", id)
	}
	return t.Result(), nil
}

func (s *taskService) Delete(ctx context.Context, id int64) (*model.TaskResult, error) {
	t, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, notFound(err, "task", id)
	}
	return t.Result(), nil
}
