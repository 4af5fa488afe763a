package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path"
	"strconv"
	"time"

	"github.com/google/uuid"

	"diaryapi/internal/model"
	"diaryapi/internal/repository"
	"diaryapi/internal/storage"
)

// ExportURLExpiry is how long the presigned download URL of an export stays valid.
const ExportURLExpiry = 15 * time.Minute

// ExportService writes JSON snapshots of a diary and its recorded tasks to object storage.
type ExportService interface {
	Export(ctx context.Context, diaryID int64) (*model.ExportResult, error)
}

type exportService struct {
	store   storage.Storage
	diaries repository.DiaryRepository
	tasks   repository.TaskRepository
	now     func() time.Time
}

// NewExportService constructs a new ExportService.
func NewExportService(store storage.Storage, diaries repository.DiaryRepository, tasks repository.TaskRepository) ExportService {
	return &exportService{
		store:   store,
		diaries: diaries,
		tasks:   tasks,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// ExportKey is the object key for a new export of diaryID.
func ExportKey(diaryID int64) string {
	return path.Join("exports", "diaries", strconv.FormatInt(diaryID, 10), uuid.NewString()+".json")
}

func (s *exportService) Export(ctx context.Context, diaryID int64) (*model.ExportResult, error) {
	d, err := s.diaries.FindByID(ctx, diaryID)
	if err != nil {
		return nil, notFound(err, "diary", diaryID)
	}

	tasks, err := s.tasks.FindByDiaryID(ctx, diaryID)
	if err != nil {
		return nil, fmt.Errorf("load tasks: %w", err)
	}

	doc := model.DiaryExport{
		Diary:      *d,
		Tasks:      make([]model.TaskResult, 0, len(tasks)),
		ExportedAt: s.now(),
	}
	for i := range tasks {
		doc.Tasks = append(doc.Tasks, *tasks[i].Result())
	}

	body, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode export: %w", err)
	}

	key := ExportKey(diaryID)
	info, err := s.store.Put(ctx, key, bytes.NewReader(body), storage.PutObjectOptions{
		Size:        int64(len(body)),
		ContentType: "application/json",
		Metadata: map[string]string{
			"diary-id": strconv.FormatInt(diaryID, 10),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("upload to storage: %w", err)
	}

	u, err := s.store.PresignGet(ctx, info.Key, ExportURLExpiry)
	if err != nil {
		// Rollback: an export nobody can download is removed
		if delErr := s.store.Delete(ctx, info.Key); delErr != nil {
			return nil, fmt.Errorf("presign failed: %v; rollback delete failed: %v", err, delErr)
		}
		return nil, fmt.Errorf("presign failed: %w", err)
	}

	return &model.ExportResult{Key: info.Key, Size: info.Size, URL: u}, nil
}
