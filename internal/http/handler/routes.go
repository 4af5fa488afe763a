package handler

import (
	"github.com/gofiber/fiber/v2"

	"diaryapi/internal/service"
)

// Services bundles the use cases exposed over HTTP.
// Export may be nil when object storage is not configured.
type Services struct {
	Diaries service.DiaryService
	Tasks   service.TaskService
	Export  service.ExportService
}

// RegisterRoutes attaches the health probes and the diary/task API to app.
func RegisterRoutes(app *fiber.App, db Pinger, svc Services) {
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	diaries := app.Group("/diaries")
	diaries.Get("/", ListDiaries(svc.Diaries))
	diaries.Post("/", CreateDiary(svc.Diaries))
	diaries.Get("/:id", GetDiary(svc.Diaries))
	diaries.Delete("/:id", DeleteDiary(svc.Diaries))
	diaries.Post("/:id/export", ExportDiary(svc.Export))

	tasks := diaries.Group("/:id/tasks")
	tasks.Get("/", ListTasks(svc.Tasks))
	tasks.Post("/", CreateTask(svc.Tasks))
	tasks.Get("/:taskId", GetTask(svc.Tasks))
	tasks.Patch("/:taskId", UpdateTask(svc.Tasks))
	tasks.Delete("/:taskId", DeleteTask(svc.Tasks))
}
