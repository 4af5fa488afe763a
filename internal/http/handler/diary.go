package handler

import (
	"github.com/gofiber/fiber/v2"

	"diaryapi/internal/model"
	"diaryapi/internal/service"
)

// ListDiaries returns every diary.
//
// @Summary List diaries
// @Tags diaries
// @Produce json
// @Success 200 {array} model.Diary
// @Router /diaries [get]
func ListDiaries(svc service.DiaryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := svc.List(c.UserContext())
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(items)
	}
}

// GetDiary returns a diary by id.
//
// @Summary Get a diary
// @Tags diaries
// @Produce json
// @Param id path int true "Diary ID"
// @Success 200 {object} model.Diary
// @Failure 400,404 {object} errorPayload
// @Router /diaries/{id} [get]
func GetDiary(svc service.DiaryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c, "id")
		if !ok {
			return invalidID(c)
		}
		d, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(d)
	}
}

// CreateDiary stores a new diary.
//
// @Summary Create a diary
// @Tags diaries
// @Accept json
// @Produce json
// @Param diary body model.DiaryData true "Diary"
// @Success 201 {object} model.Diary
// @Failure 400 {object} errorPayload
// @Router /diaries [post]
func CreateDiary(svc service.DiaryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var data model.DiaryData
		if err := c.BodyParser(&data); err != nil {
			return invalidBody(c)
		}
		d, err := svc.Create(c.UserContext(), &data)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(d)
	}
}

// DeleteDiary removes a diary by id and returns it.
//
// @Summary Delete a diary
// @Tags diaries
// @Produce json
// @Param id path int true "Diary ID"
// @Success 200 {object} model.Diary
// @Failure 400,404 {object} errorPayload
// @Router /diaries/{id} [delete]
func DeleteDiary(svc service.DiaryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c, "id")
		if !ok {
			return invalidID(c)
		}
		d, err := svc.Delete(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(d)
	}
}

// ExportDiary snapshots a diary and its tasks to object storage.
// A nil service means object storage is not configured.
//
// @Summary Export a diary to object storage
// @Tags diaries
// @Produce json
// @Param id path int true "Diary ID"
// @Success 201 {object} model.ExportResult
// @Failure 400,404,503 {object} errorPayload
// @Router /diaries/{id}/export [post]
func ExportDiary(svc service.ExportService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if svc == nil {
			return writeError(c, fiber.StatusServiceUnavailable, "EXPORT_DISABLED", "object storage is not configured")
		}
		id, ok := paramID(c, "id")
		if !ok {
			return invalidID(c)
		}
		res, err := svc.Export(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(res)
	}
}
