package handler

import (
	"github.com/gofiber/fiber/v2"

	"diaryapi/internal/model"
	"diaryapi/internal/service"
)

// Task routes validate the diary id but do not scope lookups by it.

// ListTasks returns every task.
//
// @Summary List tasks
// @Tags tasks
// @Produce json
// @Param id path int true "Diary ID"
// @Success 200 {array} model.TaskResult
// @Router /diaries/{id}/tasks [get]
func ListTasks(svc service.TaskService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := paramID(c, "id"); !ok {
			return invalidID(c)
		}
		items, err := svc.List(c.UserContext())
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(items)
	}
}

// @Summary Get a task
// @Tags tasks
// @Produce json
// @Param id path int true "Diary ID"
// @Param taskId path int true "Task ID"
// @Success 200 {object} model.TaskResult
// @Failure 400,404 {object} errorPayload
// @Router /diaries/{id}/tasks/{taskId} [get]
func GetTask(svc service.TaskService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		_, ok := paramID(c, "id")
		taskID, ok2 := paramID(c, "taskId")
		if !ok || !ok2 {
			return invalidID(c)
		}
		t, err := svc.Get(c.UserContext(), taskID)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(t)
	}
}

// @Summary Create a task
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path int true "Diary ID"
// @Param task body model.TaskData true "Task"
// @Success 201 {object} model.TaskResult
// @Failure 400 {object} errorPayload
// @Router /diaries/{id}/tasks [post]
func CreateTask(svc service.TaskService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		diaryID, ok := paramID(c, "id")
		if !ok {
			return invalidID(c)
		}
		var data model.TaskData
		if err := c.BodyParser(&data); err != nil {
			return invalidBody(c)
		}
		t, err := svc.Create(c.UserContext(), diaryID, &data)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(t)
	}
}

// @Summary Rename a task
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path int true "Diary ID"
// @Param taskId path int true "Task ID"
// @Param task body model.TaskData true "Task"
// @Success 200 {object} model.TaskResult
// @Failure 400,404 {object} errorPayload
// @Router /diaries/{id}/tasks/{taskId} [patch]
func UpdateTask(svc service.TaskService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		_, ok := paramID(c, "id")
		taskID, ok2 := paramID(c, "taskId")
		if !ok || !ok2 {
			return invalidID(c)
		}
		var data model.TaskData
		if err := c.BodyParser(&data); err != nil {
			return invalidBody(c)
		}
		t, err := svc.Update(c.UserContext(), taskID, &data)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(t)
	}
}

// @Summary Delete a task
// @Tags tasks
// @Produce json
// @Param id path int true "Diary ID"
// @Param taskId path int true "Task ID"
// @Success 200 {object} model.TaskResult
// @Failure 400,404 {object} errorPayload
// @Router /diaries/{id}/tasks/{taskId} [delete]
func DeleteTask(svc service.TaskService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		_, ok := paramID(c, "id")
		taskID, ok2 := paramID(c, "taskId")
		if !ok || !ok2 {
			return invalidID(c)
		}
		t, err := svc.Delete(c.UserContext(), taskID)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(t)
	}
}
