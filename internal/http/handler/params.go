package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// paramID parses an integer route parameter. Zero and negative ids are
// well-formed and simply miss in the store.
func paramID(c *fiber.Ctx, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

func invalidID(c *fiber.Ctx) error {
	return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
}

func invalidBody(c *fiber.Ctx) error {
	return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "request body must be valid JSON")
}
