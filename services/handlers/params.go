package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/periscope-tudelft/periscope_api/shared"
)

func paramInt(c *fiber.Ctx, name string) (int, error) {
	v, err := strconv.Atoi(c.Params(name))
	if err != nil {
		return 0, shared.NewTypeMismatchError("'" + name + "' must be an integer")
	}
	return v, nil
}

// queryInt returns nil when the parameter is absent.
func queryInt(c *fiber.Ctx, name string) (*int, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, shared.NewTypeMismatchError("'" + name + "' must be an integer")
	}
	return &v, nil
}

func userID(c *fiber.Ctx) int {
	id, _ := c.Locals(shared.UserID).(int)
	return id
}
