package courseValidator

import (
	"encoding/json"
	"strconv"

	"educa/middleware"

	"github.com/gofiber/fiber/v2"
)

// ReorderPayload validates a drag-and-drop reorder batch: a JSON object
// mapping child id to a non-negative integer order. Anything else fails the
// whole request before any update runs.
func ReorderPayload() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var raw map[string]int
		if err := json.Unmarshal(c.Body(), &raw); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		orders := make(map[uint]int, len(raw))
		for key, order := range raw {
			id, err := strconv.ParseUint(key, 10, 64)
			if err != nil || id == 0 {
				return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
			}
			if order < 0 {
				return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Order must not be negative!", nil)
			}
			orders[uint(id)] = order
		}

		c.Locals("validatedOrder", orders)
		return c.Next()
	}
}
