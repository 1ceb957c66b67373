package courseValidator

import (
	"educa/middleware"

	"github.com/gofiber/fiber/v2"
)

func EnrollCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
		}

		c.Locals("courseID", id)
		return c.Next()
	}
}

func ModuleContentParams() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, err := c.ParamsInt("course_id")
		if err != nil || courseID < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
		}

		moduleID, err := c.ParamsInt("module_id")
		if err != nil || moduleID < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid module id!", nil)
		}

		c.Locals("courseID", courseID)
		c.Locals("moduleID", moduleID)
		return c.Next()
	}
}
