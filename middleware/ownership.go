package middleware

import (
	"educa/database"
	course "educa/models/course"

	"github.com/gofiber/fiber/v2"
)

// Ownership middlewares run after JWTMiddleware and before the route's
// validator: they resolve the record named in the path, check the requesting
// user owns its transitive course, and stash the record in locals for the
// controller. Missing and foreign-owned records both answer 404 so ownership
// is not probeable.

// RequireCourseOwner loads the course from the given route param and verifies
// the requesting user owns it. Stores *course.Course under "course".
func RequireCourseOwner(param string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := c.Locals("userId").(uint)
		if !ok {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
		}

		id, err := c.ParamsInt(param)
		if err != nil || id < 1 {
			return JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
		}

		var crs course.Course
		if err := database.Database.Db.
			Where("id = ? AND owner_id = ?", id, userID).
			First(&crs).Error; err != nil {
			return JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
		}

		c.Locals("course", &crs)
		return c.Next()
	}
}

// RequireModuleOwner loads the module from the given route param and verifies
// the requesting user owns its course. Stores *course.Module under "module".
func RequireModuleOwner(param string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := c.Locals("userId").(uint)
		if !ok {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
		}

		id, err := c.ParamsInt(param)
		if err != nil || id < 1 {
			return JsonResponse(c, fiber.StatusBadRequest, false, "Invalid module id!", nil)
		}

		var module course.Module
		if err := database.Database.Db.
			Joins("JOIN courses ON courses.id = modules.course_id").
			Where("modules.id = ? AND courses.owner_id = ?", id, userID).
			First(&module).Error; err != nil {
			return JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
		}

		c.Locals("module", &module)
		return c.Next()
	}
}

// RequireContentOwner loads the content slot from the given route param and
// verifies the requesting user owns its module's course. Stores
// *course.Content under "content".
func RequireContentOwner(param string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := c.Locals("userId").(uint)
		if !ok {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
		}

		id, err := c.ParamsInt(param)
		if err != nil || id < 1 {
			return JsonResponse(c, fiber.StatusBadRequest, false, "Invalid content id!", nil)
		}

		var content course.Content
		if err := database.Database.Db.
			Joins("JOIN modules ON modules.id = contents.module_id").
			Joins("JOIN courses ON courses.id = modules.course_id").
			Where("contents.id = ? AND courses.owner_id = ?", id, userID).
			First(&content).Error; err != nil {
			return JsonResponse(c, fiber.StatusNotFound, false, "Content not found!", nil)
		}

		c.Locals("content", &content)
		return c.Next()
	}
}
