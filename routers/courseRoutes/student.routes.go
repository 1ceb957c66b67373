package courseRoutes

import (
	controllers "educa/controllers/course"
	"educa/middleware"
	validators "educa/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupStudentRoutes sets up catalog browsing and enrollment routes
func SetupStudentRoutes(app *fiber.App) {
	courseGroup := app.Group("/course")

	// Catalog (public)
	courseGroup.Get("/subjects", controllers.GetSubjects)
	courseGroup.Get("/list", controllers.GetCatalog)
	courseGroup.Get("/slug/:slug", controllers.GetCourseDetailsBySlug)
	courseGroup.Get("/:id", controllers.GetCourseDetails)

	// Enrollment
	courseGroup.Post("/:id/enroll", middleware.JWTMiddleware, validators.EnrollCourse(), controllers.EnrollInCourse)

	// Content viewing (for enrolled users)
	courseGroup.Get("/:course_id/module/:module_id/contents", middleware.JWTMiddleware, validators.ModuleContentParams(), controllers.GetModuleContents)

	userGroup := app.Group("/user")
	userGroup.Get("/enrollments", middleware.JWTMiddleware, controllers.GetEnrollments)
}
