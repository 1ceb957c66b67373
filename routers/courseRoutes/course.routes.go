package courseRoutes

import (
	controllers "educa/controllers/course"
	"educa/middleware"
	validators "educa/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupManageRoutes sets up all owner-facing course management routes. Every
// route runs authenticate → authorize-by-ownership → validate → execute.
func SetupManageRoutes(app *fiber.App) {
	manageGroup := app.Group("/manage/course")

	// Subject & Course CRUD
	manageGroup.Post("/subject", middleware.JWTMiddleware, validators.CreateSubject(), controllers.CreateSubject)
	manageGroup.Post("/create", middleware.JWTMiddleware, validators.CreateCourse(), controllers.CreateCourse)
	manageGroup.Get("/mine", middleware.JWTMiddleware, controllers.GetMyCourses)
	manageGroup.Put("/:id", middleware.JWTMiddleware, middleware.RequireCourseOwner("id"), validators.UpdateCourse(), controllers.UpdateCourse)
	manageGroup.Delete("/:id", middleware.JWTMiddleware, middleware.RequireCourseOwner("id"), controllers.DeleteCourse)

	// Module Management
	manageGroup.Post("/:id/module", middleware.JWTMiddleware, middleware.RequireCourseOwner("id"), validators.CreateModule(), controllers.CreateModule)
	manageGroup.Get("/:id/modules", middleware.JWTMiddleware, middleware.RequireCourseOwner("id"), controllers.ListModules)

	moduleGroup := app.Group("/manage/module")
	moduleGroup.Put("/:module_id", middleware.JWTMiddleware, middleware.RequireModuleOwner("module_id"), validators.UpdateModule(), controllers.UpdateModule)
	moduleGroup.Delete("/:module_id", middleware.JWTMiddleware, middleware.RequireModuleOwner("module_id"), controllers.DeleteModule)

	// Content Management
	moduleGroup.Post("/:module_id/content", middleware.JWTMiddleware, middleware.RequireModuleOwner("module_id"), validators.CreateContent(), controllers.CreateContent)
	moduleGroup.Get("/:module_id/contents", middleware.JWTMiddleware, middleware.RequireModuleOwner("module_id"), controllers.ListModuleContents)

	contentGroup := app.Group("/manage/content")
	contentGroup.Put("/:content_id", middleware.JWTMiddleware, middleware.RequireContentOwner("content_id"), validators.UpdateContent(), controllers.UpdateContent)
	contentGroup.Delete("/:content_id", middleware.JWTMiddleware, middleware.RequireContentOwner("content_id"), controllers.DeleteContent)

	// Drag-and-drop reorder endpoints, one homogeneous child class per call
	orderGroup := app.Group("/manage/order")
	orderGroup.Post("/modules", middleware.JWTMiddleware, validators.ReorderPayload(), controllers.ModuleOrder)
	orderGroup.Post("/contents", middleware.JWTMiddleware, validators.ReorderPayload(), controllers.ContentOrder)
}
