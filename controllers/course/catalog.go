package controllers

import (
	"errors"

	"educa/database"
	"educa/middleware"
	courseModels "educa/models/course"
	"educa/store"

	"github.com/gofiber/fiber/v2"
)

// GetSubjects lists catalog subjects with their course counts
func GetSubjects(c *fiber.Ctx) error {
	subjects, err := store.ListSubjectsWithCounts(database.Database.Db)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch subjects!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Subjects fetched successfully!", fiber.Map{
		"subjects": subjects,
	})
}

// GetCatalog lists catalog courses with module counts, optionally filtered by
// a subject slug query parameter
func GetCatalog(c *fiber.Ctx) error {
	db := database.Database.Db

	var subjectID uint
	if slug := c.Query("subject"); slug != "" {
		var subject courseModels.Subject
		if err := db.Where("slug = ?", slug).First(&subject).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Subject not found!", nil)
		}
		subjectID = subject.ID
	}

	courses, err := store.ListCatalog(db, subjectID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses": courses,
	})
}

// GetCourseDetails returns one catalog course with its modules in order
func GetCourseDetails(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	course, err := store.GetCourse(database.Database.Db, uint(id))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch course!", nil)
	}

	return respondCourseDetails(c, course)
}

// GetCourseDetailsBySlug is GetCourseDetails addressed by the course slug
func GetCourseDetailsBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")
	if slug == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course slug!", nil)
	}

	course, err := store.GetCourseBySlug(database.Database.Db, slug)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch course!", nil)
	}

	return respondCourseDetails(c, course)
}

func respondCourseDetails(c *fiber.Ctx, course *courseModels.Course) error {
	modules, err := store.ListModulesByCourse(database.Database.Db, course.ID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch modules!", nil)
	}
	course.Modules = modules

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", course)
}
