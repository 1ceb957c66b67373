package controllers

import (
	"educa/database"
	"educa/middleware"
	"educa/models"
	courseModels "educa/models/course"
	"educa/store"
	"educa/utils"

	"github.com/gofiber/fiber/v2"
)

// EnrollInCourse enrolls the requesting user into a course
func EnrollInCourse(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.First(&user, userID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseID, ok := c.Locals("courseID").(int)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	db := database.Database.Db

	var course courseModels.Course
	if err := db.First(&course, courseID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	// Check if user is already enrolled
	var existing courseModels.Enrollment
	if err := db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "User already enrolled in this course!", nil)
	}

	enrollment := courseModels.Enrollment{
		UserID:   userID,
		CourseID: uint(courseID),
		Status:   "ENROLLED",
	}

	if err := db.Create(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to enroll in course!", nil)
	}

	utils.SendEnrollmentEmail(user.Email, user.Name, course.Title)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrolled in course successfully!", enrollment)
}

// GetEnrollments lists the requesting user's enrollments with their courses
func GetEnrollments(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var enrollments []courseModels.Enrollment
	if err := database.Database.Db.
		Where("user_id = ?", userID).
		Preload("Course").
		Order("created_at desc").
		Find(&enrollments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", fiber.Map{
		"enrollments": enrollments,
	})
}

// GetModuleContents serves a module's contents, in order and rendered, to an
// enrolled student
func GetModuleContents(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID, ok := c.Locals("courseID").(int)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}
	moduleID, ok := c.Locals("moduleID").(int)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid module id!", nil)
	}

	db := database.Database.Db

	// Check enrollment
	var enrollment courseModels.Enrollment
	if err := db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Please enroll in this course first!", nil)
	}

	// Module must belong to the course
	var module courseModels.Module
	if err := db.Where("id = ? AND course_id = ?", moduleID, courseID).First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	contents, err := store.ListContentsByModule(db, module.ID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch contents!", nil)
	}

	rendered := make([]fiber.Map, 0, len(contents))
	for i := range contents {
		item, err := store.LoadContentItem(db, &contents[i])
		if err != nil {
			continue
		}
		rendered = append(rendered, fiber.Map{
			"id":    contents[i].ID,
			"order": contents[i].OrderIndex,
			"item":  item.Render(),
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Contents fetched successfully!", fiber.Map{
		"module":   module,
		"contents": rendered,
	})
}
