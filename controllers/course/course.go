package controllers

import (
	"educa/database"
	"educa/middleware"
	courseModels "educa/models/course"
	"educa/store"
	"educa/utils"

	"github.com/gofiber/fiber/v2"
)

// CreateSubject creates a catalog subject
func CreateSubject(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSubject").(*struct {
		Title string `json:"title"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	subject := courseModels.Subject{
		Title: reqData.Title,
		Slug:  utils.UniqueSlug(db, &courseModels.Subject{}, reqData.Title),
	}

	if err := db.Create(&subject).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create subject!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Subject created successfully!", subject)
}

// CreateCourse creates a new course owned by the requesting user
func CreateCourse(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedCourse").(*struct {
		SubjectID uint   `json:"subject_id"`
		Title     string `json:"title"`
		Overview  string `json:"overview"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	// Subject must exist before a course can point at it
	var subject courseModels.Subject
	if err := db.First(&subject, reqData.SubjectID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Subject not found!", nil)
	}

	// The requesting user becomes the owner of the new record
	course := courseModels.Course{
		OwnerID:   userID,
		SubjectID: subject.ID,
		Title:     reqData.Title,
		Slug:      utils.UniqueSlug(db, &courseModels.Course{}, reqData.Title),
		Overview:  reqData.Overview,
	}

	if err := db.Create(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", course)
}

// UpdateCourse updates a course already loaded and owner-checked by the
// ownership middleware
func UpdateCourse(c *fiber.Ctx) error {
	course, ok := c.Locals("course").(*courseModels.Course)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	reqData, ok := c.Locals("validatedCourseUpdate").(*struct {
		SubjectID uint   `json:"subject_id"`
		Title     string `json:"title"`
		Overview  string `json:"overview"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	if reqData.SubjectID != 0 {
		var subject courseModels.Subject
		if err := db.First(&subject, reqData.SubjectID).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Subject not found!", nil)
		}
		course.SubjectID = subject.ID
	}
	if reqData.Title != "" {
		course.Title = reqData.Title
	}
	if reqData.Overview != "" {
		course.Overview = reqData.Overview
	}

	if err := db.Save(course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully!", course)
}

// DeleteCourse removes an owned course and everything under it
func DeleteCourse(c *fiber.Ctx) error {
	course, ok := c.Locals("course").(*courseModels.Course)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if err := store.DeleteCourse(database.Database.Db, course.ID); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully!", nil)
}

// GetMyCourses lists the courses the requesting user manages
func GetMyCourses(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courses, err := store.ListCoursesByOwner(database.Database.Db, userID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses": courses,
	})
}
