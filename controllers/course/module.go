package controllers

import (
	"errors"

	"educa/database"
	"educa/middleware"
	courseModels "educa/models/course"
	"educa/store"

	"github.com/gofiber/fiber/v2"
)

// CreateModule creates a module inside an owned course. When no order is
// given the next order index within the course is assigned.
func CreateModule(c *fiber.Ctx) error {
	course, ok := c.Locals("course").(*courseModels.Course)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	reqData, ok := c.Locals("validatedModule").(*struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Order       *int   `json:"order"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	module := courseModels.Module{
		CourseID:    course.ID,
		Title:       reqData.Title,
		Description: reqData.Description,
		OrderIndex:  reqData.Order,
	}

	if err := store.CreateModule(database.Database.Db, &module); err != nil {
		if errors.Is(err, courseModels.ErrOrderScopeUnset) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Module must belong to a course!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create module!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Module created successfully!", module)
}

// ListModules returns an owned course's modules in display order
func ListModules(c *fiber.Ctx) error {
	course, ok := c.Locals("course").(*courseModels.Course)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	modules, err := store.ListModulesByCourse(database.Database.Db, course.ID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch modules!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Modules fetched successfully!", fiber.Map{
		"modules": modules,
	})
}

// UpdateModule updates title and description of an owned module. Order is
// changed only through the reorder endpoint.
func UpdateModule(c *fiber.Ctx) error {
	module, ok := c.Locals("module").(*courseModels.Module)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	reqData, ok := c.Locals("validatedModuleUpdate").(*struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.Title != "" {
		module.Title = reqData.Title
	}
	if reqData.Description != "" {
		module.Description = reqData.Description
	}

	if err := database.Database.Db.Save(module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update module!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module updated successfully!", module)
}

// DeleteModule removes an owned module with its contents and items
func DeleteModule(c *fiber.Ctx) error {
	module, ok := c.Locals("module").(*courseModels.Module)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	if err := store.DeleteModule(database.Database.Db, module.ID); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete module!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module deleted successfully!", nil)
}
