package controllers

import (
	"log"

	"educa/database"
	"educa/middleware"
	courseModels "educa/models/course"
	"educa/store"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

// ModuleOrder applies a drag-and-drop reorder batch for modules. The payload
// maps module id to new order; entries the requesting user does not own are
// skipped without failing the batch.
func ModuleOrder(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	orders, ok := c.Locals("validatedOrder").(map[uint]int)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	if err := store.ReorderModules(db, userID, orders); err != nil {
		log.Printf("Error reordering modules: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update order!", nil)
	}

	recordOrderChange(userID, courseModels.OrderScopeModule, c.Body())

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Order updated successfully!", fiber.Map{
		"saved": "OK",
	})
}

// ContentOrder applies a drag-and-drop reorder batch for module contents,
// with the same per-entry skip semantics as ModuleOrder
func ContentOrder(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	orders, ok := c.Locals("validatedOrder").(map[uint]int)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	if err := store.ReorderContents(db, userID, orders); err != nil {
		log.Printf("Error reordering contents: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update order!", nil)
	}

	recordOrderChange(userID, courseModels.OrderScopeContent, c.Body())

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Order updated successfully!", fiber.Map{
		"saved": "OK",
	})
}

// recordOrderChange keeps an audit trail of applied reorder batches. Best
// effort: a failed write is logged, not surfaced.
func recordOrderChange(actorID uint, scope string, payload []byte) {
	entry := courseModels.OrderChangeLog{
		ActorID: actorID,
		Scope:   scope,
		Payload: datatypes.JSON(payload),
	}
	if err := database.Database.Db.Create(&entry).Error; err != nil {
		log.Printf("Error recording order change: %v", err)
	}
}
