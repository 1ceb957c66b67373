package controllers

import (
	"errors"
	"log"

	"educa/database"
	"educa/middleware"
	courseModels "educa/models/course"
	"educa/store"
	"educa/utils"

	"github.com/gofiber/fiber/v2"
)

// CreateContent creates an item of the requested kind plus the content slot
// pointing at it, inside an owned module
func CreateContent(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	module, ok := c.Locals("module").(*courseModels.Module)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	reqData, ok := c.Locals("validatedContent").(*struct {
		ItemType string `json:"item_type"`
		Title    string `json:"title"`
		Body     string `json:"body"`
		URL      string `json:"url"`
		FilePath string `json:"file_path"`
		Order    *int   `json:"order"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	base := courseModels.ItemBase{
		OwnerID: userID,
		Title:   reqData.Title,
	}

	var item courseModels.Item
	switch reqData.ItemType {
	case courseModels.ItemTypeText:
		item = &courseModels.Text{ItemBase: base, Body: reqData.Body}
	case courseModels.ItemTypeVideo:
		video := &courseModels.Video{ItemBase: base, URL: reqData.URL}
		// Best-effort embed metadata; the item stands without it
		if meta, err := utils.FetchVideoMeta(reqData.URL); err == nil {
			video.Meta = meta
		}
		item = video
	case courseModels.ItemTypeImage:
		item = &courseModels.Image{ItemBase: base, FilePath: reqData.FilePath}
	case courseModels.ItemTypeFile:
		item = &courseModels.File{ItemBase: base, FilePath: reqData.FilePath}
	default:
		return middleware.JsonResponse(c, fiber.StatusUnprocessableEntity, false, "Invalid content type!", nil)
	}

	content, err := store.CreateContentWithItem(database.Database.Db, module.ID, item, reqData.Order)
	if err != nil {
		if errors.Is(err, courseModels.ErrInvalidItemType) {
			return middleware.JsonResponse(c, fiber.StatusUnprocessableEntity, false, "Invalid content type!", nil)
		}
		log.Printf("Error creating content: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create content!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Content created successfully!", fiber.Map{
		"content": content,
		"item":    item.Render(),
	})
}

// ListModuleContents returns an owned module's contents in display order with
// each item rendered
func ListModuleContents(c *fiber.Ctx) error {
	module, ok := c.Locals("module").(*courseModels.Module)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	db := database.Database.Db

	contents, err := store.ListContentsByModule(db, module.ID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch contents!", nil)
	}

	result := make([]fiber.Map, 0, len(contents))
	for i := range contents {
		entry := fiber.Map{
			"id":        contents[i].ID,
			"order":     contents[i].OrderIndex,
			"item_type": contents[i].ItemType,
		}
		if item, err := store.LoadContentItem(db, &contents[i]); err == nil {
			entry["item"] = item.Render()
		}
		result = append(result, entry)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Contents fetched successfully!", fiber.Map{
		"contents": result,
	})
}

// UpdateContent updates the item behind an owned content slot
func UpdateContent(c *fiber.Ctx) error {
	content, ok := c.Locals("content").(*courseModels.Content)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Content not found!", nil)
	}

	reqData, ok := c.Locals("validatedContentUpdate").(*struct {
		Title    string `json:"title"`
		Body     string `json:"body"`
		URL      string `json:"url"`
		FilePath string `json:"file_path"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	item, err := store.LoadContentItem(db, content)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Content item not found!", nil)
	}

	switch it := item.(type) {
	case *courseModels.Text:
		if reqData.Title != "" {
			it.Title = reqData.Title
		}
		if reqData.Body != "" {
			it.Body = reqData.Body
		}
	case *courseModels.Video:
		if reqData.Title != "" {
			it.Title = reqData.Title
		}
		if reqData.URL != "" {
			it.URL = reqData.URL
			if meta, err := utils.FetchVideoMeta(reqData.URL); err == nil {
				it.Meta = meta
			}
		}
	case *courseModels.Image:
		if reqData.Title != "" {
			it.Title = reqData.Title
		}
		if reqData.FilePath != "" {
			it.FilePath = reqData.FilePath
		}
	case *courseModels.File:
		if reqData.Title != "" {
			it.Title = reqData.Title
		}
		if reqData.FilePath != "" {
			it.FilePath = reqData.FilePath
		}
	}

	if err := db.Save(item).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update content!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Content updated successfully!", fiber.Map{
		"content": content,
		"item":    item.Render(),
	})
}

// DeleteContent removes an owned content slot and its item together
func DeleteContent(c *fiber.Ctx) error {
	content, ok := c.Locals("content").(*courseModels.Content)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Content not found!", nil)
	}

	if err := store.DeleteContent(database.Database.Db, content); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete content!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Content deleted successfully!", nil)
}
