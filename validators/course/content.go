package courseValidator

import (
	"strings"

	"educa/middleware"
	courseModels "educa/models/course"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

func CreateContent() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			ItemType string `json:"item_type"`
			Title    string `json:"title"`
			Body     string `json:"body"`
			URL      string `json:"url"`
			FilePath string `json:"file_path"`
			Order    *int   `json:"order"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Validate Title
		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		}

		// Validate payload per item kind; the closed tag set itself is
		// enforced at construction time
		switch reqData.ItemType {
		case courseModels.ItemTypeText:
			if strings.TrimSpace(reqData.Body) == "" {
				errors["body"] = "Body is required for text content!"
			}
		case courseModels.ItemTypeVideo:
			if err := validate.Var(reqData.URL, "required,url"); err != nil {
				errors["url"] = "A valid URL is required for video content!"
			}
		case courseModels.ItemTypeImage, courseModels.ItemTypeFile:
			if strings.TrimSpace(reqData.FilePath) == "" {
				errors["file_path"] = "File path is required!"
			}
		case "":
			errors["item_type"] = "Item type is required!"
		}

		// An explicit order must be non-negative
		if reqData.Order != nil && *reqData.Order < 0 {
			errors["order"] = "Order must not be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedContent", reqData)
		return c.Next()
	}
}

func UpdateContent() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title    string `json:"title"`
			Body     string `json:"body"`
			URL      string `json:"url"`
			FilePath string `json:"file_path"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.URL != "" {
			if err := validate.Var(reqData.URL, "url"); err != nil {
				errors["url"] = "URL must be valid!"
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedContentUpdate", reqData)
		return c.Next()
	}
}
