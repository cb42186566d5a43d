package libraryValidator

import (
	libraryControllers "lms/controllers/library"
	"lms/middleware"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

var resourceTypes = map[string]bool{"DOCUMENT": true, "VIDEO": true, "AUDIO": true, "IMAGE": true, "LINK": true}
var accessLevels = map[string]bool{"PUBLIC": true, "AGENTS": true, "FIELD_OFFICERS": true, "ADMINS": true}

func validateResource(reqData *libraryControllers.ResourceRequest, requireTitle bool) map[string]string {
	errors := make(map[string]string)

	reqData.Title = strings.TrimSpace(reqData.Title)
	if requireTitle && reqData.Title == "" {
		errors["title"] = "Title is required!"
	}

	if reqData.Type != "" {
		reqData.Type = strings.ToUpper(reqData.Type)
		if !resourceTypes[reqData.Type] {
			errors["type"] = "Type must be DOCUMENT, VIDEO, AUDIO, IMAGE or LINK!"
		}
	}

	if reqData.AccessLevel != "" {
		reqData.AccessLevel = strings.ToUpper(reqData.AccessLevel)
		if !accessLevels[reqData.AccessLevel] {
			errors["access_level"] = "Access level must be PUBLIC, AGENTS, FIELD_OFFICERS or ADMINS!"
		}
	}

	if requireTitle && reqData.FilePath == "" && reqData.ExternalURL == "" {
		errors["file_path"] = "Either a file path or an external URL is required!"
	}

	return errors
}

func CreateResource() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(libraryControllers.ResourceRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := validateResource(reqData, true); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedResource", reqData)
		return c.Next()
	}
}

func UpdateResource() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(strings.TrimSpace(c.Params("resourceId")))
		if err != nil || id < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid resource ID!", nil)
		}
		c.Locals("resourceID", id)

		reqData := new(libraryControllers.ResourceRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := validateResource(reqData, false); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedResource", reqData)
		return c.Next()
	}
}

func ResourceID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(strings.TrimSpace(c.Params("resourceId")))
		if err != nil || id < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid resource ID!", nil)
		}

		c.Locals("resourceID", id)
		return c.Next()
	}
}
