package noticeValidator

import (
	noticeControllers "lms/controllers/notice"
	"lms/middleware"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

var noticeTypes = map[string]bool{"GENERAL": true, "URGENT": true, "MAINTENANCE": true, "UPDATE": true}
var noticeAudiences = map[string]bool{"ALL": true, "AGENTS": true, "FIELD_OFFICERS": true, "ADMINS": true}

func validateNotice(reqData *noticeControllers.NoticeRequest, requireTitle bool) map[string]string {
	errors := make(map[string]string)

	reqData.Title = strings.TrimSpace(reqData.Title)
	reqData.Content = strings.TrimSpace(reqData.Content)

	if requireTitle {
		if reqData.Title == "" {
			errors["title"] = "Title is required!"
		}
		if reqData.Content == "" {
			errors["content"] = "Content is required!"
		}
	}

	if reqData.Type != "" {
		reqData.Type = strings.ToUpper(reqData.Type)
		if !noticeTypes[reqData.Type] {
			errors["type"] = "Type must be GENERAL, URGENT, MAINTENANCE or UPDATE!"
		}
	}

	if reqData.TargetAudience != "" {
		reqData.TargetAudience = strings.ToUpper(reqData.TargetAudience)
		if !noticeAudiences[reqData.TargetAudience] {
			errors["target_audience"] = "Target audience must be ALL, AGENTS, FIELD_OFFICERS or ADMINS!"
		}
	}

	if reqData.ExpiresAt != nil && reqData.ExpiresAt.Before(time.Now()) {
		errors["expires_at"] = "Expiry must be in the future!"
	}

	return errors
}

func CreateNotice() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(noticeControllers.NoticeRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := validateNotice(reqData, true); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedNotice", reqData)
		return c.Next()
	}
}

func UpdateNotice() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(strings.TrimSpace(c.Params("noticeId")))
		if err != nil || id < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid notice ID!", nil)
		}
		c.Locals("noticeID", id)

		reqData := new(noticeControllers.NoticeRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := validateNotice(reqData, false); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedNotice", reqData)
		return c.Next()
	}
}

func NoticeID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(strings.TrimSpace(c.Params("noticeId")))
		if err != nil || id < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid notice ID!", nil)
		}

		c.Locals("noticeID", id)
		return c.Next()
	}
}
