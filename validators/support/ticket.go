package supportValidator

import (
	supportControllers "lms/controllers/support"
	"lms/middleware"
	"strings"

	"github.com/gofiber/fiber/v2"
)

var ticketPriorities = map[string]bool{"LOW": true, "MEDIUM": true, "HIGH": true, "URGENT": true}
var ticketStatuses = map[string]bool{"OPEN": true, "IN_PROGRESS": true, "RESOLVED": true, "CLOSED": true}

func CreateTicket() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Subject     string  `json:"subject"`
			Description string  `json:"description"`
			Priority    *string `json:"priority"`
			Category    *string `json:"category"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Subject = strings.TrimSpace(reqData.Subject)
		reqData.Description = strings.TrimSpace(reqData.Description)

		if reqData.Subject == "" {
			errors["subject"] = "Subject is required!"
		} else if len(reqData.Subject) < 5 {
			errors["subject"] = "Subject must be at least 5 characters long!"
		}

		if reqData.Description == "" {
			errors["description"] = "Description is required!"
		}

		if reqData.Priority != nil && !ticketPriorities[strings.ToUpper(*reqData.Priority)] {
			errors["priority"] = "Priority must be LOW, MEDIUM, HIGH or URGENT!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSupportTicket", reqData)
		return c.Next()
	}
}

func validateListQuery(c *fiber.Ctx) (*supportControllers.TicketListQuery, map[string]string) {
	reqData := new(supportControllers.TicketListQuery)

	if err := c.QueryParser(reqData); err != nil {
		return nil, map[string]string{"query": "Invalid query parameters!"}
	}

	errors := make(map[string]string)

	if reqData.Page != nil && *reqData.Page < 1 {
		errors["page"] = "Page must be greater than 0!"
	}
	if reqData.Limit != nil && (*reqData.Limit < 1 || *reqData.Limit > 100) {
		errors["limit"] = "Limit must be between 1 and 100!"
	}
	if reqData.Status != nil {
		upper := strings.ToUpper(*reqData.Status)
		if !ticketStatuses[upper] {
			errors["status"] = "Status must be OPEN, IN_PROGRESS, RESOLVED or CLOSED!"
		}
		reqData.Status = &upper
	}
	if reqData.Priority != nil {
		upper := strings.ToUpper(*reqData.Priority)
		if !ticketPriorities[upper] {
			errors["priority"] = "Priority must be LOW, MEDIUM, HIGH or URGENT!"
		}
		reqData.Priority = &upper
	}

	return reqData, errors
}

func TicketList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData, errors := validateListQuery(c)
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedList", reqData)
		return c.Next()
	}
}

func AdminTicketList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData, errors := validateListQuery(c)
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedAdminList", reqData)
		return c.Next()
	}
}

func ReplyTicket() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			TicketID uint   `json:"ticket_id"`
			Message  string `json:"message"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.TicketID == 0 {
			errors["ticket_id"] = "Ticket ID is required!"
		}

		reqData.Message = strings.TrimSpace(reqData.Message)
		if reqData.Message == "" {
			errors["message"] = "Message is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedReply", reqData)
		return c.Next()
	}
}

func CloseTicket() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			TicketID uint `json:"ticket_id"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.TicketID == 0 {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"ticket_id": "Ticket ID is required!",
			})
		}

		c.Locals("validatedCloseTicket", reqData)
		return c.Next()
	}
}
