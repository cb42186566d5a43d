package supportControllers

import (
	"encoding/json"
	"lms/database"
	"lms/middleware"
	"lms/models"
	"lms/utils"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

// TicketListQuery is the parsed query string for ticket listings
type TicketListQuery struct {
	Page     *int    `query:"page"`
	Limit    *int    `query:"limit"`
	Status   *string `query:"status"`
	Priority *string `query:"priority"`
	Category *string `query:"category"`
}

type ticketMessage struct {
	Sender string `json:"sender"`
	Text   string `json:"text"`
	Time   string `json:"time"`
}

func appendMessage(ticket *models.SupportTicket, sender, text string) error {
	var thread []ticketMessage
	if len(ticket.Messages) > 0 {
		if err := json.Unmarshal(ticket.Messages, &thread); err != nil {
			return err
		}
	}
	thread = append(thread, ticketMessage{
		Sender: sender,
		Text:   text,
		Time:   time.Now().UTC().Format(time.RFC3339),
	})
	raw, err := json.Marshal(thread)
	if err != nil {
		return err
	}
	ticket.Messages = raw
	return nil
}

func CreateSupportTicket(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	reqData, ok := c.Locals("validatedSupportTicket").(*struct {
		Subject     string  `json:"subject"`
		Description string  `json:"description"`
		Priority    *string `json:"priority"`
		Category    *string `json:"category"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	ticket := models.SupportTicket{
		UserID:      userID,
		Subject:     reqData.Subject,
		Description: reqData.Description,
		Status:      "OPEN",
		Priority:    "MEDIUM",
		Category:    "GENERAL",
	}
	if reqData.Priority != nil {
		ticket.Priority = strings.ToUpper(*reqData.Priority)
	}
	if reqData.Category != nil {
		ticket.Category = strings.ToUpper(*reqData.Category)
	}

	if err := appendMessage(&ticket, "user", reqData.Description); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to format message!", nil)
	}

	if err := database.Database.Db.Create(&ticket).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create support ticket!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Support ticket created successfully!", ticket)
}

func TicketList(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Access Denied!", nil)
	}

	reqData, ok := c.Locals("validatedList").(*TicketListQuery)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request!", nil)
	}

	// Pagination setup
	page := 1
	limit := 10
	if reqData.Page != nil {
		page = *reqData.Page
	}
	if reqData.Limit != nil {
		limit = *reqData.Limit
	}
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&models.SupportTicket{}).Where("user_id = ? AND is_deleted = false", userID)

	if reqData.Status != nil {
		db = db.Where("status = ?", strings.ToUpper(*reqData.Status))
	}

	var total int64
	db.Count(&total)

	var tickets []models.SupportTicket
	if err := db.Order("created_at DESC").Offset(offset).Limit(limit).Find(&tickets).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch tickets!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Tickets fetched successfully!", fiber.Map{
		"tickets": tickets,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

func AdminTicketList(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedAdminList").(*TicketListQuery)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	page := 1
	limit := 10
	if reqData.Page != nil {
		page = *reqData.Page
	}
	if reqData.Limit != nil {
		limit = *reqData.Limit
	}
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&models.SupportTicket{}).Where("is_deleted = false")

	if reqData.Status != nil {
		db = db.Where("status = ?", strings.ToUpper(*reqData.Status))
	}
	if reqData.Priority != nil {
		db = db.Where("priority = ?", strings.ToUpper(*reqData.Priority))
	}
	if reqData.Category != nil {
		db = db.Where("category = ?", strings.ToUpper(*reqData.Category))
	}

	var total int64
	db.Count(&total)

	var tickets []models.SupportTicket
	if err := db.Offset(offset).Limit(limit).Order("created_at DESC").Find(&tickets).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch tickets!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Tickets fetched successfully!", fiber.Map{
		"tickets": tickets,
		"pagination": fiber.Map{
			"page":  page,
			"limit": limit,
			"total": total,
		},
	})
}

// reply appends a message to a ticket thread on behalf of sender
func reply(c *fiber.Ctx, sender string, restrictToOwner bool) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedReply").(*struct {
		TicketID uint   `json:"ticket_id"`
		Message  string `json:"message"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db.Where("id = ? AND is_deleted = false", reqData.TicketID)
	if restrictToOwner {
		db = db.Where("user_id = ?", userID)
	}

	var ticket models.SupportTicket
	if err := db.First(&ticket).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Ticket not found!", nil)
	}

	if ticket.Status == "CLOSED" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Ticket is closed!", nil)
	}

	if err := appendMessage(&ticket, sender, reqData.Message); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to format message!", nil)
	}

	if sender == "admin" {
		ticket.Status = "IN_PROGRESS"
		if ticket.AssignedTo == nil {
			ticket.AssignedTo = &userID
		}
	} else if ticket.Status == "RESOLVED" {
		// A user replying on a resolved ticket reopens it
		ticket.Status = "IN_PROGRESS"
	}

	if err := database.Database.Db.Save(&ticket).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save reply!", nil)
	}

	if sender == "admin" {
		var owner models.User
		if err := database.Database.Db.Where("id = ? AND is_deleted = ?", ticket.UserID, false).First(&owner).Error; err == nil {
			go utils.SendTicketReplyEmail(owner.Email, owner.Name, ticket.Subject, reqData.Message)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Reply added successfully!", ticket)
}

func AdminReplyTicket(c *fiber.Ctx) error {
	return reply(c, "admin", false)
}

func UserReplyTicket(c *fiber.Ctx) error {
	return reply(c, "user", true)
}

// closeTicket moves a ticket to a terminal status. Admins resolve
// tickets; owners close them (including resolved ones, to confirm).
func closeTicket(c *fiber.Ctx, restrictToOwner bool, status string) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedCloseTicket").(*struct {
		TicketID uint `json:"ticket_id"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db.Where("id = ? AND is_deleted = false", reqData.TicketID)
	if restrictToOwner {
		db = db.Where("user_id = ?", userID)
	}

	var ticket models.SupportTicket
	if err := db.First(&ticket).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Ticket not found!", nil)
	}

	if ticket.Status == "CLOSED" {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Ticket already closed!", nil)
	}
	if status == "RESOLVED" && ticket.Status == "RESOLVED" {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Ticket already resolved!", nil)
	}

	ticket.Status = status
	if err := database.Database.Db.Save(&ticket).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to close ticket!", nil)
	}

	message := "Ticket closed successfully!"
	if status == "RESOLVED" {
		message = "Ticket resolved successfully!"
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, message, ticket)
}

func UserCloseTicket(c *fiber.Ctx) error {
	return closeTicket(c, true, "CLOSED")
}

func AdminCloseTicket(c *fiber.Ctx) error {
	return closeTicket(c, false, "RESOLVED")
}

// AdminSupportStats returns ticket counts per status and priority
func AdminSupportStats(c *fiber.Ctx) error {
	var open, inProgress, resolved, closed, urgent int64

	database.Database.Db.Model(&models.SupportTicket{}).Where("is_deleted = false AND status = ?", "OPEN").Count(&open)
	database.Database.Db.Model(&models.SupportTicket{}).Where("is_deleted = false AND status = ?", "IN_PROGRESS").Count(&inProgress)
	database.Database.Db.Model(&models.SupportTicket{}).Where("is_deleted = false AND status = ?", "RESOLVED").Count(&resolved)
	database.Database.Db.Model(&models.SupportTicket{}).Where("is_deleted = false AND status = ?", "CLOSED").Count(&closed)
	database.Database.Db.Model(&models.SupportTicket{}).Where("is_deleted = false AND priority = ?", "URGENT").Count(&urgent)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Support stats fetched successfully!", fiber.Map{
		"open":        open,
		"in_progress": inProgress,
		"resolved":    resolved,
		"closed":      closed,
		"urgent":      urgent,
	})
}
