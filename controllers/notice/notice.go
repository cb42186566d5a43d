package noticeControllers

import (
	"lms/database"
	"lms/middleware"
	"lms/models"
	"time"

	"github.com/gofiber/fiber/v2"
)

// NoticeRequest is the payload for notice create/update
type NoticeRequest struct {
	Title          string     `json:"title"`
	Content        string     `json:"content"`
	Type           string     `json:"type"`
	TargetAudience string     `json:"target_audience"`
	ExpiresAt      *time.Time `json:"expires_at"`
}

// GetActiveNotices lists active, unexpired notices for the caller's audience
func GetActiveNotices(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	audiences := []string{"ALL"}
	switch user.Role {
	case "AGENT":
		audiences = append(audiences, "AGENTS")
	case "FIELD_OFFICER":
		audiences = append(audiences, "FIELD_OFFICERS")
	case "ADMIN":
		audiences = append(audiences, "AGENTS", "FIELD_OFFICERS", "ADMINS")
	}

	var notices []models.Notice
	db := database.Database.Db.Where("is_deleted = ? AND is_active = ? AND target_audience IN ?", false, true, audiences).
		Where("expires_at IS NULL OR expires_at > ?", time.Now())

	if err := db.Order("created_at desc").Find(&notices).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch notices!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Notices fetched successfully!", fiber.Map{
		"notices": notices,
		"total":   len(notices),
	})
}

// AdminCreateNotice publishes a new notice
func AdminCreateNotice(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedNotice").(*NoticeRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	now := time.Now()
	notice := models.Notice{
		Title:       reqData.Title,
		Content:     reqData.Content,
		IsActive:    true,
		PublishedAt: &now,
		ExpiresAt:   reqData.ExpiresAt,
		CreatedBy:   userID,
	}
	if reqData.Type != "" {
		notice.Type = reqData.Type
	}
	if reqData.TargetAudience != "" {
		notice.TargetAudience = reqData.TargetAudience
	}

	if err := database.Database.Db.Create(&notice).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create notice!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Notice created successfully!", notice)
}

// AdminUpdateNotice edits an existing notice
func AdminUpdateNotice(c *fiber.Ctx) error {
	noticeID := c.Locals("noticeID").(int)

	var notice models.Notice
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", noticeID, false).First(&notice).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Notice not found!", nil)
	}

	reqData, ok := c.Locals("validatedNotice").(*NoticeRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.Title != "" {
		notice.Title = reqData.Title
	}
	if reqData.Content != "" {
		notice.Content = reqData.Content
	}
	if reqData.Type != "" {
		notice.Type = reqData.Type
	}
	if reqData.TargetAudience != "" {
		notice.TargetAudience = reqData.TargetAudience
	}
	if reqData.ExpiresAt != nil {
		notice.ExpiresAt = reqData.ExpiresAt
	}

	if err := database.Database.Db.Save(&notice).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update notice!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Notice updated successfully!", notice)
}

// AdminDeleteNotice soft deletes a notice
func AdminDeleteNotice(c *fiber.Ctx) error {
	noticeID := c.Locals("noticeID").(int)

	var notice models.Notice
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", noticeID, false).First(&notice).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Notice not found!", nil)
	}

	notice.IsDeleted = true
	notice.IsActive = false
	if err := database.Database.Db.Save(&notice).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete notice!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Notice deleted successfully!", nil)
}

// AdminListNotices lists every notice for management
func AdminListNotices(c *fiber.Ctx) error {
	var notices []models.Notice
	if err := database.Database.Db.Where("is_deleted = ?", false).Order("created_at desc").Find(&notices).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch notices!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Notices fetched successfully!", fiber.Map{
		"notices": notices,
		"total":   len(notices),
	})
}
