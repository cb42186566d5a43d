package libraryControllers

import (
	"encoding/json"
	"lms/database"
	"lms/middleware"
	"lms/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ResourceRequest is the payload for library resource create/update
type ResourceRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Type        string   `json:"type"`
	FilePath    string   `json:"file_path"`
	ExternalURL string   `json:"external_url"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
	AccessLevel string   `json:"access_level"`
	IsFeatured  *bool    `json:"is_featured"`
}

func accessLevelsFor(role string) []string {
	levels := []string{"PUBLIC"}
	switch role {
	case "AGENT":
		levels = append(levels, "AGENTS")
	case "FIELD_OFFICER":
		levels = append(levels, "FIELD_OFFICERS")
	case "ADMIN":
		levels = append(levels, "AGENTS", "FIELD_OFFICERS", "ADMINS")
	}
	return levels
}

// GetResources lists library resources visible to the caller
func GetResources(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	db := database.Database.Db.Model(&models.LibraryResource{}).
		Where("is_deleted = ? AND access_level IN ?", false, accessLevelsFor(user.Role))

	if category := c.Query("category"); category != "" {
		db = db.Where("category = ?", category)
	}
	if rtype := c.Query("type"); rtype != "" {
		db = db.Where("type = ?", rtype)
	}
	if c.Query("featured") == "true" {
		db = db.Where("is_featured = ?", true)
	}

	var resources []models.LibraryResource
	if err := db.Order("created_at desc").Find(&resources).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch resources!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Resources fetched successfully!", fiber.Map{
		"resources": resources,
		"total":     len(resources),
	})
}

// trackResourceAccess bumps one of the resource counters
func trackResourceAccess(c *fiber.Ctx, column string) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	resourceID := c.Locals("resourceID").(int)

	var resource models.LibraryResource
	if err := database.Database.Db.Where("id = ? AND is_deleted = ? AND access_level IN ?", resourceID, false, accessLevelsFor(user.Role)).First(&resource).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Resource not found!", nil)
	}

	database.Database.Db.Model(&resource).Update(column, gorm.Expr(column+" + 1"))

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Resource access recorded!", resource)
}

// TrackResourceView increments a resource's view counter
func TrackResourceView(c *fiber.Ctx) error {
	return trackResourceAccess(c, "view_count")
}

// TrackResourceDownload increments a resource's download counter
func TrackResourceDownload(c *fiber.Ctx) error {
	return trackResourceAccess(c, "download_count")
}

// AdminCreateResource uploads a new library resource entry
func AdminCreateResource(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedResource").(*ResourceRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	tagsJSON, _ := json.Marshal(reqData.Tags)

	resource := models.LibraryResource{
		Title:       reqData.Title,
		Description: reqData.Description,
		FilePath:    reqData.FilePath,
		ExternalURL: reqData.ExternalURL,
		Category:    reqData.Category,
		Tags:        tagsJSON,
		UploadedBy:  userID,
	}
	if reqData.Type != "" {
		resource.Type = reqData.Type
	}
	if reqData.AccessLevel != "" {
		resource.AccessLevel = reqData.AccessLevel
	}
	if reqData.IsFeatured != nil {
		resource.IsFeatured = *reqData.IsFeatured
	}

	if err := database.Database.Db.Create(&resource).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create resource!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Resource created successfully!", resource)
}

// AdminUpdateResource edits a library resource
func AdminUpdateResource(c *fiber.Ctx) error {
	resourceID := c.Locals("resourceID").(int)

	var resource models.LibraryResource
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", resourceID, false).First(&resource).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Resource not found!", nil)
	}

	reqData, ok := c.Locals("validatedResource").(*ResourceRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.Title != "" {
		resource.Title = reqData.Title
	}
	if reqData.Description != "" {
		resource.Description = reqData.Description
	}
	if reqData.Type != "" {
		resource.Type = reqData.Type
	}
	if reqData.FilePath != "" {
		resource.FilePath = reqData.FilePath
	}
	if reqData.ExternalURL != "" {
		resource.ExternalURL = reqData.ExternalURL
	}
	if reqData.Category != "" {
		resource.Category = reqData.Category
	}
	if len(reqData.Tags) > 0 {
		tagsJSON, _ := json.Marshal(reqData.Tags)
		resource.Tags = tagsJSON
	}
	if reqData.AccessLevel != "" {
		resource.AccessLevel = reqData.AccessLevel
	}
	if reqData.IsFeatured != nil {
		resource.IsFeatured = *reqData.IsFeatured
	}

	if err := database.Database.Db.Save(&resource).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update resource!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Resource updated successfully!", resource)
}

// AdminDeleteResource soft deletes a library resource
func AdminDeleteResource(c *fiber.Ctx) error {
	resourceID := c.Locals("resourceID").(int)

	var resource models.LibraryResource
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", resourceID, false).First(&resource).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Resource not found!", nil)
	}

	resource.IsDeleted = true
	if err := database.Database.Db.Save(&resource).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete resource!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Resource deleted successfully!", nil)
}
