package libraryControllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"lms/config"
	"lms/database"
	"lms/middleware"
	"lms/models"
	libraryRoutes "lms/routers/libraryRoutes"
	"log"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var app *fiber.App

func TestMain(m *testing.M) {
	config.AppConfig = &config.Config{
		Port:      "3000",
		JWTKey:    "test-secret",
		SaltRound: 4,
	}

	db, err := gorm.Open(sqlite.Open("file:librarytest?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		log.Fatalf("failed to open test database: %v", err)
	}

	database.Database = database.DbInstance{Db: db}
	database.RunMigrations(db)

	app = fiber.New()
	libraryRoutes.SetupLibraryRoutes(app)

	os.Exit(m.Run())
}

func makeUser(t *testing.T, email, role string) (models.User, string) {
	t.Helper()

	user := models.User{Name: "Library User", Email: email, Role: role, IsActive: true}
	if err := database.Database.Db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Role, user.Email)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	return user, "Bearer " + token
}

func call(t *testing.T, method, url, token string, body map[string]interface{}) (int, map[string]interface{}) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}

	req := httptest.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", token)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	var result map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&result)
	return resp.StatusCode, result
}

func addResource(t *testing.T, admin models.User, title, accessLevel string) models.LibraryResource {
	t.Helper()

	resource := models.LibraryResource{
		Title:       title,
		Type:        "DOCUMENT",
		FilePath:    "/files/" + title + ".pdf",
		AccessLevel: accessLevel,
		UploadedBy:  admin.ID,
	}
	if err := database.Database.Db.Create(&resource).Error; err != nil {
		t.Fatalf("failed to create resource: %v", err)
	}
	return resource
}

func TestResourceAccessLevels(t *testing.T) {
	admin, _ := makeUser(t, "library-admin@test.com", "ADMIN")
	_, agentToken := makeUser(t, "library-agent@test.com", "AGENT")

	addResource(t, admin, "public-handbook", "PUBLIC")
	addResource(t, admin, "agent-playbook", "AGENTS")
	officersOnly := addResource(t, admin, "officer-manual", "FIELD_OFFICERS")

	status, result := call(t, "GET", "/library/list", agentToken, nil)
	assert.Equal(t, fiber.StatusOK, status)

	titles := make(map[string]bool)
	for _, r := range result["data"].(map[string]interface{})["resources"].([]interface{}) {
		titles[r.(map[string]interface{})["title"].(string)] = true
	}
	assert.True(t, titles["public-handbook"])
	assert.True(t, titles["agent-playbook"])
	assert.False(t, titles["officer-manual"])

	// Counter endpoints respect the same access rules
	status, _ = call(t, "POST", fmt.Sprintf("/library/%d/view", officersOnly.ID), agentToken, nil)
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestViewAndDownloadCounters(t *testing.T) {
	admin, _ := makeUser(t, "library-counter-admin@test.com", "ADMIN")
	_, agentToken := makeUser(t, "library-counter-agent@test.com", "AGENT")

	resource := addResource(t, admin, "counted-guide", "PUBLIC")

	for i := 0; i < 3; i++ {
		status, _ := call(t, "POST", fmt.Sprintf("/library/%d/view", resource.ID), agentToken, nil)
		assert.Equal(t, fiber.StatusOK, status)
	}
	status, _ := call(t, "POST", fmt.Sprintf("/library/%d/download", resource.ID), agentToken, nil)
	assert.Equal(t, fiber.StatusOK, status)

	var reloaded models.LibraryResource
	database.Database.Db.First(&reloaded, resource.ID)
	assert.Equal(t, 3, reloaded.ViewCount)
	assert.Equal(t, 1, reloaded.DownloadCount)
}

func TestAdminResourceCRUD(t *testing.T) {
	_, adminToken := makeUser(t, "library-crud-admin@test.com", "ADMIN")

	status, result := call(t, "POST", "/admin/library/create", adminToken, map[string]interface{}{
		"title":        "Sales Objection Handling",
		"type":         "video",
		"external_url": "https://videos.example.com/objections",
		"access_level": "agents",
		"tags":         []string{"sales", "objections"},
	})
	assert.Equal(t, fiber.StatusCreated, status)

	data := result["data"].(map[string]interface{})
	resourceID := data["ID"].(float64)
	assert.Equal(t, "VIDEO", data["type"])
	assert.Equal(t, "AGENTS", data["access_level"])

	status, result = call(t, "PUT", fmt.Sprintf("/admin/library/%v", resourceID), adminToken, map[string]interface{}{
		"title": "Objection Handling Masterclass",
	})
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "Objection Handling Masterclass", result["data"].(map[string]interface{})["title"])

	status, _ = call(t, "DELETE", fmt.Sprintf("/admin/library/%v", resourceID), adminToken, nil)
	assert.Equal(t, fiber.StatusOK, status)

	var reloaded models.LibraryResource
	database.Database.Db.First(&reloaded, uint(resourceID))
	assert.True(t, reloaded.IsDeleted)
}

func TestResourceCreateValidation(t *testing.T) {
	_, adminToken := makeUser(t, "library-validate-admin@test.com", "ADMIN")

	// No file path or external URL
	status, _ := call(t, "POST", "/admin/library/create", adminToken, map[string]interface{}{
		"title": "Empty Resource",
	})
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
}
