package noticeControllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"lms/config"
	"lms/database"
	"lms/middleware"
	"lms/models"
	noticeRoutes "lms/routers/noticeRoutes"
	"log"
	"net/http/httptest"
	"os"
	"testing"
	"time"

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

	db, err := gorm.Open(sqlite.Open("file:noticetest?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		log.Fatalf("failed to open test database: %v", err)
	}

	database.Database = database.DbInstance{Db: db}
	database.RunMigrations(db)

	app = fiber.New()
	noticeRoutes.SetupNoticeRoutes(app)

	os.Exit(m.Run())
}

func makeUser(t *testing.T, email, role string) (models.User, string) {
	t.Helper()

	user := models.User{Name: "Notice User", Email: email, Role: role, IsActive: true}
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

func noticeTitles(result map[string]interface{}) map[string]bool {
	titles := make(map[string]bool)
	data := result["data"].(map[string]interface{})
	for _, n := range data["notices"].([]interface{}) {
		titles[n.(map[string]interface{})["title"].(string)] = true
	}
	return titles
}

func TestNoticeAudienceFiltering(t *testing.T) {
	admin, adminToken := makeUser(t, "notice-admin@test.com", "ADMIN")
	_, agentToken := makeUser(t, "notice-agent@test.com", "AGENT")
	_ = admin

	status, _ := call(t, "POST", "/admin/notice/create", adminToken, map[string]interface{}{
		"title":   "Everyone Notice",
		"content": "Visible to all roles",
	})
	assert.Equal(t, fiber.StatusCreated, status)

	call(t, "POST", "/admin/notice/create", adminToken, map[string]interface{}{
		"title":           "Agents Notice",
		"content":         "Agents only",
		"target_audience": "agents",
	})
	call(t, "POST", "/admin/notice/create", adminToken, map[string]interface{}{
		"title":           "Officers Notice",
		"content":         "Field officers only",
		"target_audience": "field_officers",
	})

	status, result := call(t, "GET", "/notice/list", agentToken, nil)
	assert.Equal(t, fiber.StatusOK, status)

	titles := noticeTitles(result)
	assert.True(t, titles["Everyone Notice"])
	assert.True(t, titles["Agents Notice"])
	assert.False(t, titles["Officers Notice"])
}

func TestExpiredNoticeHidden(t *testing.T) {
	admin, _ := makeUser(t, "notice-expiry-admin@test.com", "ADMIN")
	_, agentToken := makeUser(t, "notice-expiry-agent@test.com", "AGENT")

	past := time.Now().Add(-time.Hour)
	expired := models.Notice{
		Title:     "Old News",
		Content:   "Already over",
		IsActive:  true,
		ExpiresAt: &past,
		CreatedBy: admin.ID,
	}
	assert.NoError(t, database.Database.Db.Create(&expired).Error)

	_, result := call(t, "GET", "/notice/list", agentToken, nil)
	assert.False(t, noticeTitles(result)["Old News"])
}

func TestNoticeCreateRequiresAdmin(t *testing.T) {
	_, agentToken := makeUser(t, "notice-nonadmin@test.com", "AGENT")

	status, _ := call(t, "POST", "/admin/notice/create", agentToken, map[string]interface{}{
		"title":   "Sneaky Notice",
		"content": "Should be rejected",
	})
	assert.Equal(t, fiber.StatusForbidden, status)
}

func TestNoticeUpdateAndDelete(t *testing.T) {
	_, adminToken := makeUser(t, "notice-crud-admin@test.com", "ADMIN")

	_, created := call(t, "POST", "/admin/notice/create", adminToken, map[string]interface{}{
		"title":   "Editable Notice",
		"content": "First version",
	})
	noticeID := created["data"].(map[string]interface{})["ID"].(float64)

	status, result := call(t, "PUT", fmt.Sprintf("/admin/notice/%v", noticeID), adminToken, map[string]interface{}{
		"content": "Second version",
	})
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "Second version", result["data"].(map[string]interface{})["content"])

	status, _ = call(t, "DELETE", fmt.Sprintf("/admin/notice/%v", noticeID), adminToken, nil)
	assert.Equal(t, fiber.StatusOK, status)

	var notice models.Notice
	database.Database.Db.First(&notice, uint(noticeID))
	assert.True(t, notice.IsDeleted)
}
