package supportControllers_test

import (
	"bytes"
	"encoding/json"
	"lms/config"
	"lms/database"
	"lms/middleware"
	"lms/models"
	supportRoutes "lms/routers/supportRoutes"
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

	db, err := gorm.Open(sqlite.Open("file:supporttest?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		log.Fatalf("failed to open test database: %v", err)
	}

	database.Database = database.DbInstance{Db: db}
	database.RunMigrations(db)

	app = fiber.New()
	supportRoutes.SetupSupportRoutes(app)

	os.Exit(m.Run())
}

func makeUser(t *testing.T, email, role string) (models.User, string) {
	t.Helper()

	user := models.User{Name: "Support User", Email: email, Role: role, IsActive: true}
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

func TestCreateTicketSeedsThread(t *testing.T) {
	_, token := makeUser(t, "ticket-create@test.com", "AGENT")

	status, result := call(t, "POST", "/support/ticket/create", token, map[string]interface{}{
		"subject":     "Cannot open lesson video",
		"description": "The video player shows a blank screen.",
		"priority":    "high",
	})
	assert.Equal(t, fiber.StatusCreated, status)

	data := result["data"].(map[string]interface{})
	assert.Equal(t, "OPEN", data["status"])
	assert.Equal(t, "HIGH", data["priority"])

	messages := data["messages"].([]interface{})
	assert.Len(t, messages, 1)
	assert.Equal(t, "user", messages[0].(map[string]interface{})["sender"])
}

func TestAdminResolveAndUserReopen(t *testing.T) {
	_, userToken := makeUser(t, "ticket-resolve@test.com", "AGENT")
	_, adminToken := makeUser(t, "ticket-resolver@test.com", "ADMIN")

	_, created := call(t, "POST", "/support/ticket/create", userToken, map[string]interface{}{
		"subject":     "Quiz timer ran out early",
		"description": "The timer ended two minutes before it should have.",
	})
	ticketID := created["data"].(map[string]interface{})["ID"]

	// Admin close marks the ticket resolved, not closed
	status, result := call(t, "PATCH", "/admin/support/ticket/close", adminToken, map[string]interface{}{
		"ticket_id": ticketID,
	})
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "RESOLVED", result["data"].(map[string]interface{})["status"])

	status, _ = call(t, "PATCH", "/admin/support/ticket/close", adminToken, map[string]interface{}{
		"ticket_id": ticketID,
	})
	assert.Equal(t, fiber.StatusConflict, status)

	// Resolved tickets can be filtered in listings
	status, _ = call(t, "GET", "/support/ticket/list?status=resolved", userToken, nil)
	assert.Equal(t, fiber.StatusOK, status)

	// A user reply on a resolved ticket reopens it
	status, result = call(t, "PATCH", "/support/ticket/reply", userToken, map[string]interface{}{
		"ticket_id": ticketID,
		"message":   "It happened again on my next attempt.",
	})
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "IN_PROGRESS", result["data"].(map[string]interface{})["status"])

	// The owner can still close it outright
	status, result = call(t, "PATCH", "/support/ticket/close", userToken, map[string]interface{}{
		"ticket_id": ticketID,
	})
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "CLOSED", result["data"].(map[string]interface{})["status"])
}

func TestCreateTicketValidation(t *testing.T) {
	_, token := makeUser(t, "ticket-invalid@test.com", "AGENT")

	status, _ := call(t, "POST", "/support/ticket/create", token, map[string]interface{}{
		"subject": "Hi",
	})
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
}

func TestTicketReplyAndClose(t *testing.T) {
	user, userToken := makeUser(t, "ticket-flow@test.com", "AGENT")
	admin, adminToken := makeUser(t, "ticket-admin@test.com", "ADMIN")

	_, created := call(t, "POST", "/support/ticket/create", userToken, map[string]interface{}{
		"subject":     "Certificate name is wrong",
		"description": "My certificate shows the wrong course name.",
	})
	ticketID := created["data"].(map[string]interface{})["ID"].(float64)

	// Admin reply moves the ticket to IN_PROGRESS and assigns it
	status, result := call(t, "PATCH", "/admin/support/ticket/reply", adminToken, map[string]interface{}{
		"ticket_id": ticketID,
		"message":   "We are looking into it.",
	})
	assert.Equal(t, fiber.StatusOK, status)

	data := result["data"].(map[string]interface{})
	assert.Equal(t, "IN_PROGRESS", data["status"])
	assert.Equal(t, float64(admin.ID), data["assigned_to"].(float64))

	// Owner replies on their own ticket
	status, result = call(t, "PATCH", "/support/ticket/reply", userToken, map[string]interface{}{
		"ticket_id": ticketID,
		"message":   "Thanks, it happened again today.",
	})
	assert.Equal(t, fiber.StatusOK, status)
	assert.Len(t, result["data"].(map[string]interface{})["messages"].([]interface{}), 3)

	// Owner closes; replies are then rejected
	status, _ = call(t, "PATCH", "/support/ticket/close", userToken, map[string]interface{}{
		"ticket_id": ticketID,
	})
	assert.Equal(t, fiber.StatusOK, status)

	status, _ = call(t, "PATCH", "/support/ticket/reply", userToken, map[string]interface{}{
		"ticket_id": ticketID,
		"message":   "One more thing",
	})
	assert.Equal(t, fiber.StatusBadRequest, status)

	var ticket models.SupportTicket
	database.Database.Db.First(&ticket, uint(ticketID))
	assert.Equal(t, "CLOSED", ticket.Status)
	assert.Equal(t, user.ID, ticket.UserID)
}

func TestUserCannotTouchOthersTickets(t *testing.T) {
	_, ownerToken := makeUser(t, "ticket-owner@test.com", "AGENT")
	_, strangerToken := makeUser(t, "ticket-stranger@test.com", "AGENT")

	_, created := call(t, "POST", "/support/ticket/create", ownerToken, map[string]interface{}{
		"subject":     "Private billing question",
		"description": "Details only for support staff.",
	})
	ticketID := created["data"].(map[string]interface{})["ID"].(float64)

	status, _ := call(t, "PATCH", "/support/ticket/reply", strangerToken, map[string]interface{}{
		"ticket_id": ticketID,
		"message":   "I can see this?",
	})
	assert.Equal(t, fiber.StatusNotFound, status)

	status, _ = call(t, "PATCH", "/support/ticket/close", strangerToken, map[string]interface{}{
		"ticket_id": ticketID,
	})
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestTicketListScopedToOwner(t *testing.T) {
	_, firstToken := makeUser(t, "ticket-list-a@test.com", "AGENT")
	_, secondToken := makeUser(t, "ticket-list-b@test.com", "AGENT")

	call(t, "POST", "/support/ticket/create", firstToken, map[string]interface{}{
		"subject":     "First user's ticket",
		"description": "Belongs to user A.",
	})
	call(t, "POST", "/support/ticket/create", secondToken, map[string]interface{}{
		"subject":     "Second user's ticket",
		"description": "Belongs to user B.",
	})

	status, result := call(t, "GET", "/support/ticket/list", firstToken, nil)
	assert.Equal(t, fiber.StatusOK, status)

	tickets := result["data"].(map[string]interface{})["tickets"].([]interface{})
	for _, item := range tickets {
		assert.Equal(t, "First user's ticket", item.(map[string]interface{})["subject"])
	}
}

func TestAdminTicketListRequiresAdmin(t *testing.T) {
	_, token := makeUser(t, "ticket-nonadmin@test.com", "AGENT")

	status, _ := call(t, "GET", "/admin/support/ticket/list", token, nil)
	assert.Equal(t, fiber.StatusForbidden, status)
}
