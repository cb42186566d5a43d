package controllers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"lms/config"
	"lms/database"
	"lms/middleware"
	"lms/models"
	courseModels "lms/models/course"
	authRoutes "lms/routers/authRoutes"
	courseRoutes "lms/routers/courseRoutes"
	userRoutes "lms/routers/userRoutes"
	"log"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var app *fiber.App

func TestMain(m *testing.M) {
	config.AppConfig = &config.Config{
		Port:              "3000",
		JWTKey:            "test-secret",
		SaltRound:         4,
		CertificatePrefix: "ZBS",
	}

	db, err := gorm.Open(sqlite.Open("file:coursetest?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		log.Fatalf("failed to open test database: %v", err)
	}

	database.Database = database.DbInstance{Db: db}
	database.RunMigrations(db)

	app = fiber.New()
	authRoutes.SetupAuthRoutes(app)
	userRoutes.SetupUserRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	courseRoutes.SetupAdminCourseRoutes(app)

	os.Exit(m.Run())
}

func createTestUser(t *testing.T, email, role string) (models.User, string) {
	t.Helper()

	user := models.User{
		Name:     "Test User",
		Email:    email,
		Password: "not-a-real-hash",
		Role:     role,
		IsActive: true,
	}
	if err := database.Database.Db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Role, user.Email)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	return user, "Bearer " + token
}

func createActiveCourse(t *testing.T, title, category string) courseModels.Course {
	t.Helper()

	course := courseModels.Course{
		Title:        title,
		Description:  "Course for testing",
		Category:     category,
		Status:       "ACTIVE",
		TargetRole:   "BOTH",
		PassingScore: 70,
	}
	if err := database.Database.Db.Create(&course).Error; err != nil {
		t.Fatalf("failed to create course: %v", err)
	}
	return course
}

func saveCourse(t *testing.T, course *courseModels.Course) {
	t.Helper()

	if err := database.Database.Db.Save(course).Error; err != nil {
		t.Fatalf("failed to save course: %v", err)
	}
}

func addLesson(t *testing.T, courseID uint, title string) courseModels.Lesson {
	t.Helper()

	lesson := courseModels.Lesson{
		CourseID: courseID,
		Title:    title,
		Status:   "ACTIVE",
	}
	if err := database.Database.Db.Create(&lesson).Error; err != nil {
		t.Fatalf("failed to create lesson: %v", err)
	}
	return lesson
}

func addQuiz(t *testing.T, courseID uint, final bool, maxAttempts int) courseModels.Quiz {
	t.Helper()

	quiz := courseModels.Quiz{
		CourseID:     courseID,
		Title:        "Assessment",
		PassingScore: 70,
		MaxAttempts:  maxAttempts,
		IsFinalQuiz:  final,
		Status:       "ACTIVE",
	}
	if err := database.Database.Db.Create(&quiz).Error; err != nil {
		t.Fatalf("failed to create quiz: %v", err)
	}
	return quiz
}

func addQuestion(t *testing.T, quizID uint, correct int) courseModels.QuizQuestion {
	t.Helper()

	options, _ := json.Marshal([]string{"Option A", "Option B", "Option C", "Option D"})
	question := courseModels.QuizQuestion{
		QuizID:        quizID,
		Question:      "Pick the right option",
		Options:       options,
		CorrectAnswer: correct,
		Points:        1,
	}
	if err := database.Database.Db.Create(&question).Error; err != nil {
		t.Fatalf("failed to create question: %v", err)
	}
	return question
}

func enroll(t *testing.T, userID, courseID uint) courseModels.Enrollment {
	t.Helper()

	enrollment := courseModels.Enrollment{
		UserID:     userID,
		CourseID:   courseID,
		Status:     "ACTIVE",
		EnrolledAt: time.Now(),
	}
	if err := database.Database.Db.Create(&enrollment).Error; err != nil {
		t.Fatalf("failed to create enrollment: %v", err)
	}
	return enrollment
}

func doRequest(t *testing.T, method, url, token string, body interface{}) (int, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		jsonData, _ := json.Marshal(body)
		reader = bytes.NewBuffer(jsonData)
	}

	req := httptest.NewRequest(method, url, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	var result map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&result)

	return resp.StatusCode, result
}

func dataField(result map[string]interface{}) map[string]interface{} {
	data, _ := result["data"].(map[string]interface{})
	return data
}
