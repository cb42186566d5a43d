package controllers_test

import (
	"fmt"
	"lms/database"
	courseModels "lms/models/course"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestAdminCreateCourse(t *testing.T) {
	_, token := createTestUser(t, "admin-create@test.com", "ADMIN")

	status, result := doRequest(t, "POST", "/admin/course/create", token, map[string]interface{}{
		"title":       "Compliance Onboarding",
		"description": "Mandatory compliance training",
		"category":    "Compliance",
		"level":       "beginner",
		"target_role": "agent",
	})
	assert.Equal(t, fiber.StatusCreated, status)

	data := dataField(result)
	assert.Equal(t, "Compliance Onboarding", data["title"])
	assert.Equal(t, "DRAFT", data["status"])
	assert.Equal(t, "BEGINNER", data["level"])
	assert.Equal(t, "AGENT", data["target_role"])
	assert.Equal(t, float64(70), data["passing_score"])
}

func TestAdminCreateCourseValidation(t *testing.T) {
	_, token := createTestUser(t, "admin-create-invalid@test.com", "ADMIN")

	status, _ := doRequest(t, "POST", "/admin/course/create", token, map[string]interface{}{
		"title": "X",
	})
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
}

func TestAdminRoutesRejectNonAdmins(t *testing.T) {
	_, token := createTestUser(t, "admin-imposter@test.com", "AGENT")

	status, _ := doRequest(t, "POST", "/admin/course/create", token, map[string]interface{}{
		"title":       "Should Not Exist",
		"description": "Agents cannot create courses",
		"category":    "Sales",
	})
	assert.Equal(t, fiber.StatusForbidden, status)
}

func TestAdminPublishRequiresLessons(t *testing.T) {
	_, token := createTestUser(t, "admin-publish@test.com", "ADMIN")

	course := courseModels.Course{Title: "Empty Course", Category: "Sales", Status: "DRAFT"}
	assert.NoError(t, database.Database.Db.Create(&course).Error)

	status, result := doRequest(t, "POST", fmt.Sprintf("/admin/course/%d/publish", course.ID), token, nil)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Cannot publish a course without lessons!", result["message"])

	addLesson(t, course.ID, "Now It Has Content")

	status, _ = doRequest(t, "POST", fmt.Sprintf("/admin/course/%d/publish", course.ID), token, nil)
	assert.Equal(t, fiber.StatusOK, status)

	var reloaded courseModels.Course
	database.Database.Db.First(&reloaded, course.ID)
	assert.Equal(t, "ACTIVE", reloaded.Status)
}

func TestAdminArchiveCourse(t *testing.T) {
	_, token := createTestUser(t, "admin-archive@test.com", "ADMIN")
	course := createActiveCourse(t, "Retiring Course", "Sales")

	status, _ := doRequest(t, "POST", fmt.Sprintf("/admin/course/%d/archive", course.ID), token, nil)
	assert.Equal(t, fiber.StatusOK, status)

	var reloaded courseModels.Course
	database.Database.Db.First(&reloaded, course.ID)
	assert.Equal(t, "ARCHIVED", reloaded.Status)
}

func TestAdminQuizAndQuestionFlow(t *testing.T) {
	_, token := createTestUser(t, "admin-quiz@test.com", "ADMIN")
	course := createActiveCourse(t, "Quiz Authoring Course", "Sales")

	status, result := doRequest(t, "POST", fmt.Sprintf("/admin/course/%d/quiz", course.ID), token, map[string]interface{}{
		"title":         "Final Assessment",
		"is_final_quiz": true,
		"max_attempts":  2,
	})
	assert.Equal(t, fiber.StatusCreated, status)

	quizID := uint(dataField(result)["ID"].(float64))

	// A second final quiz on the same course is rejected
	status, _ = doRequest(t, "POST", fmt.Sprintf("/admin/course/%d/quiz", course.ID), token, map[string]interface{}{
		"title":         "Another Final",
		"is_final_quiz": true,
	})
	assert.Equal(t, fiber.StatusConflict, status)

	status, result = doRequest(t, "POST", fmt.Sprintf("/admin/quiz/%d/question", quizID), token, map[string]interface{}{
		"question":       "What is 2 + 2?",
		"options":        []string{"3", "4", "5"},
		"correct_answer": 1,
	})
	assert.Equal(t, fiber.StatusCreated, status)

	// Out-of-range answer index is rejected
	status, _ = doRequest(t, "POST", fmt.Sprintf("/admin/quiz/%d/question", quizID), token, map[string]interface{}{
		"question":       "Broken question",
		"options":        []string{"a", "b"},
		"correct_answer": 5,
	})
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)

	// Admin view includes correct answers
	status, result = doRequest(t, "GET", fmt.Sprintf("/admin/quiz/%d", quizID), token, nil)
	assert.Equal(t, fiber.StatusOK, status)

	questions := dataField(result)["questions"].([]interface{})
	assert.Len(t, questions, 1)
	assert.Equal(t, float64(1), questions[0].(map[string]interface{})["correct_answer"])
}

func TestAdminRevokeCertificate(t *testing.T) {
	_, token := createTestUser(t, "admin-revoke@test.com", "ADMIN")
	holder, _ := createTestUser(t, "cert-holder@test.com", "AGENT")
	course := createActiveCourse(t, "Revocable Course", "Sales")
	enrollment := enroll(t, holder.ID, course.ID)

	certificate := courseModels.Certificate{
		UserID:            holder.ID,
		CourseID:          course.ID,
		EnrollmentID:      enrollment.ID,
		CertificateNumber: fmt.Sprintf("ZBS-SA-%d-%04d", time.Now().Year(), enrollment.ID),
		FinalScore:        90,
		Grade:             "A",
		IssuedAt:          time.Now(),
		Status:            "ACTIVE",
	}
	assert.NoError(t, database.Database.Db.Create(&certificate).Error)

	status, _ := doRequest(t, "POST", fmt.Sprintf("/admin/certificate/%d/revoke", certificate.ID), token, nil)
	assert.Equal(t, fiber.StatusOK, status)

	status, _ = doRequest(t, "POST", fmt.Sprintf("/admin/certificate/%d/revoke", certificate.ID), token, nil)
	assert.Equal(t, fiber.StatusConflict, status)

	// A revoked certificate no longer verifies as valid
	status, result := doRequest(t, "GET", "/certificate/verify/"+certificate.CertificateNumber, "", nil)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, false, dataField(result)["is_valid"])
}

func TestAdminDashboardStats(t *testing.T) {
	_, token := createTestUser(t, "admin-dashboard@test.com", "ADMIN")

	status, result := doRequest(t, "GET", "/admin/dashboard/stats", token, nil)
	assert.Equal(t, fiber.StatusOK, status)

	stats := dataField(result)["stats"].(map[string]interface{})
	assert.Contains(t, stats, "total_courses")
	assert.Contains(t, stats, "total_enrollments")
	assert.Contains(t, stats, "completion_rate")
	assert.Contains(t, stats, "quiz_pass_rate")
}
