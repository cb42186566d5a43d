package controllers_test

import (
	"fmt"
	"lms/database"
	courseModels "lms/models/course"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestEnrollInCourse(t *testing.T) {
	user, token := createTestUser(t, "enroll@test.com", "AGENT")
	course := createActiveCourse(t, "Enrollable Course", "Sales")

	status, result := doRequest(t, "POST", fmt.Sprintf("/course/%d/enroll", course.ID), token, nil)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "Enrolled in course successfully!", result["message"])

	var enrollment courseModels.Enrollment
	err := database.Database.Db.Where("user_id = ? AND course_id = ?", user.ID, course.ID).First(&enrollment).Error
	assert.NoError(t, err)
	assert.Equal(t, "ACTIVE", enrollment.Status)
	assert.Equal(t, 0, enrollment.ProgressPercentage)
	assert.False(t, enrollment.EnrolledAt.IsZero())
}

func TestEnrollTwiceConflicts(t *testing.T) {
	user, token := createTestUser(t, "enroll-twice@test.com", "AGENT")
	course := createActiveCourse(t, "Single Enrollment Course", "Sales")
	enroll(t, user.ID, course.ID)

	status, _ := doRequest(t, "POST", fmt.Sprintf("/course/%d/enroll", course.ID), token, nil)
	assert.Equal(t, fiber.StatusConflict, status)
}

func TestEnrollInDraftCourseRejected(t *testing.T) {
	_, token := createTestUser(t, "enroll-draft@test.com", "AGENT")

	course := courseModels.Course{Title: "Unpublished", Category: "Sales", Status: "DRAFT"}
	assert.NoError(t, database.Database.Db.Create(&course).Error)

	status, _ := doRequest(t, "POST", fmt.Sprintf("/course/%d/enroll", course.ID), token, nil)
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestGetUserEnrollments(t *testing.T) {
	user, token := createTestUser(t, "enrollments-list@test.com", "AGENT")
	first := createActiveCourse(t, "First Enrolled Course", "Sales")
	second := createActiveCourse(t, "Second Enrolled Course", "Finance")
	enroll(t, user.ID, first.ID)
	enroll(t, user.ID, second.ID)

	status, result := doRequest(t, "GET", "/user/enrollments", token, nil)
	assert.Equal(t, fiber.StatusOK, status)

	data := dataField(result)
	assert.Equal(t, float64(2), data["total"])

	enrollments := data["enrollments"].([]interface{})
	names := make(map[string]bool)
	for _, e := range enrollments {
		names[e.(map[string]interface{})["course_name"].(string)] = true
	}
	assert.True(t, names["First Enrolled Course"])
	assert.True(t, names["Second Enrolled Course"])
}
