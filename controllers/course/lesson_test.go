package controllers_test

import (
	"fmt"
	"lms/database"
	courseModels "lms/models/course"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestGetLessonDetails(t *testing.T) {
	user, token := createTestUser(t, "lesson-details@test.com", "AGENT")
	course := createActiveCourse(t, "Lesson Course", "Sales")
	lesson := addLesson(t, course.ID, "Intro")
	enroll(t, user.ID, course.ID)

	status, result := doRequest(t, "GET", fmt.Sprintf("/lesson/%d", lesson.ID), token, nil)
	assert.Equal(t, fiber.StatusOK, status)

	data := dataField(result)
	assert.Equal(t, false, data["completed"])
	assert.Equal(t, float64(0), data["time_spent"])
}

func TestGetLessonDetailsNotEnrolled(t *testing.T) {
	_, token := createTestUser(t, "lesson-outsider@test.com", "AGENT")
	course := createActiveCourse(t, "Private Lesson Course", "Sales")
	lesson := addLesson(t, course.ID, "Intro")

	status, _ := doRequest(t, "GET", fmt.Sprintf("/lesson/%d", lesson.ID), token, nil)
	assert.Equal(t, fiber.StatusForbidden, status)
}

func TestMarkLessonCompleteUpdatesProgress(t *testing.T) {
	user, token := createTestUser(t, "lesson-progress@test.com", "AGENT")
	course := createActiveCourse(t, "Progress Course", "Sales")
	first := addLesson(t, course.ID, "Part One")
	second := addLesson(t, course.ID, "Part Two")
	enrollment := enroll(t, user.ID, course.ID)

	// Completing one of two lessons puts the enrollment at 50%
	status, _ := doRequest(t, "POST", fmt.Sprintf("/lesson/%d/complete", first.ID), token, map[string]interface{}{
		"time_spent_minutes": 15,
	})
	assert.Equal(t, fiber.StatusOK, status)

	var reloaded courseModels.Enrollment
	database.Database.Db.First(&reloaded, enrollment.ID)
	assert.Equal(t, 50, reloaded.ProgressPercentage)
	assert.Equal(t, "ACTIVE", reloaded.Status)
	assert.Nil(t, reloaded.CompletedAt)

	// Completing the second flips it to COMPLETED
	status, _ = doRequest(t, "POST", fmt.Sprintf("/lesson/%d/complete", second.ID), token, map[string]interface{}{
		"time_spent_minutes": 20,
	})
	assert.Equal(t, fiber.StatusOK, status)

	database.Database.Db.First(&reloaded, enrollment.ID)
	assert.Equal(t, 100, reloaded.ProgressPercentage)
	assert.Equal(t, "COMPLETED", reloaded.Status)
	assert.NotNil(t, reloaded.CompletedAt)

	var progress courseModels.LessonProgress
	err := database.Database.Db.Where("user_id = ? AND lesson_id = ?", user.ID, first.ID).First(&progress).Error
	assert.NoError(t, err)
	assert.True(t, progress.Completed)
	assert.NotNil(t, progress.CompletedAt)
	assert.Equal(t, 15, progress.TimeSpentMinutes)
}

func TestMarkLessonCompleteRecordsTimeSpent(t *testing.T) {
	user, token := createTestUser(t, "lesson-time-spent@test.com", "AGENT")
	course := createActiveCourse(t, "Timed Course", "Sales")
	lesson := addLesson(t, course.ID, "Timed Lesson")
	enroll(t, user.ID, course.ID)

	status, _ := doRequest(t, "POST", fmt.Sprintf("/lesson/%d/complete", lesson.ID), token, map[string]interface{}{
		"time_spent": 30,
	})
	assert.Equal(t, fiber.StatusOK, status)

	var progress courseModels.LessonProgress
	err := database.Database.Db.Where("user_id = ? AND lesson_id = ?", user.ID, lesson.ID).First(&progress).Error
	assert.NoError(t, err)
	assert.Equal(t, 30, progress.TimeSpentMinutes)
}

func TestMarkLessonCompleteIsIdempotent(t *testing.T) {
	user, token := createTestUser(t, "lesson-idempotent@test.com", "AGENT")
	course := createActiveCourse(t, "Idempotent Progress Course", "Sales")
	lesson := addLesson(t, course.ID, "Only Lesson")
	enrollment := enroll(t, user.ID, course.ID)

	for i := 0; i < 2; i++ {
		status, _ := doRequest(t, "POST", fmt.Sprintf("/lesson/%d/complete", lesson.ID), token, nil)
		assert.Equal(t, fiber.StatusOK, status)
	}

	var count int64
	database.Database.Db.Model(&courseModels.LessonProgress{}).
		Where("user_id = ? AND lesson_id = ?", user.ID, lesson.ID).Count(&count)
	assert.Equal(t, int64(1), count)

	var reloaded courseModels.Enrollment
	database.Database.Db.First(&reloaded, enrollment.ID)
	assert.Equal(t, 100, reloaded.ProgressPercentage)
	assert.Equal(t, "COMPLETED", reloaded.Status)
}

func TestMarkLessonCompleteNotEnrolled(t *testing.T) {
	_, token := createTestUser(t, "lesson-no-enroll@test.com", "AGENT")
	course := createActiveCourse(t, "Gatekept Course", "Sales")
	lesson := addLesson(t, course.ID, "Locked Lesson")

	status, _ := doRequest(t, "POST", fmt.Sprintf("/lesson/%d/complete", lesson.ID), token, nil)
	assert.Equal(t, fiber.StatusForbidden, status)
}

func TestMarkLessonCompleteUnknownLesson(t *testing.T) {
	_, token := createTestUser(t, "lesson-missing@test.com", "AGENT")

	status, _ := doRequest(t, "POST", "/lesson/99999/complete", token, nil)
	assert.Equal(t, fiber.StatusNotFound, status)
}
