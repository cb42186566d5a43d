package controllers

import (
	"lms/database"
	"lms/middleware"
	"lms/models"
	courseModels "lms/models/course"
	"math"
	"time"

	"github.com/gofiber/fiber/v2"
)

// GetLessonDetails returns a lesson along with the caller's progress on it
func GetLessonDetails(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	lessonID := c.Locals("lessonID").(int)

	var lesson courseModels.Lesson
	if err := database.Database.Db.Where("id = ? AND is_deleted = ? AND status = ?", lessonID, false, "ACTIVE").First(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	// Check enrollment
	var enrollment courseModels.Enrollment
	if err := database.Database.Db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, lesson.CourseID, false).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You are not enrolled in this course!", nil)
	}

	completed := false
	timeSpent := 0
	var progress courseModels.LessonProgress
	if err := database.Database.Db.Where("user_id = ? AND lesson_id = ? AND is_deleted = ?", userID, lesson.ID, false).First(&progress).Error; err == nil {
		completed = progress.Completed
		timeSpent = progress.TimeSpentMinutes
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson fetched successfully!", fiber.Map{
		"lesson":     lesson,
		"completed":  completed,
		"time_spent": timeSpent,
	})
}

// MarkLessonComplete upserts the caller's progress record for a lesson as
// completed and recomputes the owning enrollment's aggregate progress
func MarkLessonComplete(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	lessonID := c.Locals("lessonID").(int)

	timeSpent := 0
	if v, ok := c.Locals("validatedTimeSpent").(int); ok {
		timeSpent = v
	}

	var lesson courseModels.Lesson
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", lessonID, false).First(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	var enrollment courseModels.Enrollment
	if err := database.Database.Db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, lesson.CourseID, false).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You are not enrolled in this course!", nil)
	}

	now := time.Now()

	var progress courseModels.LessonProgress
	if err := database.Database.Db.Where("user_id = ? AND lesson_id = ? AND is_deleted = ?", userID, lesson.ID, false).First(&progress).Error; err != nil {
		progress = courseModels.LessonProgress{
			UserID:           userID,
			LessonID:         lesson.ID,
			EnrollmentID:     enrollment.ID,
			Completed:        true,
			CompletedAt:      &now,
			TimeSpentMinutes: timeSpent,
		}
		if err := database.Database.Db.Create(&progress).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save lesson progress!", nil)
		}
	} else {
		progress.Completed = true
		progress.CompletedAt = &now
		progress.TimeSpentMinutes = timeSpent
		if err := database.Database.Db.Save(&progress).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save lesson progress!", nil)
		}
	}

	updateCourseProgress(&enrollment)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson marked as complete!", fiber.Map{
		"progress":   progress,
		"enrollment": enrollment,
	})
}

// updateCourseProgress recomputes an enrollment's progress percentage from its
// completed lesson count. The enrollment flips to COMPLETED exactly when the
// percentage reaches 100 and back to ACTIVE when it drops below again.
func updateCourseProgress(enrollment *courseModels.Enrollment) {
	var totalLessons int64
	var completedLessons int64

	database.Database.Db.Model(&courseModels.Lesson{}).Where("course_id = ? AND is_deleted = ?", enrollment.CourseID, false).Count(&totalLessons)
	database.Database.Db.Model(&courseModels.LessonProgress{}).Where("enrollment_id = ? AND completed = ? AND is_deleted = ?", enrollment.ID, true, false).Count(&completedLessons)

	progressPercentage := 0
	if totalLessons > 0 {
		progressPercentage = int(math.Round(float64(completedLessons) / float64(totalLessons) * 100))
	}

	enrollment.ProgressPercentage = progressPercentage
	if progressPercentage == 100 {
		now := time.Now()
		enrollment.Status = "COMPLETED"
		enrollment.CompletedAt = &now
	} else {
		enrollment.Status = "ACTIVE"
		enrollment.CompletedAt = nil
	}

	database.Database.Db.Save(enrollment)
}
