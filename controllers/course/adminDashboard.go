package controllers

import (
	"lms/database"
	"lms/middleware"
	"lms/models"
	courseModels "lms/models/course"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/now"
)

// AdminGetCourseEnrollments lists enrollments of one course with user info
func AdminGetCourseEnrollments(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	type EnrollmentWithUser struct {
		courseModels.Enrollment
		UserName  string `json:"user_name"`
		UserEmail string `json:"user_email"`
	}

	var enrollments []courseModels.Enrollment
	db := database.Database.Db.Where("course_id = ? AND is_deleted = ?", courseID, false)
	if status := c.Query("status"); status != "" {
		db = db.Where("status = ?", status)
	}
	if err := db.Order("created_at desc").Find(&enrollments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	result := make([]EnrollmentWithUser, len(enrollments))
	for i, e := range enrollments {
		var enrolledUser models.User
		database.Database.Db.Where("id = ?", e.UserID).First(&enrolledUser)
		result[i] = EnrollmentWithUser{
			Enrollment: e,
			UserName:   enrolledUser.Name,
			UserEmail:  enrolledUser.Email,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", fiber.Map{
		"course":      course.Title,
		"enrollments": result,
		"total":       len(result),
	})
}

// AdminGetIssuedCertificates lists issued certificates, newest first
func AdminGetIssuedCertificates(c *fiber.Ctx) error {
	type CertificateRow struct {
		courseModels.Certificate
		UserName   string `json:"user_name"`
		CourseName string `json:"course_name"`
	}

	var certificates []courseModels.Certificate
	db := database.Database.Db.Where("is_deleted = ?", false)
	if status := c.Query("status"); status != "" {
		db = db.Where("status = ?", status)
	}
	if err := db.Order("issued_at desc").Find(&certificates).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch certificates!", nil)
	}

	result := make([]CertificateRow, len(certificates))
	for i, cert := range certificates {
		var holder models.User
		var course courseModels.Course
		database.Database.Db.Where("id = ?", cert.UserID).First(&holder)
		database.Database.Db.Where("id = ?", cert.CourseID).First(&course)
		result[i] = CertificateRow{
			Certificate: cert,
			UserName:    holder.Name,
			CourseName:  course.Title,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificates fetched successfully!", fiber.Map{
		"certificates": result,
		"total":        len(result),
	})
}

// AdminRevokeCertificate marks a certificate as revoked
func AdminRevokeCertificate(c *fiber.Ctx) error {
	certificateID := c.Locals("certificateID").(int)

	var certificate courseModels.Certificate
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", certificateID, false).First(&certificate).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Certificate not found!", nil)
	}

	if certificate.Status == "REVOKED" {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Certificate already revoked!", nil)
	}

	certificate.Status = "REVOKED"
	if err := database.Database.Db.Save(&certificate).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to revoke certificate!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificate revoked successfully!", certificate)
}

// AdminDashboardStats returns aggregate platform numbers
func AdminDashboardStats(c *fiber.Ctx) error {
	var totalCourses, activeCourses, totalUsers, totalEnrollments, completedEnrollments int64
	var enrollmentsThisMonth, certificatesIssued, openTickets int64

	database.Database.Db.Model(&courseModels.Course{}).Where("is_deleted = ?", false).Count(&totalCourses)
	database.Database.Db.Model(&courseModels.Course{}).Where("is_deleted = ? AND status = ?", false, "ACTIVE").Count(&activeCourses)
	database.Database.Db.Model(&models.User{}).Where("is_deleted = ?", false).Count(&totalUsers)
	database.Database.Db.Model(&courseModels.Enrollment{}).Where("is_deleted = ?", false).Count(&totalEnrollments)
	database.Database.Db.Model(&courseModels.Enrollment{}).Where("is_deleted = ? AND status = ?", false, "COMPLETED").Count(&completedEnrollments)
	database.Database.Db.Model(&courseModels.Certificate{}).Where("is_deleted = ? AND status = ?", false, "ACTIVE").Count(&certificatesIssued)
	database.Database.Db.Model(&models.SupportTicket{}).Where("is_deleted = ? AND status IN ?", false, []string{"OPEN", "IN_PROGRESS"}).Count(&openTickets)

	monthStart := now.BeginningOfMonth()
	database.Database.Db.Model(&courseModels.Enrollment{}).Where("is_deleted = ? AND created_at >= ?", false, monthStart).Count(&enrollmentsThisMonth)

	completionRate := float64(0)
	if totalEnrollments > 0 {
		completionRate = float64(completedEnrollments) / float64(totalEnrollments) * 100
	}

	var totalAttempts, passedAttempts int64
	database.Database.Db.Model(&courseModels.QuizAttempt{}).Where("is_deleted = ?", false).Count(&totalAttempts)
	database.Database.Db.Model(&courseModels.QuizAttempt{}).Where("is_deleted = ? AND passed = ?", false, true).Count(&passedAttempts)

	passRate := float64(0)
	if totalAttempts > 0 {
		passRate = float64(passedAttempts) / float64(totalAttempts) * 100
	}

	// Get recent enrollments
	type RecentEnrollment struct {
		UserName   string    `json:"user_name"`
		CourseName string    `json:"course_name"`
		EnrolledAt time.Time `json:"enrolled_at"`
	}

	var recentEnrollments []courseModels.Enrollment
	database.Database.Db.Where("is_deleted = ?", false).Order("created_at desc").Limit(5).Find(&recentEnrollments)

	recent := make([]RecentEnrollment, len(recentEnrollments))
	for i, e := range recentEnrollments {
		var enrolledUser models.User
		var course courseModels.Course
		database.Database.Db.Where("id = ?", e.UserID).First(&enrolledUser)
		database.Database.Db.Where("id = ?", e.CourseID).First(&course)
		recent[i] = RecentEnrollment{
			UserName:   enrolledUser.Name,
			CourseName: course.Title,
			EnrolledAt: e.CreatedAt,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard stats fetched successfully!", fiber.Map{
		"stats": fiber.Map{
			"total_courses":          totalCourses,
			"active_courses":         activeCourses,
			"total_users":            totalUsers,
			"total_enrollments":      totalEnrollments,
			"completed_enrollments":  completedEnrollments,
			"enrollments_this_month": enrollmentsThisMonth,
			"completion_rate":        completionRate,
			"quiz_pass_rate":         passRate,
			"certificates_issued":    certificatesIssued,
			"open_tickets":           openTickets,
		},
		"recent_enrollments": recent,
	})
}
