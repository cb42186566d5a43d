package controllers

import (
	"encoding/json"
	"fmt"
	"lms/config"
	"lms/database"
	"lms/middleware"
	"lms/models"
	courseModels "lms/models/course"
	"lms/utils"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// QuizSubmitRequest is the payload for a quiz submission. Answers maps
// question id to the selected option index.
type QuizSubmitRequest struct {
	Answers   map[string]int `json:"answers"`
	StartedAt time.Time      `json:"started_at"`
	TimeTaken int            `json:"time_taken"`
}

// QuestionView is a question as shown to the quiz taker,
// with the correct answer and explanation stripped out.
type QuestionView struct {
	ID           uint            `json:"id"`
	Question     string          `json:"question"`
	Options      json.RawMessage `json:"options"`
	Points       int             `json:"points"`
	OrderIndex   int             `json:"order_index"`
	QuestionType string          `json:"question_type"`
}

// GetQuizDetails returns a quiz with its questions plus the caller's attempt stats
func GetQuizDetails(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	quizID := c.Locals("quizID").(int)

	var quiz courseModels.Quiz
	if err := database.Database.Db.Where("id = ? AND is_deleted = ? AND status = ?", quizID, false, "ACTIVE").First(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
	}

	// Check enrollment
	var enrollment courseModels.Enrollment
	if err := database.Database.Db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, quiz.CourseID, false).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You are not enrolled in this course!", nil)
	}

	// Strip correct answers from questions before returning
	var questions []courseModels.QuizQuestion
	database.Database.Db.Where("quiz_id = ? AND is_deleted = ?", quiz.ID, false).Order("order_index asc").Find(&questions)

	views := make([]QuestionView, len(questions))
	for i, q := range questions {
		views[i] = QuestionView{
			ID:           q.ID,
			Question:     q.Question,
			Options:      json.RawMessage(q.Options),
			Points:       q.Points,
			OrderIndex:   q.OrderIndex,
			QuestionType: q.QuestionType,
		}
	}

	// Caller's attempt stats
	var attempts []courseModels.QuizAttempt
	database.Database.Db.Where("user_id = ? AND quiz_id = ? AND is_deleted = ?", userID, quiz.ID, false).Order("created_at desc").Find(&attempts)

	bestScore := 0
	for _, a := range attempts {
		if a.Score > bestScore {
			bestScore = a.Score
		}
	}

	var lastAttempt *courseModels.QuizAttempt
	if len(attempts) > 0 {
		lastAttempt = &attempts[0]
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz fetched successfully!", fiber.Map{
		"quiz":           quiz,
		"questions":      views,
		"attempts_count": len(attempts),
		"best_score":     bestScore,
		"can_attempt":    len(attempts) < quiz.MaxAttempts,
		"last_attempt":   lastAttempt,
	})
}

// SubmitQuiz grades a submission, enforces the attempt limit and, for a passed
// final quiz, issues the course certificate in the same transaction.
func SubmitQuiz(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	quizID := c.Locals("quizID").(int)

	reqData, ok := c.Locals("validatedQuizSubmit").(*QuizSubmitRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var quiz courseModels.Quiz
	if err := database.Database.Db.Where("id = ? AND is_deleted = ? AND status = ?", quizID, false, "ACTIVE").First(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
	}

	// Check enrollment
	var enrollment courseModels.Enrollment
	if err := database.Database.Db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, quiz.CourseID, false).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You are not enrolled in this course!", nil)
	}

	// Check attempt limit before grading anything
	var attemptCount int64
	database.Database.Db.Model(&courseModels.QuizAttempt{}).Where("user_id = ? AND quiz_id = ? AND is_deleted = ?", userID, quiz.ID, false).Count(&attemptCount)
	if attemptCount >= int64(quiz.MaxAttempts) {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Maximum attempts exceeded!", nil)
	}

	var questions []courseModels.QuizQuestion
	database.Database.Db.Where("quiz_id = ? AND is_deleted = ?", quiz.ID, false).Order("order_index asc").Find(&questions)

	score, correctAnswers, totalQuestions := GradeSubmission(questions, reqData.Answers)
	passed := score >= quiz.PassingScore

	answersJSON, _ := json.Marshal(reqData.Answers)

	attempt := courseModels.QuizAttempt{
		UserID:           userID,
		QuizID:           quiz.ID,
		EnrollmentID:     enrollment.ID,
		Answers:          answersJSON,
		Score:            score,
		TotalQuestions:   totalQuestions,
		CorrectAnswers:   correctAnswers,
		Passed:           passed,
		StartedAt:        reqData.StartedAt,
		CompletedAt:      time.Now(),
		TimeTakenMinutes: reqData.TimeTaken,
	}

	var certificate *courseModels.Certificate

	// Persist the attempt and, when it entails one, the certificate atomically.
	// The enrollment row is updated first so the transaction holds its row lock;
	// a racing submission blocks on that lock and its re-count then sees the
	// committed attempt, so two submissions cannot both slip under max_attempts.
	err := database.Database.Db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&courseModels.Enrollment{}).Where("id = ?", enrollment.ID).Update("last_accessed_at", time.Now()).Error; err != nil {
			return err
		}

		var txCount int64
		tx.Model(&courseModels.QuizAttempt{}).Where("user_id = ? AND quiz_id = ? AND is_deleted = ?", userID, quiz.ID, false).Count(&txCount)
		if txCount >= int64(quiz.MaxAttempts) {
			return gorm.ErrInvalidData
		}

		if err := tx.Create(&attempt).Error; err != nil {
			return err
		}

		if quiz.IsFinalQuiz && passed {
			cert, err := issueCertificate(tx, &enrollment, score)
			if err != nil {
				return err
			}
			certificate = cert
		}

		return nil
	})

	if err == gorm.ErrInvalidData {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Maximum attempts exceeded!", nil)
	}
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit quiz!", nil)
	}

	if certificate != nil {
		go utils.SendCertificateEmail(user.Email, user.Name, certificate.CertificateName, certificate.CertificateNumber, certificate.Grade)
		go utils.NotifyCertificateIssued(certificate.CertificateNumber, certificate.UserID, certificate.CourseID, certificate.Grade)
	}

	message := "Quiz completed. Try again to improve your score."
	if passed {
		message = "Quiz passed successfully!"
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, message, fiber.Map{
		"attempt":         attempt,
		"score":           score,
		"passed":          passed,
		"correct_answers": correctAnswers,
		"total_questions": totalQuestions,
		"certificate":     certificate,
	})
}

// GradeSubmission scores an answer set against the question keys.
// Every question weighs the same; a missing or stale answer counts as
// incorrect, never as an error. The percentage is rounded half-up.
func GradeSubmission(questions []courseModels.QuizQuestion, answers map[string]int) (score, correctAnswers, totalQuestions int) {
	totalQuestions = len(questions)

	for _, q := range questions {
		selected, found := answers[strconv.FormatUint(uint64(q.ID), 10)]
		if found && selected == q.CorrectAnswer {
			correctAnswers++
		}
	}

	if totalQuestions > 0 {
		score = int(math.Round(float64(correctAnswers) / float64(totalQuestions) * 100))
	}
	return score, correctAnswers, totalQuestions
}

// issueCertificate mints the course certificate for a passing final-quiz
// attempt. Issuance is idempotent per enrollment: a certificate that already
// exists is returned as-is instead of being duplicated.
func issueCertificate(tx *gorm.DB, enrollment *courseModels.Enrollment, finalScore int) (*courseModels.Certificate, error) {
	var existing courseModels.Certificate
	if err := tx.Where("enrollment_id = ? AND is_deleted = ?", enrollment.ID, false).First(&existing).Error; err == nil {
		return &existing, nil
	}

	var course courseModels.Course
	if err := tx.Where("id = ?", enrollment.CourseID).First(&course).Error; err != nil {
		return nil, err
	}

	issuedAt := time.Now()
	validUntil := issuedAt.AddDate(1, 0, 0)

	certificate := courseModels.Certificate{
		UserID:            enrollment.UserID,
		CourseID:          enrollment.CourseID,
		EnrollmentID:      enrollment.ID,
		CertificateNumber: GenerateCertificateNumber(course.Category, issuedAt.Year(), enrollment.ID),
		CertificateName:   course.Title + " Completion Certificate",
		FinalScore:        finalScore,
		Grade:             CalculateGrade(finalScore),
		IssuedAt:          issuedAt,
		ValidUntil:        &validUntil,
		Status:            "ACTIVE",
	}

	if err := tx.Create(&certificate).Error; err != nil {
		return nil, err
	}
	return &certificate, nil
}

// GenerateCertificateNumber builds the deterministic certificate number,
// e.g. "ZBS-MA-2026-0007" for category "Marketing" and enrollment 7.
func GenerateCertificateNumber(category string, year int, enrollmentID uint) string {
	prefix := "ZBS"
	if config.AppConfig != nil && config.AppConfig.CertificatePrefix != "" {
		prefix = config.AppConfig.CertificatePrefix
	}

	cat := []rune(category)
	if len(cat) > 2 {
		cat = cat[:2]
	}

	return fmt.Sprintf("%s-%s-%d-%04d", prefix, strings.ToUpper(string(cat)), year, enrollmentID)
}

// CalculateGrade maps a final score onto the letter-grade ladder
func CalculateGrade(score int) string {
	switch {
	case score >= 95:
		return "A+"
	case score >= 90:
		return "A"
	case score >= 85:
		return "A-"
	case score >= 80:
		return "B+"
	case score >= 75:
		return "B"
	case score >= 70:
		return "B-"
	default:
		return "C"
	}
}
