package controllers

import (
	"encoding/json"
	"lms/database"
	"lms/middleware"
	courseModels "lms/models/course"

	"github.com/gofiber/fiber/v2"
)

// QuizRequest is the payload for quiz create/update
type QuizRequest struct {
	Title            string `json:"title"`
	Description      string `json:"description"`
	LessonID         *uint  `json:"lesson_id"`
	TimeLimitMinutes *int   `json:"time_limit_minutes"`
	PassingScore     *int   `json:"passing_score"`
	MaxAttempts      *int   `json:"max_attempts"`
	IsFinalQuiz      *bool  `json:"is_final_quiz"`
	Status           string `json:"status"`
}

// QuestionRequest is the payload for question create/update
type QuestionRequest struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer *int     `json:"correct_answer"`
	Explanation   string   `json:"explanation"`
	Points        *int     `json:"points"`
	OrderIndex    *int     `json:"order_index"`
	QuestionType  string   `json:"question_type"`
}

// AdminCreateQuiz adds a quiz to a course
func AdminCreateQuiz(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	reqData, ok := c.Locals("validatedQuiz").(*QuizRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	quiz := courseModels.Quiz{
		CourseID:     uint(courseID),
		Title:        reqData.Title,
		Description:  reqData.Description,
		PassingScore: course.PassingScore,
		Status:       "ACTIVE",
	}
	if reqData.LessonID != nil {
		var lesson courseModels.Lesson
		if err := database.Database.Db.Where("id = ? AND course_id = ? AND is_deleted = ?", *reqData.LessonID, courseID, false).First(&lesson).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found in this course!", nil)
		}
		quiz.LessonID = reqData.LessonID
	}
	if reqData.TimeLimitMinutes != nil {
		quiz.TimeLimitMinutes = *reqData.TimeLimitMinutes
	}
	if reqData.PassingScore != nil {
		quiz.PassingScore = *reqData.PassingScore
	}
	if reqData.MaxAttempts != nil {
		quiz.MaxAttempts = *reqData.MaxAttempts
	}
	if reqData.IsFinalQuiz != nil {
		quiz.IsFinalQuiz = *reqData.IsFinalQuiz
	}

	// A course carries at most one final quiz
	if quiz.IsFinalQuiz {
		var existing int64
		database.Database.Db.Model(&courseModels.Quiz{}).Where("course_id = ? AND is_final_quiz = ? AND is_deleted = ?", courseID, true, false).Count(&existing)
		if existing > 0 {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Course already has a final quiz!", nil)
		}
	}

	if err := database.Database.Db.Create(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create quiz!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Quiz created successfully!", quiz)
}

// AdminUpdateQuiz updates a quiz
func AdminUpdateQuiz(c *fiber.Ctx) error {
	quizID := c.Locals("quizID").(int)

	var quiz courseModels.Quiz
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", quizID, false).First(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
	}

	reqData, ok := c.Locals("validatedQuiz").(*QuizRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.Title != "" {
		quiz.Title = reqData.Title
	}
	if reqData.Description != "" {
		quiz.Description = reqData.Description
	}
	if reqData.TimeLimitMinutes != nil {
		quiz.TimeLimitMinutes = *reqData.TimeLimitMinutes
	}
	if reqData.PassingScore != nil {
		quiz.PassingScore = *reqData.PassingScore
	}
	if reqData.MaxAttempts != nil {
		quiz.MaxAttempts = *reqData.MaxAttempts
	}
	if reqData.IsFinalQuiz != nil {
		if *reqData.IsFinalQuiz && !quiz.IsFinalQuiz {
			var existing int64
			database.Database.Db.Model(&courseModels.Quiz{}).Where("course_id = ? AND is_final_quiz = ? AND is_deleted = ? AND id != ?", quiz.CourseID, true, false, quiz.ID).Count(&existing)
			if existing > 0 {
				return middleware.JsonResponse(c, fiber.StatusConflict, false, "Course already has a final quiz!", nil)
			}
		}
		quiz.IsFinalQuiz = *reqData.IsFinalQuiz
	}
	if reqData.Status != "" {
		quiz.Status = reqData.Status
	}

	if err := database.Database.Db.Save(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update quiz!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz updated successfully!", quiz)
}

// AdminDeleteQuiz soft deletes a quiz
func AdminDeleteQuiz(c *fiber.Ctx) error {
	quizID := c.Locals("quizID").(int)

	var quiz courseModels.Quiz
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", quizID, false).First(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
	}

	quiz.IsDeleted = true
	if err := database.Database.Db.Save(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete quiz!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz deleted successfully!", nil)
}

// AdminGetQuiz returns a quiz with full questions, answers included
func AdminGetQuiz(c *fiber.Ctx) error {
	quizID := c.Locals("quizID").(int)

	var quiz courseModels.Quiz
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", quizID, false).First(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
	}

	var questions []courseModels.QuizQuestion
	database.Database.Db.Where("quiz_id = ? AND is_deleted = ?", quizID, false).Order("order_index asc").Find(&questions)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz fetched successfully!", fiber.Map{
		"quiz":      quiz,
		"questions": questions,
	})
}

// AdminAddQuestion appends a question to a quiz
func AdminAddQuestion(c *fiber.Ctx) error {
	quizID := c.Locals("quizID").(int)

	var quiz courseModels.Quiz
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", quizID, false).First(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
	}

	reqData, ok := c.Locals("validatedQuestion").(*QuestionRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	optionsJSON, _ := json.Marshal(reqData.Options)

	question := courseModels.QuizQuestion{
		QuizID:        quiz.ID,
		Question:      reqData.Question,
		Options:       optionsJSON,
		CorrectAnswer: *reqData.CorrectAnswer,
		Explanation:   reqData.Explanation,
	}
	if reqData.Points != nil {
		question.Points = *reqData.Points
	} else {
		question.Points = 1
	}
	if reqData.QuestionType != "" {
		question.QuestionType = reqData.QuestionType
	}
	if reqData.OrderIndex != nil {
		question.OrderIndex = *reqData.OrderIndex
	} else {
		var count int64
		database.Database.Db.Model(&courseModels.QuizQuestion{}).Where("quiz_id = ? AND is_deleted = ?", quizID, false).Count(&count)
		question.OrderIndex = int(count)
	}

	if err := database.Database.Db.Create(&question).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to add question!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Question added successfully!", question)
}

// AdminUpdateQuestion updates a question
func AdminUpdateQuestion(c *fiber.Ctx) error {
	questionID := c.Locals("questionID").(int)

	var question courseModels.QuizQuestion
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", questionID, false).First(&question).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Question not found!", nil)
	}

	reqData, ok := c.Locals("validatedQuestion").(*QuestionRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.Question != "" {
		question.Question = reqData.Question
	}
	if len(reqData.Options) > 0 {
		optionsJSON, _ := json.Marshal(reqData.Options)
		question.Options = optionsJSON
	}
	if reqData.CorrectAnswer != nil {
		question.CorrectAnswer = *reqData.CorrectAnswer
	}
	if reqData.Explanation != "" {
		question.Explanation = reqData.Explanation
	}
	if reqData.Points != nil {
		question.Points = *reqData.Points
	}
	if reqData.OrderIndex != nil {
		question.OrderIndex = *reqData.OrderIndex
	}
	if reqData.QuestionType != "" {
		question.QuestionType = reqData.QuestionType
	}

	if err := database.Database.Db.Save(&question).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update question!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Question updated successfully!", question)
}

// AdminDeleteQuestion soft deletes a question
func AdminDeleteQuestion(c *fiber.Ctx) error {
	questionID := c.Locals("questionID").(int)

	var question courseModels.QuizQuestion
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", questionID, false).First(&question).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Question not found!", nil)
	}

	question.IsDeleted = true
	if err := database.Database.Db.Save(&question).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete question!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Question deleted successfully!", nil)
}
