package courseValidator

import (
	courseControllers "lms/controllers/course"
	"lms/middleware"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

var courseLevels = map[string]bool{"BEGINNER": true, "INTERMEDIATE": true, "ADVANCED": true}
var courseTargetRoles = map[string]bool{"AGENT": true, "FIELD_OFFICER": true, "BOTH": true}
var courseStatuses = map[string]bool{"DRAFT": true, "ACTIVE": true, "ARCHIVED": true}
var lessonTypes = map[string]bool{"VIDEO": true, "TEXT": true, "DOCUMENT": true, "INTERACTIVE": true}

func paramID(c *fiber.Ctx, name string) (int, bool) {
	id, err := strconv.Atoi(strings.TrimSpace(c.Params(name)))
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}

// ============ Course Validators ============

// CreateCourseAdmin validates admin course creation request
func CreateCourseAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title        string `json:"title"`
			Description  string `json:"description"`
			Instructor   string `json:"instructor"`
			Duration     string `json:"duration"`
			Level        string `json:"level"`
			Category     string `json:"category"`
			TargetRole   string `json:"target_role"`
			PassingScore *int   `json:"passing_score"`
			ThumbnailURL string `json:"thumbnail_url"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Title = strings.TrimSpace(reqData.Title)
		reqData.Description = strings.TrimSpace(reqData.Description)
		reqData.Category = strings.TrimSpace(reqData.Category)

		if reqData.Title == "" {
			errors["title"] = "Title is required!"
		} else if len(reqData.Title) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}

		if reqData.Description == "" {
			errors["description"] = "Description is required!"
		}

		if reqData.Category == "" {
			errors["category"] = "Category is required!"
		}

		if reqData.Level != "" {
			reqData.Level = strings.ToUpper(reqData.Level)
			if !courseLevels[reqData.Level] {
				errors["level"] = "Level must be BEGINNER, INTERMEDIATE or ADVANCED!"
			}
		}

		if reqData.TargetRole != "" {
			reqData.TargetRole = strings.ToUpper(reqData.TargetRole)
			if !courseTargetRoles[reqData.TargetRole] {
				errors["target_role"] = "Target role must be AGENT, FIELD_OFFICER or BOTH!"
			}
		}

		if reqData.PassingScore != nil && (*reqData.PassingScore < 1 || *reqData.PassingScore > 100) {
			errors["passing_score"] = "Passing score must be between 1 and 100!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

// UpdateCourseAdmin validates admin course update request; all fields optional
func UpdateCourseAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c, "courseId")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course ID!", nil)
		}
		c.Locals("courseID", id)

		reqData := new(struct {
			Title        string `json:"title"`
			Description  string `json:"description"`
			Instructor   string `json:"instructor"`
			Duration     string `json:"duration"`
			Level        string `json:"level"`
			Category     string `json:"category"`
			TargetRole   string `json:"target_role"`
			PassingScore *int   `json:"passing_score"`
			ThumbnailURL string `json:"thumbnail_url"`
			Status       string `json:"status"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Title = strings.TrimSpace(reqData.Title)
		if reqData.Title != "" && len(reqData.Title) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}

		if reqData.Level != "" {
			reqData.Level = strings.ToUpper(reqData.Level)
			if !courseLevels[reqData.Level] {
				errors["level"] = "Level must be BEGINNER, INTERMEDIATE or ADVANCED!"
			}
		}

		if reqData.TargetRole != "" {
			reqData.TargetRole = strings.ToUpper(reqData.TargetRole)
			if !courseTargetRoles[reqData.TargetRole] {
				errors["target_role"] = "Target role must be AGENT, FIELD_OFFICER or BOTH!"
			}
		}

		if reqData.Status != "" {
			reqData.Status = strings.ToUpper(reqData.Status)
			if !courseStatuses[reqData.Status] {
				errors["status"] = "Status must be DRAFT, ACTIVE or ARCHIVED!"
			}
		}

		if reqData.PassingScore != nil && (*reqData.PassingScore < 1 || *reqData.PassingScore > 100) {
			errors["passing_score"] = "Passing score must be between 1 and 100!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourseUpdate", reqData)
		return c.Next()
	}
}

func AdminCourseList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Page  *int `json:"page"`
			Limit *int `json:"limit"`
		})

		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}

		errors := make(map[string]string)

		if reqData.Page != nil && *reqData.Page < 1 {
			errors["page"] = "Page must be greater than 0!"
		}
		if reqData.Limit != nil && (*reqData.Limit < 1 || *reqData.Limit > 100) {
			errors["limit"] = "Limit must be between 1 and 100!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedAdminList", reqData)
		return c.Next()
	}
}

// ============ Module Validators ============

func CreateModule() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c, "courseId")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course ID!", nil)
		}
		c.Locals("courseID", id)

		reqData := new(struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			OrderIndex  *int   `json:"order_index"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Title = strings.TrimSpace(reqData.Title)
		if reqData.Title == "" {
			errors["title"] = "Title is required!"
		}
		if reqData.OrderIndex != nil && *reqData.OrderIndex < 0 {
			errors["order_index"] = "Order index cannot be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedModule", reqData)
		return c.Next()
	}
}

func UpdateModule() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c, "moduleId")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid module ID!", nil)
		}
		c.Locals("moduleID", id)

		reqData := new(struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			OrderIndex  *int   `json:"order_index"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.OrderIndex != nil && *reqData.OrderIndex < 0 {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"order_index": "Order index cannot be negative!",
			})
		}

		reqData.Title = strings.TrimSpace(reqData.Title)

		c.Locals("validatedModule", reqData)
		return c.Next()
	}
}

func ModuleID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c, "moduleId")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid module ID!", nil)
		}

		c.Locals("moduleID", id)
		return c.Next()
	}
}

// ============ Lesson Validators ============

func lessonErrors(reqData *courseControllers.LessonRequest, requireTitle bool) map[string]string {
	errors := make(map[string]string)

	reqData.Title = strings.TrimSpace(reqData.Title)
	if requireTitle && reqData.Title == "" {
		errors["title"] = "Title is required!"
	}

	if reqData.LessonType != "" {
		reqData.LessonType = strings.ToUpper(reqData.LessonType)
		if !lessonTypes[reqData.LessonType] {
			errors["lesson_type"] = "Lesson type must be VIDEO, TEXT, DOCUMENT or INTERACTIVE!"
		}
	}

	if reqData.DurationMinutes < 0 {
		errors["duration_minutes"] = "Duration cannot be negative!"
	}
	if reqData.OrderIndex != nil && *reqData.OrderIndex < 0 {
		errors["order_index"] = "Order index cannot be negative!"
	}

	if reqData.Status != "" {
		reqData.Status = strings.ToUpper(reqData.Status)
		if reqData.Status != "DRAFT" && reqData.Status != "ACTIVE" {
			errors["status"] = "Status must be DRAFT or ACTIVE!"
		}
	}

	return errors
}

func CreateLesson() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c, "courseId")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course ID!", nil)
		}
		c.Locals("courseID", id)

		reqData := new(courseControllers.LessonRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := lessonErrors(reqData, true); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedLesson", reqData)
		return c.Next()
	}
}

func UpdateLesson() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c, "lessonId")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid lesson ID!", nil)
		}
		c.Locals("lessonID", id)

		reqData := new(courseControllers.LessonRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := lessonErrors(reqData, false); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedLesson", reqData)
		return c.Next()
	}
}

// ============ Quiz Validators ============

func quizErrors(reqData *courseControllers.QuizRequest, requireTitle bool) map[string]string {
	errors := make(map[string]string)

	reqData.Title = strings.TrimSpace(reqData.Title)
	if requireTitle && reqData.Title == "" {
		errors["title"] = "Title is required!"
	}

	if reqData.TimeLimitMinutes != nil && *reqData.TimeLimitMinutes < 1 {
		errors["time_limit_minutes"] = "Time limit must be at least 1 minute!"
	}
	if reqData.PassingScore != nil && (*reqData.PassingScore < 1 || *reqData.PassingScore > 100) {
		errors["passing_score"] = "Passing score must be between 1 and 100!"
	}
	if reqData.MaxAttempts != nil && *reqData.MaxAttempts < 1 {
		errors["max_attempts"] = "Max attempts must be at least 1!"
	}

	if reqData.Status != "" {
		reqData.Status = strings.ToUpper(reqData.Status)
		if reqData.Status != "ACTIVE" && reqData.Status != "INACTIVE" {
			errors["status"] = "Status must be ACTIVE or INACTIVE!"
		}
	}

	return errors
}

func CreateQuiz() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c, "courseId")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course ID!", nil)
		}
		c.Locals("courseID", id)

		reqData := new(courseControllers.QuizRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := quizErrors(reqData, true); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedQuiz", reqData)
		return c.Next()
	}
}

func UpdateQuiz() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c, "quizId")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid quiz ID!", nil)
		}
		c.Locals("quizID", id)

		reqData := new(courseControllers.QuizRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := quizErrors(reqData, false); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedQuiz", reqData)
		return c.Next()
	}
}

// ============ Question Validators ============

func AddQuestion() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c, "quizId")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid quiz ID!", nil)
		}
		c.Locals("quizID", id)

		reqData := new(courseControllers.QuestionRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Question = strings.TrimSpace(reqData.Question)
		if reqData.Question == "" {
			errors["question"] = "Question text is required!"
		}

		if len(reqData.Options) < 2 {
			errors["options"] = "At least 2 options are required!"
		}

		if reqData.CorrectAnswer == nil {
			errors["correct_answer"] = "Correct answer index is required!"
		} else if *reqData.CorrectAnswer < 0 || *reqData.CorrectAnswer >= len(reqData.Options) {
			errors["correct_answer"] = "Correct answer index is out of range!"
		}

		if reqData.Points != nil && *reqData.Points < 1 {
			errors["points"] = "Points must be at least 1!"
		}
		if reqData.OrderIndex != nil && *reqData.OrderIndex < 0 {
			errors["order_index"] = "Order index cannot be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedQuestion", reqData)
		return c.Next()
	}
}

func UpdateQuestion() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c, "questionId")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid question ID!", nil)
		}
		c.Locals("questionID", id)

		reqData := new(courseControllers.QuestionRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if len(reqData.Options) == 1 {
			errors["options"] = "At least 2 options are required!"
		}
		if reqData.CorrectAnswer != nil && len(reqData.Options) > 0 &&
			(*reqData.CorrectAnswer < 0 || *reqData.CorrectAnswer >= len(reqData.Options)) {
			errors["correct_answer"] = "Correct answer index is out of range!"
		}
		if reqData.Points != nil && *reqData.Points < 1 {
			errors["points"] = "Points must be at least 1!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedQuestion", reqData)
		return c.Next()
	}
}

func QuestionID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c, "questionId")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid question ID!", nil)
		}

		c.Locals("questionID", id)
		return c.Next()
	}
}

// ============ Certificate Validators ============

func CertificateID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c, "certificateId")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid certificate ID!", nil)
		}

		c.Locals("certificateID", id)
		return c.Next()
	}
}
