package courseRoutes

import (
	controllers "lms/controllers/course"
	"lms/middleware"
	validators "lms/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up the learner-facing course routes
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/course", middleware.JWTMiddleware)

	courseGroup.Get("/list", validators.CourseList(), controllers.GetAllCourses)
	courseGroup.Get("/:courseId", validators.CourseID(), controllers.GetCourseDetails)
	courseGroup.Post("/:courseId/enroll", validators.CourseID(), controllers.EnrollInCourse)

	lessonGroup := app.Group("/lesson", middleware.JWTMiddleware)

	lessonGroup.Get("/:lessonId", validators.LessonID(), controllers.GetLessonDetails)
	lessonGroup.Post("/:lessonId/complete", validators.CompleteLesson(), controllers.MarkLessonComplete)

	quizGroup := app.Group("/quiz", middleware.JWTMiddleware)

	quizGroup.Get("/:quizId", validators.QuizID(), controllers.GetQuizDetails)
	quizGroup.Post("/:quizId/submit", validators.SubmitQuiz(), controllers.SubmitQuiz)

	// Public endpoint so third parties can check a certificate
	app.Get("/certificate/verify/:number", controllers.VerifyCertificate)
}
