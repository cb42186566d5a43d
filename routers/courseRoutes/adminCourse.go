package courseRoutes

import (
	controllers "lms/controllers/course"
	"lms/middleware"
	validators "lms/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminCourseRoutes sets up all admin course management routes
func SetupAdminCourseRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin/course", middleware.JWTMiddleware, middleware.RequireRole("ADMIN"))

	// Course CRUD
	adminGroup.Post("/create", validators.CreateCourseAdmin(), controllers.AdminCreateCourse)
	adminGroup.Get("/list", validators.AdminCourseList(), controllers.AdminGetAllCourses)
	adminGroup.Put("/:courseId", validators.UpdateCourseAdmin(), controllers.AdminUpdateCourse)
	adminGroup.Delete("/:courseId", validators.CourseID(), controllers.AdminDeleteCourse)
	adminGroup.Post("/:courseId/publish", validators.CourseID(), controllers.AdminPublishCourse)
	adminGroup.Post("/:courseId/archive", validators.CourseID(), controllers.AdminArchiveCourse)

	// Module Management
	adminGroup.Post("/:courseId/module", validators.CreateModule(), controllers.AdminCreateModule)
	adminGroup.Get("/:courseId/modules", validators.CourseID(), controllers.AdminListModules)

	moduleGroup := app.Group("/admin/module", middleware.JWTMiddleware, middleware.RequireRole("ADMIN"))
	moduleGroup.Put("/:moduleId", validators.UpdateModule(), controllers.AdminUpdateModule)
	moduleGroup.Delete("/:moduleId", validators.ModuleID(), controllers.AdminDeleteModule)

	// Lesson Management
	adminGroup.Post("/:courseId/lesson", validators.CreateLesson(), controllers.AdminCreateLesson)
	adminGroup.Get("/:courseId/lessons", validators.CourseID(), controllers.AdminListLessons)

	lessonGroup := app.Group("/admin/lesson", middleware.JWTMiddleware, middleware.RequireRole("ADMIN"))
	lessonGroup.Put("/:lessonId", validators.UpdateLesson(), controllers.AdminUpdateLesson)
	lessonGroup.Delete("/:lessonId", validators.LessonID(), controllers.AdminDeleteLesson)

	// Quiz Management
	adminGroup.Post("/:courseId/quiz", validators.CreateQuiz(), controllers.AdminCreateQuiz)

	quizGroup := app.Group("/admin/quiz", middleware.JWTMiddleware, middleware.RequireRole("ADMIN"))
	quizGroup.Get("/:quizId", validators.QuizID(), controllers.AdminGetQuiz)
	quizGroup.Put("/:quizId", validators.UpdateQuiz(), controllers.AdminUpdateQuiz)
	quizGroup.Delete("/:quizId", validators.QuizID(), controllers.AdminDeleteQuiz)
	quizGroup.Post("/:quizId/question", validators.AddQuestion(), controllers.AdminAddQuestion)

	questionGroup := app.Group("/admin/question", middleware.JWTMiddleware, middleware.RequireRole("ADMIN"))
	questionGroup.Put("/:questionId", validators.UpdateQuestion(), controllers.AdminUpdateQuestion)
	questionGroup.Delete("/:questionId", validators.QuestionID(), controllers.AdminDeleteQuestion)

	// Enrollment & Certificate Management
	adminGroup.Get("/:courseId/enrollments", validators.CourseID(), controllers.AdminGetCourseEnrollments)

	certGroup := app.Group("/admin/certificate", middleware.JWTMiddleware, middleware.RequireRole("ADMIN"))
	certGroup.Get("/issued", controllers.AdminGetIssuedCertificates)
	certGroup.Post("/:certificateId/revoke", validators.CertificateID(), controllers.AdminRevokeCertificate)

	// Dashboard
	app.Get("/admin/dashboard/stats", middleware.JWTMiddleware, middleware.RequireRole("ADMIN"), controllers.AdminDashboardStats)
}
