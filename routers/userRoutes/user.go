package userRoutes

import (
	authControllers "lms/controllers/auth"
	controllers "lms/controllers/course"
	"lms/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App) {
	userGroup := app.Group("/user", middleware.JWTMiddleware)

	userGroup.Get("/profile", authControllers.GetProfile)
	userGroup.Get("/enrollments", controllers.GetUserEnrollments)
	userGroup.Get("/certificates", controllers.GetUserCertificates)
}
