package libraryRoutes

import (
	libraryControllers "lms/controllers/library"
	"lms/middleware"
	libraryValidators "lms/validators/library"

	"github.com/gofiber/fiber/v2"
)

func SetupLibraryRoutes(app *fiber.App) {
	libraryGroup := app.Group("/library", middleware.JWTMiddleware)

	libraryGroup.Get("/list", libraryControllers.GetResources)
	libraryGroup.Post("/:resourceId/view", libraryValidators.ResourceID(), libraryControllers.TrackResourceView)
	libraryGroup.Post("/:resourceId/download", libraryValidators.ResourceID(), libraryControllers.TrackResourceDownload)

	adminGroup := app.Group("/admin/library", middleware.JWTMiddleware, middleware.RequireRole("ADMIN"))

	adminGroup.Post("/create", libraryValidators.CreateResource(), libraryControllers.AdminCreateResource)
	adminGroup.Put("/:resourceId", libraryValidators.UpdateResource(), libraryControllers.AdminUpdateResource)
	adminGroup.Delete("/:resourceId", libraryValidators.ResourceID(), libraryControllers.AdminDeleteResource)
}
