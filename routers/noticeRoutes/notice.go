package noticeRoutes

import (
	noticeControllers "lms/controllers/notice"
	"lms/middleware"
	noticeValidators "lms/validators/notice"

	"github.com/gofiber/fiber/v2"
)

func SetupNoticeRoutes(app *fiber.App) {
	noticeGroup := app.Group("/notice", middleware.JWTMiddleware)

	noticeGroup.Get("/list", noticeControllers.GetActiveNotices)

	adminGroup := app.Group("/admin/notice", middleware.JWTMiddleware, middleware.RequireRole("ADMIN"))

	adminGroup.Post("/create", noticeValidators.CreateNotice(), noticeControllers.AdminCreateNotice)
	adminGroup.Get("/list", noticeControllers.AdminListNotices)
	adminGroup.Put("/:noticeId", noticeValidators.UpdateNotice(), noticeControllers.AdminUpdateNotice)
	adminGroup.Delete("/:noticeId", noticeValidators.NoticeID(), noticeControllers.AdminDeleteNotice)
}
