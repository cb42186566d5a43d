package supportRoutes

import (
	supportControllers "lms/controllers/support"
	"lms/middleware"
	supportValidators "lms/validators/support"

	"github.com/gofiber/fiber/v2"
)

func SetupSupportRoutes(app *fiber.App) {
	ticketGroup := app.Group("/support/ticket", middleware.JWTMiddleware)

	ticketGroup.Post("/create", supportValidators.CreateTicket(), supportControllers.CreateSupportTicket)
	ticketGroup.Get("/list", supportValidators.TicketList(), supportControllers.TicketList)
	ticketGroup.Patch("/reply", supportValidators.ReplyTicket(), supportControllers.UserReplyTicket)
	ticketGroup.Patch("/close", supportValidators.CloseTicket(), supportControllers.UserCloseTicket)

	adminGroup := app.Group("/admin/support", middleware.JWTMiddleware, middleware.RequireRole("ADMIN"))

	adminGroup.Get("/ticket/list", supportValidators.AdminTicketList(), supportControllers.AdminTicketList)
	adminGroup.Patch("/ticket/reply", supportValidators.ReplyTicket(), supportControllers.AdminReplyTicket)
	adminGroup.Patch("/ticket/close", supportValidators.CloseTicket(), supportControllers.AdminCloseTicket)
	adminGroup.Get("/stats", supportControllers.AdminSupportStats)
}
