package adminRoutes

import (
	adminControllers "nodo360/controllers/admin"
	"nodo360/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupAdminRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin", middleware.JWTMiddleware, middleware.RequireRole("ADMIN"))

	adminGroup.Get("/dashboard", adminControllers.GetDashboard)
	adminGroup.Get("/certificates/pending", adminControllers.GetPendingCertificateRequests)
}
