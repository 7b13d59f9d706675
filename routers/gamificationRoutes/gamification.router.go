package gamificationRoutes

import (
	gamificationControllers "nodo360/controllers/gamification"
	"nodo360/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupGamificationRoutes(app *fiber.App) {
	gamGroup := app.Group("/gamification")

	gamGroup.Get("/me", middleware.JWTMiddleware, gamificationControllers.GetMyProgress)
	gamGroup.Get("/leaderboard", gamificationControllers.GetLeaderboard)
}
