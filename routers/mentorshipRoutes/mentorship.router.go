package mentorshipRoutes

import (
	mentorshipControllers "nodo360/controllers/mentorship"
	"nodo360/middleware"
	mentorshipValidators "nodo360/validators/mentorship"

	"github.com/gofiber/fiber/v2"
)

func SetupMentorshipRoutes(app *fiber.App) {
	mentorGroup := app.Group("/mentorship", middleware.JWTMiddleware)

	mentorGroup.Get("/mentors", mentorshipControllers.GetMentors)
	mentorGroup.Post("/sessions", mentorshipValidators.BookSession(), mentorshipControllers.BookSession)
	mentorGroup.Get("/sessions", mentorshipControllers.GetMySessions)
	mentorGroup.Post("/sessions/:session_id/confirm", mentorshipValidators.SessionParam(), mentorshipControllers.ConfirmSession)
	mentorGroup.Post("/sessions/:session_id/cancel", mentorshipValidators.SessionParam(), mentorshipControllers.CancelSession)
}
