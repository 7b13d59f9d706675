package mentorshipValidator

import (
	"nodo360/middleware"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

func BookSession() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			MentorID    uint      `json:"mentor_id"`
			Topic       string    `json:"topic"`
			ScheduledAt time.Time `json:"scheduled_at"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.MentorID == 0 {
			errors["mentor_id"] = "Mentor ID is required!"
		}
		if strings.TrimSpace(reqData.Topic) == "" {
			errors["topic"] = "Topic is required!"
		}
		if reqData.ScheduledAt.IsZero() {
			errors["scheduled_at"] = "Scheduled time is required!"
		} else if reqData.ScheduledAt.Before(time.Now()) {
			errors["scheduled_at"] = "Scheduled time must be in the future!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedBookSession", reqData)
		return c.Next()
	}
}

func SessionParam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("session_id"))
		if idStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Session ID is required!", nil)
		}

		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Session ID!", nil)
		}

		c.Locals("sessionID", id)
		return c.Next()
	}
}
