package courseValidator

import (
	"nodo360/middleware"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// idParam validates a positive integer path parameter and stores it in Locals
func idParam(param, local string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params(param))
		if idStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "ID is required!", nil)
		}

		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid ID!", nil)
		}

		c.Locals(local, id)
		return c.Next()
	}
}

func CourseParam() fiber.Handler {
	return idParam("course_id", "courseID")
}

func ModuleParam() fiber.Handler {
	return idParam("module_id", "moduleID")
}

func LessonParam() fiber.Handler {
	return idParam("lesson_id", "lessonID")
}

func RequestParam() fiber.Handler {
	return idParam("request_id", "requestID")
}

func CourseList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Page  *int `json:"page"`
			Limit *int `json:"limit"`
		})

		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}

		errors := make(map[string]string)

		if reqData.Page != nil && *reqData.Page < 1 {
			errors["page"] = "Page must be greater than 0!"
		}
		if reqData.Limit != nil && (*reqData.Limit < 1 || *reqData.Limit > 100) {
			errors["limit"] = "Limit must be between 1 and 100!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourseList", reqData)
		return c.Next()
	}
}

func QuizSubmit() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Answers map[uint]uint `json:"answers"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if len(reqData.Answers) == 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Please answer at least one question!", nil)
		}

		c.Locals("validatedQuizSubmit", reqData)
		return c.Next()
	}
}
