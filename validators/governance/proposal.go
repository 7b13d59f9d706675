package governanceValidator

import (
	"nodo360/middleware"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

func CreateProposal() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			OpenDays    int    `json:"open_days"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Title = strings.TrimSpace(reqData.Title)
		reqData.Description = strings.TrimSpace(reqData.Description)

		errors := make(map[string]string)

		if reqData.Title == "" {
			errors["title"] = "Title is required!"
		} else if len(reqData.Title) < 10 {
			errors["title"] = "Title must be at least 10 characters!"
		}
		if reqData.Description == "" {
			errors["description"] = "Description is required!"
		} else if len(reqData.Description) < 30 {
			errors["description"] = "Description must be at least 30 characters!"
		}
		if reqData.OpenDays < 1 || reqData.OpenDays > 30 {
			errors["open_days"] = "Voting period must be between 1 and 30 days!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCreateProposal", reqData)
		return c.Next()
	}
}

func ProposalParam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("proposal_id"))
		if idStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Proposal ID is required!", nil)
		}

		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Proposal ID!", nil)
		}

		c.Locals("proposalID", id)
		return c.Next()
	}
}

func CastVote() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			InFavor *bool `json:"in_favor"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.InFavor == nil {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"in_favor": "Vote direction is required!",
			})
		}

		c.Locals("validatedCastVote", reqData)
		return c.Next()
	}
}
