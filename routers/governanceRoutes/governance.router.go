package governanceRoutes

import (
	governanceControllers "nodo360/controllers/governance"
	"nodo360/middleware"
	governanceValidators "nodo360/validators/governance"

	"github.com/gofiber/fiber/v2"
)

func SetupGovernanceRoutes(app *fiber.App) {
	govGroup := app.Group("/governance")

	govGroup.Get("/proposals", governanceControllers.GetProposals)
	govGroup.Get("/proposals/:proposal_id", middleware.OptionalJWTMiddleware, governanceValidators.ProposalParam(), governanceControllers.GetProposal)
	govGroup.Post("/proposals", middleware.JWTMiddleware, governanceValidators.CreateProposal(), governanceControllers.CreateProposal)
	govGroup.Post("/proposals/:proposal_id/vote", middleware.JWTMiddleware, governanceValidators.ProposalParam(), governanceValidators.CastVote(), governanceControllers.CastVote)
}
