package governanceController

import (
	"nodo360/database"
	"nodo360/governance"
	"nodo360/middleware"
	"nodo360/models"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

// CreateProposal opens a community proposal for voting
func CreateProposal(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedCreateProposal").(*struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		OpenDays    int    `json:"open_days"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	proposal := models.Proposal{
		AuthorID:    userID,
		Title:       reqData.Title,
		Description: reqData.Description,
		Status:      governance.StatusOpen,
		ClosesAt:    time.Now().AddDate(0, 0, reqData.OpenDays),
	}

	if err := database.Database.Db.Create(&proposal).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create proposal!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Proposal created successfully!", proposal)
}

// GetProposals lists proposals, optionally filtered by status
func GetProposals(c *fiber.Ctx) error {
	status := strings.ToUpper(strings.TrimSpace(c.Query("status")))

	db := database.Database.Db.Model(&models.Proposal{}).Where("is_deleted = ?", false)
	if status != "" {
		db = db.Where("status = ?", status)
	}

	var proposals []models.Proposal
	if err := db.Order("created_at desc").Find(&proposals).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch proposals!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Proposals fetched successfully!", fiber.Map{
		"proposals": proposals,
		"total":     len(proposals),
	})
}

// GetProposal returns a proposal with the caller's vote, if any. Anonymous
// visitors can read proposals; my_vote is null for them.
func GetProposal(c *fiber.Ctx) error {
	proposalID := c.Locals("proposalID").(int)

	var proposal models.Proposal
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", proposalID, false).First(&proposal).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Proposal not found!", nil)
	}

	var myVote *models.Vote
	if userID, ok := c.Locals("userId").(uint); ok {
		var vote models.Vote
		if err := database.Database.Db.Where("user_id = ? AND proposal_id = ? AND is_deleted = ?", userID, proposalID, false).First(&vote).Error; err == nil {
			myVote = &vote
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Proposal fetched successfully!", fiber.Map{
		"proposal": proposal,
		"my_vote":  myVote,
		"quorum":   governance.MinQuorum,
	})
}

// CastVote records the caller's vote on an open proposal. The unique index
// on (user_id, proposal_id) backs the one-vote-per-user rule.
func CastVote(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	proposalID := c.Locals("proposalID").(int)

	reqData, ok := c.Locals("validatedCastVote").(*struct {
		InFavor *bool `json:"in_favor"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var proposal models.Proposal
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", proposalID, false).First(&proposal).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Proposal not found!", nil)
	}

	if proposal.Status != governance.StatusOpen || time.Now().After(proposal.ClosesAt) {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Voting is closed for this proposal!", nil)
	}

	// Check if user already voted
	var existingVote models.Vote
	if err := database.Database.Db.Where("user_id = ? AND proposal_id = ? AND is_deleted = ?", userID, proposalID, false).First(&existingVote).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "You have already voted on this proposal!", nil)
	}

	vote := models.Vote{
		UserID:     userID,
		ProposalID: uint(proposalID),
		InFavor:    *reqData.InFavor,
	}

	tx := database.Database.Db.Begin()
	if err := tx.Create(&vote).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Failed to record vote!", nil)
	}
	if *reqData.InFavor {
		proposal.VotesFor++
	} else {
		proposal.VotesAgainst++
	}
	if err := tx.Save(&proposal).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record vote!", nil)
	}
	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Vote recorded successfully!", fiber.Map{
		"vote":     vote,
		"proposal": proposal,
	})
}
