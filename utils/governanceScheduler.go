package utils

import (
	"log"
	"nodo360/database"
	"nodo360/governance"
	"nodo360/models"
	"time"

	"github.com/robfig/cron/v3"
)

// InitializeGovernanceScheduler sets up the proposal closing scheduler
func InitializeGovernanceScheduler() {
	log.Println("[GOVERNANCE-SCHEDULER] Initializing governance scheduler...")

	c := cron.New()

	// Run hourly to close proposals whose voting deadline passed
	c.AddFunc("0 * * * *", func() {
		log.Println("[GOVERNANCE-SCHEDULER] Running proposal close check...")
		CloseExpiredProposals()
	})

	c.Start()
	log.Println("[GOVERNANCE-SCHEDULER] Governance scheduler started - runs hourly")
}

// CloseExpiredProposals finalizes every open proposal past its deadline
func CloseExpiredProposals() {
	db := database.Database.Db

	var expired []models.Proposal
	if err := db.
		Where("status = ? AND closes_at < ? AND is_deleted = ?", governance.StatusOpen, time.Now(), false).
		Find(&expired).Error; err != nil {
		log.Printf("[GOVERNANCE-SCHEDULER] Error fetching expired proposals: %v", err)
		return
	}

	if len(expired) == 0 {
		return
	}

	log.Printf("[GOVERNANCE-SCHEDULER] Closing %d expired proposals", len(expired))

	for _, proposal := range expired {
		proposal.Status = governance.Outcome(proposal.VotesFor, proposal.VotesAgainst)
		if err := db.Save(&proposal).Error; err != nil {
			log.Printf("[GOVERNANCE-SCHEDULER] Error closing proposal %d: %v", proposal.ID, err)
			continue
		}
		log.Printf("[GOVERNANCE-SCHEDULER] Proposal %d closed: %s (%d for / %d against)",
			proposal.ID, proposal.Status, proposal.VotesFor, proposal.VotesAgainst)
	}
}
