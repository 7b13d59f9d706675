package models

import (
	"time"

	"gorm.io/gorm"
)

// Proposal represents a community governance proposal open for voting
type Proposal struct {
	gorm.Model
	AuthorID     uint      `json:"author_id" gorm:"index;not null"`
	Title        string    `json:"title"`
	Description  string    `json:"description" gorm:"type:text"`
	Status       string    `json:"status" gorm:"default:'OPEN'"` // OPEN, PASSED, REJECTED, QUORUM_NOT_MET
	VotesFor     int       `json:"votes_for" gorm:"default:0"`
	VotesAgainst int       `json:"votes_against" gorm:"default:0"`
	ClosesAt     time.Time `json:"closes_at"`
	IsDeleted    bool      `gorm:"default:false"`
}

// Vote records a single user's vote on a proposal.
// The unique index on (user_id, proposal_id) enforces one vote per user.
type Vote struct {
	gorm.Model
	UserID     uint `json:"user_id" gorm:"uniqueIndex:idx_user_proposal;not null"`
	ProposalID uint `json:"proposal_id" gorm:"uniqueIndex:idx_user_proposal;not null"`
	InFavor    bool `json:"in_favor"`
	IsDeleted  bool `gorm:"default:false"`
}
