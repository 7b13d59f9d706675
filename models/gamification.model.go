package models

import (
	"time"

	"gorm.io/gorm"
)

// XPEvent is an append-only ledger entry of experience points earned by a user
type XPEvent struct {
	gorm.Model
	UserID    uint   `json:"user_id" gorm:"index;not null"`
	Kind      string `json:"kind"` // LESSON_COMPLETED, QUIZ_PASSED, COURSE_COMPLETED
	Amount    int    `json:"amount"`
	RefID     uint   `json:"ref_id"` // lesson/module/course the event refers to
	IsDeleted bool   `gorm:"default:false"`
}

// UserBadge records a badge awarded to a user
type UserBadge struct {
	gorm.Model
	UserID    uint      `json:"user_id" gorm:"uniqueIndex:idx_user_badge;not null"`
	BadgeCode string    `json:"badge_code" gorm:"uniqueIndex:idx_user_badge;not null"`
	AwardedAt time.Time `json:"awarded_at"`
	IsDeleted bool      `gorm:"default:false"`
}
