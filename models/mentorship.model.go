package models

import (
	"time"

	"gorm.io/gorm"
)

// MentorSession represents a scheduled one-on-one mentorship session
type MentorSession struct {
	gorm.Model
	MentorID     uint      `json:"mentor_id" gorm:"index;not null"`
	StudentID    uint      `json:"student_id" gorm:"index;not null"`
	Topic        string    `json:"topic"`
	Notes        string    `json:"notes"`
	ScheduledAt  time.Time `json:"scheduled_at"`
	Status       string    `json:"status" gorm:"default:'PENDING'"` // PENDING, CONFIRMED, CANCELLED, COMPLETED
	ReminderSent bool      `json:"reminder_sent" gorm:"default:false"`
	IsDeleted    bool      `gorm:"default:false"`
}
