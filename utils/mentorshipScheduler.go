package utils

import (
	"log"
	"nodo360/database"
	"nodo360/models"
	"time"

	"github.com/robfig/cron/v3"
)

// InitializeMentorshipScheduler sets up the session reminder scheduler
func InitializeMentorshipScheduler() {
	log.Println("[MENTORSHIP-SCHEDULER] Initializing mentorship scheduler...")

	c := cron.New()

	// Run daily at 9 AM to remind participants of next-day sessions
	c.AddFunc("0 9 * * *", func() {
		log.Println("[MENTORSHIP-SCHEDULER] Running session reminder check...")
		SendSessionReminders()
	})

	c.Start()
	log.Println("[MENTORSHIP-SCHEDULER] Mentorship scheduler started - runs daily at 9 AM")
}

// SendSessionReminders emails both participants of confirmed sessions
// happening within the next day
func SendSessionReminders() {
	db := database.Database.Db
	now := time.Now()
	oneDayFromNow := now.AddDate(0, 0, 1)

	var upcoming []models.MentorSession
	if err := db.
		Where("status = ? AND reminder_sent = false AND is_deleted = ?", "CONFIRMED", false).
		Where("scheduled_at BETWEEN ? AND ?", now, oneDayFromNow).
		Find(&upcoming).Error; err != nil {
		log.Printf("[MENTORSHIP-SCHEDULER] Error fetching upcoming sessions: %v", err)
		return
	}

	log.Printf("[MENTORSHIP-SCHEDULER] Found %d sessions needing reminders", len(upcoming))

	for _, session := range upcoming {
		var student, mentor models.User
		if err := db.Where("id = ?", session.StudentID).First(&student).Error; err != nil {
			log.Printf("[MENTORSHIP-SCHEDULER] Error fetching student %d: %v", session.StudentID, err)
			continue
		}
		if err := db.Where("id = ?", session.MentorID).First(&mentor).Error; err != nil {
			log.Printf("[MENTORSHIP-SCHEDULER] Error fetching mentor %d: %v", session.MentorID, err)
			continue
		}

		SendSessionReminderEmail(student.Email, student.Name, session.Topic, session.ScheduledAt)
		SendSessionReminderEmail(mentor.Email, mentor.Name, session.Topic, session.ScheduledAt)

		// Mark reminder as sent
		session.ReminderSent = true
		if err := db.Save(&session).Error; err != nil {
			log.Printf("[MENTORSHIP-SCHEDULER] Error marking reminder sent for session %d: %v", session.ID, err)
		}
	}
}
