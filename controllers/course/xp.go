package controllers

import (
	"log"
	"time"

	"nodo360/database"
	"nodo360/gamification"
	"nodo360/models"
)

// awardXP appends an XP ledger entry, refreshes the cached total and awards
// any newly crossed badge thresholds. Failures here never fail the request
// that triggered the award.
func awardXP(userID uint, kind string, amount int, refID uint) {
	db := database.Database.Db

	event := models.XPEvent{
		UserID: userID,
		Kind:   kind,
		Amount: amount,
		RefID:  refID,
	}
	if err := db.Create(&event).Error; err != nil {
		log.Printf("[XP] Failed to record %s for user %d: %v", kind, userID, err)
		return
	}

	var user models.User
	if err := db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return
	}

	user.TotalXP += amount
	db.Save(&user)

	// Award badges the new total crosses
	for _, badge := range gamification.BadgesForXP(user.TotalXP) {
		var existing models.UserBadge
		if err := db.Where("user_id = ? AND badge_code = ?", userID, badge.Code).First(&existing).Error; err == nil {
			continue
		}
		award := models.UserBadge{
			UserID:    userID,
			BadgeCode: badge.Code,
			AwardedAt: time.Now(),
		}
		if err := db.Create(&award).Error; err != nil {
			log.Printf("[XP] Failed to award badge %s to user %d: %v", badge.Code, userID, err)
		}
	}
}
