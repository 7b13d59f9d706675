package gamificationController

import (
	"nodo360/database"
	"nodo360/gamification"
	"nodo360/middleware"
	"nodo360/models"

	"github.com/gofiber/fiber/v2"
)

// GetMyProgress returns the caller's XP total, level and badges
func GetMyProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	var badges []models.UserBadge
	database.Database.Db.Where("user_id = ? AND is_deleted = ?", userID, false).Order("awarded_at asc").Find(&badges)

	var recentEvents []models.XPEvent
	database.Database.Db.Where("user_id = ? AND is_deleted = ?", userID, false).Order("created_at desc").Limit(20).Find(&recentEvents)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully!", fiber.Map{
		"total_xp":         user.TotalXP,
		"level":            gamification.LevelForXP(user.TotalXP),
		"xp_to_next_level": gamification.XPToNextLevel(user.TotalXP),
		"badges":           badges,
		"recent_events":    recentEvents,
	})
}

// GetLeaderboard returns the top users by XP
func GetLeaderboard(c *fiber.Ctx) error {
	type LeaderboardEntry struct {
		UserID  uint   `json:"user_id"`
		Name    string `json:"name"`
		TotalXP int    `json:"total_xp"`
		Level   int    `json:"level"`
	}

	var users []models.User
	if err := database.Database.Db.Where("is_deleted = ?", false).Order("total_xp desc").Limit(25).Find(&users).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch leaderboard!", nil)
	}

	result := make([]LeaderboardEntry, len(users))
	for i, u := range users {
		result[i] = LeaderboardEntry{
			UserID:  u.ID,
			Name:    u.Name,
			TotalXP: u.TotalXP,
			Level:   gamification.LevelForXP(u.TotalXP),
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Leaderboard fetched successfully!", fiber.Map{
		"leaderboard": result,
	})
}
