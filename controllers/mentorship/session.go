package mentorshipController

import (
	"nodo360/database"
	"nodo360/middleware"
	"nodo360/models"
	"time"

	"github.com/gofiber/fiber/v2"
)

// BookSession books a mentorship session with a mentor
func BookSession(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedBookSession").(*struct {
		MentorID    uint      `json:"mentor_id"`
		Topic       string    `json:"topic"`
		ScheduledAt time.Time `json:"scheduled_at"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// Check mentor exists and holds the MENTOR role
	var mentor models.User
	if err := database.Database.Db.Where("id = ? AND role = ? AND is_deleted = ?", reqData.MentorID, "MENTOR", false).First(&mentor).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Mentor not found!", nil)
	}

	if reqData.MentorID == userID {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "You cannot book a session with yourself!", nil)
	}

	// Reject double-booking the same mentor slot
	var clash models.MentorSession
	if err := database.Database.Db.Where("mentor_id = ? AND scheduled_at = ? AND status IN ? AND is_deleted = ?",
		reqData.MentorID, reqData.ScheduledAt, []string{"PENDING", "CONFIRMED"}, false).First(&clash).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Mentor is already booked at that time!", nil)
	}

	session := models.MentorSession{
		MentorID:    reqData.MentorID,
		StudentID:   userID,
		Topic:       reqData.Topic,
		ScheduledAt: reqData.ScheduledAt,
		Status:      "PENDING",
	}

	if err := database.Database.Db.Create(&session).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to book session!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Session booked successfully!", session)
}

// GetMySessions lists the caller's sessions, as student or mentor
func GetMySessions(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var sessions []models.MentorSession
	if err := database.Database.Db.Where("(student_id = ? OR mentor_id = ?) AND is_deleted = ?", userID, userID, false).
		Order("scheduled_at asc").Find(&sessions).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch sessions!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Sessions fetched successfully!", fiber.Map{
		"sessions": sessions,
		"total":    len(sessions),
	})
}

// ConfirmSession lets the mentor confirm a pending session
func ConfirmSession(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	sessionID := c.Locals("sessionID").(int)

	var session models.MentorSession
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", sessionID, false).First(&session).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Session not found!", nil)
	}

	if session.MentorID != userID {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Only the mentor can confirm this session!", nil)
	}

	if session.Status != "PENDING" {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Session is not pending!", nil)
	}

	session.Status = "CONFIRMED"
	if err := database.Database.Db.Save(&session).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to confirm session!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Session confirmed!", session)
}

// CancelSession lets either participant cancel a session
func CancelSession(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	sessionID := c.Locals("sessionID").(int)

	var session models.MentorSession
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", sessionID, false).First(&session).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Session not found!", nil)
	}

	if session.MentorID != userID && session.StudentID != userID {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You are not part of this session!", nil)
	}

	if session.Status == "CANCELLED" || session.Status == "COMPLETED" {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Session already closed!", nil)
	}

	session.Status = "CANCELLED"
	if err := database.Database.Db.Save(&session).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to cancel session!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Session cancelled!", session)
}

// GetMentors lists users holding the MENTOR role
func GetMentors(c *fiber.Ctx) error {
	var mentors []models.User
	if err := database.Database.Db.Where("role = ? AND is_deleted = ?", "MENTOR", false).Find(&mentors).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch mentors!", nil)
	}

	for i := range mentors {
		mentors[i].Password = ""
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Mentors fetched successfully!", fiber.Map{
		"mentors": mentors,
		"total":   len(mentors),
	})
}
