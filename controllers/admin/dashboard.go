package adminController

import (
	"nodo360/database"
	"nodo360/governance"
	"nodo360/middleware"
	"nodo360/models"
	courseModels "nodo360/models/course"
	"nodo360/utils"

	"github.com/gofiber/fiber/v2"
)

// GetDashboard returns headline platform counts for the admin back office
func GetDashboard(c *fiber.Ctx) error {
	db := database.Database.Db

	var totalUsers int64
	var totalCourses int64
	var publishedCourses int64
	var totalEnrollments int64
	var completedEnrollments int64
	var certificatesIssued int64
	var pendingCertificates int64
	var openProposals int64
	var upcomingSessions int64

	db.Model(&models.User{}).Where("is_deleted = ?", false).Count(&totalUsers)
	db.Model(&courseModels.Course{}).Where("is_deleted = ?", false).Count(&totalCourses)
	db.Model(&courseModels.Course{}).Where("is_deleted = ? AND is_published = ?", false, true).Count(&publishedCourses)
	db.Model(&courseModels.Enrollment{}).Where("is_deleted = ?", false).Count(&totalEnrollments)
	db.Model(&courseModels.Enrollment{}).Where("is_deleted = ? AND status = ?", false, "COMPLETED").Count(&completedEnrollments)
	db.Model(&courseModels.Certificate{}).Where("is_deleted = ?", false).Count(&certificatesIssued)
	db.Model(&courseModels.CertificateRequest{}).Where("is_deleted = ? AND status = ?", false, "PENDING").Count(&pendingCertificates)
	db.Model(&models.Proposal{}).Where("is_deleted = ? AND status = ?", false, governance.StatusOpen).Count(&openProposals)
	db.Model(&models.MentorSession{}).Where("is_deleted = ? AND status = ?", false, "CONFIRMED").Count(&upcomingSessions)

	// Best effort; the dashboard renders without the ticker
	btcPrice, err := utils.GetBTCPrice()
	if err != nil {
		btcPrice = 0
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard fetched successfully!", fiber.Map{
		"users": fiber.Map{
			"total": totalUsers,
		},
		"courses": fiber.Map{
			"total":     totalCourses,
			"published": publishedCourses,
		},
		"enrollments": fiber.Map{
			"total":     totalEnrollments,
			"completed": completedEnrollments,
		},
		"certificates": fiber.Map{
			"issued":  certificatesIssued,
			"pending": pendingCertificates,
		},
		"governance": fiber.Map{
			"open_proposals": openProposals,
		},
		"mentorship": fiber.Map{
			"upcoming_sessions": upcomingSessions,
		},
		"btc_price_usd": btcPrice,
	})
}

// GetPendingCertificateRequests lists certificate requests awaiting review
func GetPendingCertificateRequests(c *fiber.Ctx) error {
	type RequestWithDetails struct {
		courseModels.CertificateRequest
		UserName   string `json:"user_name"`
		UserEmail  string `json:"user_email"`
		CourseName string `json:"course_name"`
	}

	var requests []courseModels.CertificateRequest
	if err := database.Database.Db.Where("status = ? AND is_deleted = ?", "PENDING", false).Order("requested_at asc").Find(&requests).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch requests!", nil)
	}

	result := make([]RequestWithDetails, len(requests))
	for i, req := range requests {
		var user models.User
		var course courseModels.Course
		database.Database.Db.Where("id = ?", req.UserID).First(&user)
		database.Database.Db.Where("id = ?", req.CourseID).First(&course)
		result[i] = RequestWithDetails{
			CertificateRequest: req,
			UserName:           user.Name,
			UserEmail:          user.Email,
			CourseName:         course.Title,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Requests fetched successfully!", fiber.Map{
		"requests": result,
		"total":    len(result),
	})
}
