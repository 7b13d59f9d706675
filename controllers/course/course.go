package controllers

import (
	"nodo360/access"
	"nodo360/database"
	"nodo360/middleware"
	courseModels "nodo360/models/course"

	"github.com/gofiber/fiber/v2"
)

// optionalUserID returns the authenticated user's ID, or nil for an
// anonymous visitor on a preview route.
func optionalUserID(c *fiber.Ctx) *uint {
	if id, ok := c.Locals("userId").(uint); ok {
		return &id
	}
	return nil
}

func newResolver() *access.Resolver {
	return access.NewResolver(access.NewGormStore(database.Database.Db))
}

// GetAllCourses lists published courses. Open to anonymous visitors.
func GetAllCourses(c *fiber.Ctx) error {
	// Retrieve validated pagination request
	reqData, _ := c.Locals("validatedCourseList").(*struct {
		Page  *int `json:"page"`
		Limit *int `json:"limit"`
	})

	// Set default pagination
	page := 1
	limit := 10
	if reqData != nil && reqData.Page != nil {
		page = *reqData.Page
	}
	if reqData != nil && reqData.Limit != nil {
		limit = *reqData.Limit
	}
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&courseModels.Course{}).Where("is_deleted = ? AND is_published = ?", false, true)

	// Get total count
	var total int64
	db.Count(&total)

	// Fetch paginated data
	var courses []courseModels.Course
	if err := db.Offset(offset).Limit(limit).Order("created_at desc").Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	response := map[string]interface{}{
		"courses": courses,
		"pagination": map[string]interface{}{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", response)
}

// ModuleWithAccess decorates a module with the caller's access verdict
type ModuleWithAccess struct {
	courseModels.Module
	Access access.Verdict `json:"access"`
}

// GetCourseDetails gets course details with modules and per-module lock
// state. Anonymous visitors see module 1 open as a preview.
func GetCourseDetails(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ? AND is_published = ?", courseID, false, true).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var modules []courseModels.Module
	database.Database.Db.Where("course_id = ? AND is_deleted = ?", courseID, false).Order("position asc").Find(&modules)

	userID := optionalUserID(c)
	resolver := newResolver()

	result := make([]ModuleWithAccess, len(modules))
	for i, mod := range modules {
		result[i] = ModuleWithAccess{
			Module: mod,
			Access: resolver.ResolveModule(userID, mod.ID, course.IsFree),
		}
	}

	// Check if user is enrolled
	isEnrolled := false
	var enrollment courseModels.Enrollment
	if userID != nil {
		isEnrolled = database.Database.Db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", *userID, courseID, false).First(&enrollment).Error == nil
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course details fetched successfully!", fiber.Map{
		"course":      course,
		"modules":     result,
		"is_enrolled": isEnrolled,
		"enrollment":  enrollment,
	})
}
