package controllers

import (
	"time"

	"nodo360/access"
	"nodo360/database"
	"nodo360/gamification"
	"nodo360/middleware"
	courseModels "nodo360/models/course"

	"github.com/gofiber/fiber/v2"
)

// GetModuleLessons lists a module's lessons with the caller's unlocked
// prefix. Anonymous visitors can browse preview modules.
func GetModuleLessons(c *fiber.Ctx) error {
	moduleID := c.Locals("moduleID").(int)

	var module courseModels.Module
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", moduleID, false).First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ? AND is_published = ?", module.CourseID, false, true).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var lessons []courseModels.Lesson
	database.Database.Db.Where("module_id = ? AND is_deleted = ?", moduleID, false).Order("position asc").Find(&lessons)

	userID := optionalUserID(c)
	accessible := newResolver().AccessibleLessons(userID, module.ID, course.IsFree)
	unlocked := make(map[uint]bool, len(accessible))
	for _, id := range accessible {
		unlocked[id] = true
	}

	type LessonSummary struct {
		ID       uint   `json:"id"`
		Title    string `json:"title"`
		Position int    `json:"position"`
		Unlocked bool   `json:"unlocked"`
	}

	result := make([]LessonSummary, len(lessons))
	for i, l := range lessons {
		result[i] = LessonSummary{ID: l.ID, Title: l.Title, Position: l.Position, Unlocked: unlocked[l.ID]}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lessons fetched successfully!", fiber.Map{
		"module":  module,
		"lessons": result,
	})
}

// GetLesson returns a lesson's content if the caller's access verdict
// allows it; a denial returns 403 with the verdict for UI messaging.
func GetLesson(c *fiber.Ctx) error {
	lessonID := c.Locals("lessonID").(int)

	var lesson courseModels.Lesson
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", lessonID, false).First(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ? AND is_published = ?", lesson.CourseID, false, true).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	userID := optionalUserID(c)
	verdict := newResolver().ResolveLesson(userID, lesson.ID, course.IsFree)
	if !verdict.CanAccess {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Lesson is locked!", fiber.Map{
			"access": verdict,
		})
	}

	isCompleted := false
	if userID != nil {
		var record courseModels.ProgressRecord
		isCompleted = database.Database.Db.Where("user_id = ? AND lesson_id = ? AND is_completed = ?", *userID, lesson.ID, true).First(&record).Error == nil
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson fetched successfully!", fiber.Map{
		"lesson":       lesson,
		"access":       verdict,
		"is_completed": isCompleted,
	})
}

// MarkLessonComplete upserts the caller's progress record for the lesson
// and refreshes enrollment progress and XP.
func MarkLessonComplete(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	lessonID := c.Locals("lessonID").(int)

	var lesson courseModels.Lesson
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", lessonID, false).First(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ? AND is_published = ?", lesson.CourseID, false, true).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found or not published!", nil)
	}

	// Check if user is enrolled in the course
	var enrollment courseModels.Enrollment
	if err := database.Database.Db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, lesson.CourseID, false).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "User not enrolled in this course!", nil)
	}

	// A locked lesson cannot be completed.
	verdict := newResolver().ResolveLesson(&userID, lesson.ID, course.IsFree)
	if !verdict.CanAccess {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Lesson is locked!", fiber.Map{
			"access": verdict,
		})
	}

	now := time.Now()

	// Upsert against the (user, lesson) uniqueness invariant
	var record courseModels.ProgressRecord
	err := database.Database.Db.Where("user_id = ? AND lesson_id = ?", userID, lesson.ID).First(&record).Error
	if err == nil {
		if record.IsCompleted {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Lesson already marked as completed!", nil)
		}
		record.IsCompleted = true
		record.CompletedAt = &now
		if err := database.Database.Db.Save(&record).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to mark lesson as completed!", nil)
		}
	} else {
		record = courseModels.ProgressRecord{
			UserID:      userID,
			LessonID:    lesson.ID,
			CourseID:    lesson.CourseID,
			IsCompleted: true,
			CompletedAt: &now,
		}
		tx := database.Database.Db.Begin()
		if err := tx.Create(&record).Error; err != nil {
			tx.Rollback()
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to mark lesson as completed!", nil)
		}
		tx.Commit()
	}

	awardXP(userID, gamification.EventLessonCompleted, gamification.XPLessonCompleted, lesson.ID)

	// Update enrollment progress
	updateEnrollmentProgress(userID, lesson.CourseID)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson marked as completed successfully!", record)
}

// GetNextLesson returns the "continue learning" target for a course.
func GetNextLesson(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ? AND is_published = ?", courseID, false, true).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	next, found := newResolver().NextAvailableLesson(&userID, course.ID, course.IsFree)
	if !found {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "No lesson available!", fiber.Map{
			"next_lesson": nil,
		})
	}

	var lesson courseModels.Lesson
	if err := database.Database.Db.Where("id = ?", next.ID).First(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch lesson!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Next lesson fetched successfully!", fiber.Map{
		"next_lesson": lesson,
	})
}

// GetUserProgress gets the user's progress in a course
func GetUserProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	var enrollment courseModels.Enrollment
	if err := database.Database.Db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "User not enrolled in this course!", nil)
	}

	// Get completed lesson IDs
	var completedRecords []courseModels.ProgressRecord
	database.Database.Db.Where("user_id = ? AND course_id = ? AND is_completed = ?", userID, courseID, true).Find(&completedRecords)

	completedIDs := make([]uint, len(completedRecords))
	for i, record := range completedRecords {
		completedIDs[i] = record.LessonID
	}

	// Get module-wise progress
	var modules []courseModels.Module
	database.Database.Db.Where("course_id = ? AND is_deleted = ?", courseID, false).Order("position asc").Find(&modules)

	type ModuleProgress struct {
		ModuleID         uint   `json:"module_id"`
		ModuleName       string `json:"module_name"`
		TotalLessons     int64   `json:"total_lessons"`
		CompletedLessons int64   `json:"completed_lessons"`
		Progress         float64 `json:"progress"`
	}

	moduleProgress := make([]ModuleProgress, len(modules))
	for i, mod := range modules {
		var totalLessons int64
		var completedLessons int64

		database.Database.Db.Model(&courseModels.Lesson{}).Where("module_id = ? AND is_deleted = ?", mod.ID, false).Count(&totalLessons)
		database.Database.Db.Model(&courseModels.ProgressRecord{}).
			Joins("JOIN lessons ON user_progress.lesson_id = lessons.id").
			Where("user_progress.user_id = ? AND lessons.module_id = ? AND user_progress.is_completed = ?", userID, mod.ID, true).
			Count(&completedLessons)

		progress := float64(0)
		if totalLessons > 0 {
			progress = float64(completedLessons) / float64(totalLessons) * 100
		}

		moduleProgress[i] = ModuleProgress{
			ModuleID:         mod.ID,
			ModuleName:       mod.Title,
			TotalLessons:     totalLessons,
			CompletedLessons: completedLessons,
			Progress:         progress,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully!", fiber.Map{
		"enrollment":      enrollment,
		"completed_ids":   completedIDs,
		"module_progress": moduleProgress,
	})
}

// updateEnrollmentProgress recomputes the enrollment progress after a
// lesson completion or quiz pass.
func updateEnrollmentProgress(userID uint, courseID uint) {
	var enrollment courseModels.Enrollment
	if err := database.Database.Db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&enrollment).Error; err != nil {
		return
	}

	resolver := newResolver()
	store := access.NewGormStore(database.Database.Db)

	wasCompleted := enrollment.Status == "COMPLETED"

	enrollment.TotalLessons = store.CountLessonsInCourse(courseID)
	enrollment.CompletedLessons = store.CountCompletedLessons(userID, courseID)
	enrollment.Progress = resolver.CourseProgressPercent(userID, courseID)

	if enrollment.Progress >= 100 {
		enrollment.Status = "COMPLETED"
		now := time.Now()
		enrollment.CompletedAt = &now
	} else if enrollment.Progress > 0 {
		enrollment.Status = "IN_PROGRESS"
	}

	database.Database.Db.Save(&enrollment)

	if enrollment.Status == "COMPLETED" && !wasCompleted {
		awardXP(userID, gamification.EventCourseCompleted, gamification.XPCourseCompleted, courseID)
	}
}
