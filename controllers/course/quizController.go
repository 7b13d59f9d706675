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

// GetModuleQuiz returns the module's end-of-module quiz without correct
// answers. The module itself must be unlocked for the caller.
func GetModuleQuiz(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	moduleID := c.Locals("moduleID").(int)

	var module courseModels.Module
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", moduleID, false).First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", module.CourseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	verdict := newResolver().ResolveModule(&userID, module.ID, course.IsFree)
	if !verdict.CanAccess {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Module is locked!", fiber.Map{
			"access": verdict,
		})
	}

	var questions []courseModels.QuizQuestion
	database.Database.Db.Where("module_id = ? AND is_deleted = ?", moduleID, false).Order("position asc").Find(&questions)

	type QuestionWithOptions struct {
		courseModels.QuizQuestion
		Options []courseModels.QuizOption `json:"options"`
	}

	result := make([]QuestionWithOptions, len(questions))
	for i, q := range questions {
		var options []courseModels.QuizOption
		database.Database.Db.Where("question_id = ? AND is_deleted = ?", q.ID, false).Order("position asc").Find(&options)
		// Remove IsCorrect from options for users (don't show answers)
		for j := range options {
			options[j].IsCorrect = false
		}
		result[i] = QuestionWithOptions{QuizQuestion: q, Options: options}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz fetched successfully!", fiber.Map{
		"module":        module,
		"questions":     result,
		"passing_score": access.PassingScore,
	})
}

// SubmitQuiz grades a quiz submission, appends an immutable attempt and
// awards XP on a pass. Passing unlocks the next module through the access
// resolvers reading the attempt history.
func SubmitQuiz(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	moduleID := c.Locals("moduleID").(int)

	var module courseModels.Module
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", moduleID, false).First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", module.CourseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	// Check enrollment
	var enrollment courseModels.Enrollment
	if err := database.Database.Db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, module.CourseID, false).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "User not enrolled in this course!", nil)
	}

	verdict := newResolver().ResolveModule(&userID, module.ID, course.IsFree)
	if !verdict.CanAccess {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Module is locked!", fiber.Map{
			"access": verdict,
		})
	}

	reqData, ok := c.Locals("validatedQuizSubmit").(*struct {
		Answers map[uint]uint `json:"answers"` // question ID -> selected option ID
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var questions []courseModels.QuizQuestion
	database.Database.Db.Where("module_id = ? AND is_deleted = ?", moduleID, false).Find(&questions)

	if len(questions) == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module has no quiz!", nil)
	}

	// Grade: one point per question whose selected option is the correct one
	correctCount := 0
	for _, q := range questions {
		selectedID, answered := reqData.Answers[q.ID]
		if !answered {
			continue
		}
		var option courseModels.QuizOption
		if err := database.Database.Db.Where("id = ? AND question_id = ? AND is_deleted = ?", selectedID, q.ID, false).First(&option).Error; err != nil {
			continue
		}
		if option.IsCorrect {
			correctCount++
		}
	}

	score := correctCount * 100 / len(questions)
	passed := score >= access.PassingScore

	// Get attempt number
	var attemptCount int64
	database.Database.Db.Model(&courseModels.QuizAttempt{}).Where("user_id = ? AND module_id = ? AND is_deleted = ?", userID, moduleID, false).Count(&attemptCount)

	alreadyPassed := access.NewGormStore(database.Database.Db).HasPassedQuiz(userID, module.ID)

	attempt := courseModels.QuizAttempt{
		UserID:        userID,
		ModuleID:      module.ID,
		Score:         score,
		Passed:        passed,
		AttemptNumber: int(attemptCount) + 1,
		CompletedAt:   time.Now(),
	}

	if err := database.Database.Db.Create(&attempt).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit quiz!", nil)
	}

	// XP only for the first pass of a module's quiz
	if passed && !alreadyPassed {
		awardXP(userID, gamification.EventQuizPassed, gamification.XPQuizPassed, module.ID)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz submitted!", fiber.Map{
		"attempt":       attempt,
		"passed":        passed,
		"score":         score,
		"passing_score": access.PassingScore,
	})
}

// GetQuizAttempts lists the caller's attempts for a module in reverse
// chronological order.
func GetQuizAttempts(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	moduleID := c.Locals("moduleID").(int)

	var attempts []courseModels.QuizAttempt
	if err := database.Database.Db.Where("user_id = ? AND module_id = ? AND is_deleted = ?", userID, moduleID, false).Order("created_at desc").Find(&attempts).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch attempts!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Attempts fetched successfully!", fiber.Map{
		"attempts": attempts,
		"total":    len(attempts),
	})
}
