package courseRoutes

import (
	controllers "nodo360/controllers/course"
	"nodo360/middleware"
	validators "nodo360/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up all learner-facing course routes. Listing,
// course details and lesson reads go through the optional JWT middleware so
// anonymous visitors can preview free content; everything that writes state
// requires a logged-in user.
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/course")

	// Catalog browsing (anonymous gets free-course preview access)
	courseGroup.Get("/list", middleware.OptionalJWTMiddleware, validators.CourseList(), controllers.GetAllCourses)
	courseGroup.Get("/:course_id", middleware.OptionalJWTMiddleware, validators.CourseParam(), controllers.GetCourseDetails)

	// Enrollment
	courseGroup.Post("/:course_id/enroll", middleware.JWTMiddleware, validators.CourseParam(), controllers.EnrollInCourse)

	// Lesson delivery
	moduleGroup := app.Group("/module")
	moduleGroup.Get("/:module_id/lessons", middleware.OptionalJWTMiddleware, validators.ModuleParam(), controllers.GetModuleLessons)

	lessonGroup := app.Group("/lesson")
	lessonGroup.Get("/:lesson_id", middleware.OptionalJWTMiddleware, validators.LessonParam(), controllers.GetLesson)
	lessonGroup.Post("/:lesson_id/complete", middleware.JWTMiddleware, validators.LessonParam(), controllers.MarkLessonComplete)

	// Quizzes
	moduleGroup.Get("/:module_id/quiz", middleware.JWTMiddleware, validators.ModuleParam(), controllers.GetModuleQuiz)
	moduleGroup.Post("/:module_id/quiz/submit", middleware.JWTMiddleware, validators.ModuleParam(), validators.QuizSubmit(), controllers.SubmitQuiz)
	moduleGroup.Get("/:module_id/quiz/attempts", middleware.JWTMiddleware, validators.ModuleParam(), controllers.GetQuizAttempts)

	// Progress tracking
	courseGroup.Get("/:course_id/progress", middleware.JWTMiddleware, validators.CourseParam(), controllers.GetUserProgress)
	courseGroup.Get("/:course_id/next-lesson", middleware.JWTMiddleware, validators.CourseParam(), controllers.GetNextLesson)

	// User enrollments and certificates
	userGroup := app.Group("/user")
	userGroup.Get("/enrollments", middleware.JWTMiddleware, controllers.GetUserEnrollmentsList)
	userGroup.Get("/certificates", middleware.JWTMiddleware, controllers.GetUserCertificates)

	// Certificate request
	courseGroup.Post("/:course_id/certificate/request", middleware.JWTMiddleware, validators.CourseParam(), controllers.RequestCertificate)
}
