package courseRoutes

import (
	controllers "nodo360/controllers/course"
	"nodo360/middleware"
	validators "nodo360/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminCourseRoutes sets up all admin content management routes.
func SetupAdminCourseRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin/course", middleware.JWTMiddleware, middleware.RequireRole("ADMIN"))

	// Course CRUD
	adminGroup.Post("/create", validators.CreateCourse(), controllers.CreateCourse)
	adminGroup.Put("/:course_id", validators.CourseParam(), validators.UpdateCourse(), controllers.UpdateCourse)

	// Module and lesson authoring. Positions are assigned server-side so the
	// sequential ordering stays contiguous.
	adminGroup.Post("/:course_id/module", validators.CourseParam(), validators.CreateModule(), controllers.CreateModule)

	moduleGroup := app.Group("/admin/module", middleware.JWTMiddleware, middleware.RequireRole("ADMIN"))
	moduleGroup.Post("/:module_id/lesson", validators.ModuleParam(), validators.CreateLesson(), controllers.CreateLesson)
	moduleGroup.Post("/:module_id/question", validators.ModuleParam(), validators.CreateQuestion(), controllers.CreateQuizQuestion)

	// Certificate review
	certGroup := app.Group("/admin/certificate", middleware.JWTMiddleware, middleware.RequireRole("ADMIN"))
	certGroup.Post("/:request_id/approve", validators.RequestParam(), controllers.ApproveCertificate)
	certGroup.Post("/:request_id/reject", validators.RequestParam(), validators.RejectCertificate(), controllers.RejectCertificate)
}
