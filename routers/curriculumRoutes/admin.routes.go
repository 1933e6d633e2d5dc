package curriculumRoutes

import (
	controllers "codenexus/controllers/curriculum"
	"codenexus/middleware"
	validators "codenexus/validators/curriculum"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminCurriculumRoutes sets up all admin curriculum management routes
func SetupAdminCurriculumRoutes(app *fiber.App) {
	trackGroup := app.Group("/admin/track")

	// Track CRUD
	trackGroup.Post("/create", middleware.JWTMiddleware, middleware.CheckPermissionMiddleware("manage-curriculum"), validators.CreateTrack(), controllers.AdminCreateTrack)
	trackGroup.Get("/list", middleware.JWTMiddleware, middleware.CheckPermissionMiddleware("manage-curriculum"), controllers.AdminListTracks)
	trackGroup.Put("/:id", middleware.JWTMiddleware, middleware.CheckPermissionMiddleware("manage-curriculum"), validators.UpdateTrack(), controllers.AdminUpdateTrack)
	trackGroup.Delete("/:id", middleware.JWTMiddleware, middleware.CheckPermissionMiddleware("manage-curriculum"), validators.DeleteTrack(), controllers.AdminDeleteTrack)

	// Module Management
	trackGroup.Post("/:track_id/module", middleware.JWTMiddleware, middleware.CheckPermissionMiddleware("manage-curriculum"), validators.CreateModule(), controllers.AdminCreateModule)

	moduleGroup := app.Group("/admin/module")
	moduleGroup.Put("/:module_id", middleware.JWTMiddleware, middleware.CheckPermissionMiddleware("manage-curriculum"), validators.UpdateModule(), controllers.AdminUpdateModule)
	moduleGroup.Delete("/:module_id", middleware.JWTMiddleware, middleware.CheckPermissionMiddleware("manage-curriculum"), validators.DeleteModule(), controllers.AdminDeleteModule)
	moduleGroup.Post("/:module_id/block", middleware.JWTMiddleware, middleware.CheckPermissionMiddleware("manage-curriculum"), validators.CreateBlock(), controllers.AdminCreateBlock)

	// Content Block Management
	blockGroup := app.Group("/admin/block")
	blockGroup.Put("/:block_id", middleware.JWTMiddleware, middleware.CheckPermissionMiddleware("manage-curriculum"), validators.UpdateBlock(), controllers.AdminUpdateBlock)
	blockGroup.Delete("/:block_id", middleware.JWTMiddleware, middleware.CheckPermissionMiddleware("manage-curriculum"), validators.DeleteBlock(), controllers.AdminDeleteBlock)

	// Problem Management
	problemGroup := app.Group("/admin/problem")
	problemGroup.Post("/create", middleware.JWTMiddleware, middleware.CheckPermissionMiddleware("manage-curriculum"), validators.CreateProblem(), controllers.AdminCreateProblem)
	problemGroup.Get("/list", middleware.JWTMiddleware, middleware.CheckPermissionMiddleware("manage-curriculum"), controllers.AdminListProblems)
	problemGroup.Put("/:problem_id", middleware.JWTMiddleware, middleware.CheckPermissionMiddleware("manage-curriculum"), validators.UpdateProblem(), controllers.AdminUpdateProblem)
	problemGroup.Delete("/:problem_id", middleware.JWTMiddleware, middleware.CheckPermissionMiddleware("manage-curriculum"), validators.DeleteProblem(), controllers.AdminDeleteProblem)

	// Daily Challenge Management
	challengeGroup := app.Group("/admin/challenge")
	challengeGroup.Post("/set", middleware.JWTMiddleware, middleware.CheckPermissionMiddleware("manage-curriculum"), validators.SetDailyChallenge(), controllers.AdminSetDailyChallenge)
	challengeGroup.Get("/", middleware.JWTMiddleware, middleware.CheckPermissionMiddleware("manage-curriculum"), validators.GetDailyChallengeAdmin(), controllers.AdminGetDailyChallenge)
}
