package progressRoutes

import (
	controllers "codenexus/controllers/progress"
	"codenexus/middleware"
	validators "codenexus/validators/progress"

	"github.com/gofiber/fiber/v2"
)

func SetupProgressRoutes(app *fiber.App) {
	trackGroup := app.Group("/track")
	trackGroup.Get("/list", middleware.JWTMiddleware, middleware.CheckPermissionMiddleware("view-tracks"), controllers.GetTracks)
	trackGroup.Get("/:id", middleware.JWTMiddleware, middleware.CheckPermissionMiddleware("view-tracks"), validators.TrackDetail(), controllers.GetTrackDetail)

	progressGroup := app.Group("/progress")
	progressGroup.Get("/", middleware.JWTMiddleware, middleware.CheckPermissionMiddleware("track-progress"), controllers.GetMyProgress)
	progressGroup.Post("/module/:module_id/block/:block_id/complete", middleware.JWTMiddleware, middleware.CheckPermissionMiddleware("track-progress"), validators.CompleteBlock(), controllers.CompleteBlock)
	progressGroup.Post("/problem/:problem_id/solve", middleware.JWTMiddleware, middleware.CheckPermissionMiddleware("track-progress"), validators.SolveProblem(), controllers.SolveProblem)
	progressGroup.Post("/refresh", middleware.JWTMiddleware, middleware.CheckPermissionMiddleware("track-progress"), controllers.RefreshProgress)

	challengeGroup := app.Group("/challenge")
	challengeGroup.Get("/today", middleware.JWTMiddleware, middleware.CheckPermissionMiddleware("track-progress"), controllers.GetDailyChallenge)
}
