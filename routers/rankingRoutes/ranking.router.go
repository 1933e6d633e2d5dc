package rankingRoutes

import (
	controllers "codenexus/controllers/ranking"
	"codenexus/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupRankingRoutes(app *fiber.App) {
	rankingGroup := app.Group("/ranking")

	rankingGroup.Get("/leaderboard", middleware.JWTMiddleware, middleware.CheckPermissionMiddleware("view-ranking"), controllers.GetLeaderboard)
	rankingGroup.Get("/me", middleware.JWTMiddleware, middleware.CheckPermissionMiddleware("view-ranking"), controllers.GetMyRank)
	rankingGroup.Get("/export", middleware.JWTMiddleware, middleware.CheckPermissionMiddleware("export-reports"), controllers.ExportLeaderboard)
}
