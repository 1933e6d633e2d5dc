package superAdminRoutes

import (
	controllers "codenexus/controllers/superAdmin"
	"codenexus/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupSuperAdminRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin/user")

	adminGroup.Get("/list", middleware.JWTMiddleware, middleware.CheckPermissionMiddleware("manage-users"), controllers.UserList)
	adminGroup.Post("/register-admin", middleware.JWTMiddleware, middleware.CheckPermissionMiddleware("manage-users"), controllers.RegisterAdmin)
	adminGroup.Post("/:user_id/block", middleware.JWTMiddleware, middleware.CheckPermissionMiddleware("manage-users"), controllers.BlockUser)
	adminGroup.Post("/:user_id/unblock", middleware.JWTMiddleware, middleware.CheckPermissionMiddleware("manage-users"), controllers.UnblockUser)
	adminGroup.Delete("/:user_id", middleware.JWTMiddleware, middleware.CheckPermissionMiddleware("manage-users"), controllers.DeleteUser)
}
