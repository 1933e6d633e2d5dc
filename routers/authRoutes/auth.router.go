package authRoutes

import (
	authControllers "codenexus/controllers/auth"
	"codenexus/middleware"
	authValidators "codenexus/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/auth")

	authGroup.Post("/signup", authValidators.Signup(), authControllers.Signup)
	authGroup.Post("/login", authValidators.Login(), authControllers.Login)
	authGroup.Get("/login/history", middleware.JWTMiddleware, authControllers.LoginHistoryList)

	profileGroup := app.Group("/profile")
	profileGroup.Get("/", middleware.JWTMiddleware, authControllers.GetProfile)
	profileGroup.Patch("/handles", middleware.JWTMiddleware, authValidators.UpdateHandles(), authControllers.UpdateHandles)
}
