package main

import (
	"codenexus/config"
	"codenexus/database"
	authRoutes "codenexus/routers/authRoutes"
	curriculumRoutes "codenexus/routers/curriculumRoutes"
	progressRoutes "codenexus/routers/progressRoutes"
	rankingRoutes "codenexus/routers/rankingRoutes"
	superAdminRoutes "codenexus/routers/superAdmin"
	"codenexus/services"
	"codenexus/utils"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()
	services.Init()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE",  // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization", // Allowed headers
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve static files from the public folder
	app.Static("/", "./public")

	authRoutes.SetupAuthRoutes(app)
	progressRoutes.SetupProgressRoutes(app)
	rankingRoutes.SetupRankingRoutes(app)
	curriculumRoutes.SetupAdminCurriculumRoutes(app)
	superAdminRoutes.SetupSuperAdminRoutes(app)

	utils.InitializeSchedulers()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
