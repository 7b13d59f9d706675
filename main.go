package main

import (
	"log"

	"nodo360/config"
	"nodo360/database"
	adminRoutes "nodo360/routers/adminRoutes"
	authRoutes "nodo360/routers/authRoutes"
	courseRoutes "nodo360/routers/courseRoutes"
	gamificationRoutes "nodo360/routers/gamificationRoutes"
	governanceRoutes "nodo360/routers/governanceRoutes"
	mentorshipRoutes "nodo360/routers/mentorshipRoutes"
	"nodo360/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Background jobs: proposal closing and session reminders
	utils.InitializeGovernanceScheduler()
	utils.InitializeMentorshipScheduler()

	authRoutes.SetupAuthRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	courseRoutes.SetupAdminCourseRoutes(app)
	gamificationRoutes.SetupGamificationRoutes(app)
	mentorshipRoutes.SetupMentorshipRoutes(app)
	governanceRoutes.SetupGovernanceRoutes(app)
	adminRoutes.SetupAdminRoutes(app)

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
