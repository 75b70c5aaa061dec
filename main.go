package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"

	"school-management-backend/config"
	_ "school-management-backend/docs"
	util "school-management-backend/pkg/utils"
	"school-management-backend/repository"
	"school-management-backend/router"
	"school-management-backend/seeder"
	_ "time/tzdata"
)

// @title School Management API
// @version 1.0
// @description Backend for a school management system covering attendance, calendar overrides, classes, homework, notices, events, schedules and fees
//
// @contact.name API Support
// @contact.email support@example.com
//
// @license.name MIT
// @license.url https://opensource.org/licenses/MIT
//
// @host localhost:3000
// @BasePath /api/v1
// @schemes http https
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and a PASETO token.
//
// @tag.name Auth
// @tag.description Authentication endpoints
//
// @tag.name Users
// @tag.description User management endpoints
//
// @tag.name Attendance
// @tag.description Attendance marking and monthly summaries
//
// @tag.name Calendar
// @tag.description Day override calendar endpoints
func main() {
	if len(os.Args) > 1 && os.Args[1] == "generate-key" {
		key, err := util.GenerateBase64Key(32)
		if err != nil {
			log.Fatalf("failed to generate key: %v", err)
		}
		fmt.Println(key)
		return
	}

	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	cfg := config.LoadConfig()

	config.MongoConnect()
	config.InitDatabase()
	defer config.DisconnectDB()

	if os.Getenv("SEED_DATA") == "true" {
		classRepo := repository.NewClassRepository()
		seeder.SeedClasses(classRepo)
		seeder.SeedUsers(repository.NewUserRepository(), classRepo)
	}

	app := fiber.New()

	config.SetupCORS(app)
	app.Use(logger.New())

	router.SetupRoutes(app, cfg)

	log.Printf("Server running on port %s", cfg.Port)
	log.Printf("API documentation: http://localhost:%s/docs/index.html", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
