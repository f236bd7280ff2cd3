package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	_ "trs-service/docs"
	"trs-service/internal/config"
	"trs-service/internal/handlers"
	"trs-service/internal/metrics"
	"trs-service/internal/middleware"
	"trs-service/internal/repository"
	"trs-service/internal/services"
)

// @title TRS API
// @version 1.0
// @description Time recording service: users, projects and hourly charges.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// A missing .env file is fine; the environment may be set directly.
	_ = godotenv.Load()

	cfg := InitConfig()
	db := ConnectDatabase(cfg)
	MigrateDatabase(db)

	app := NewApp(cfg, db)

	routes := app.GetRoutes()
	log.Println("Registered routes:")
	for _, r := range routes {
		log.Printf("  %s %s\n", r.Method, r.Path)
	}

	port := cfg.AppPort
	if port == "" {
		port = "8080"
		log.Printf("Defaulting to port %s", port)
	}
	log.Printf("Server listening on port %s", port)
	log.Fatal(app.Listen(":" + port))
}

// NewApp wires repositories, services and handlers into a fiber app.
func NewApp(cfg *config.Config, db *gorm.DB) *fiber.App {
	userRepo := repository.NewUserRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	chargeRepo := repository.NewChargeRepository(db)

	authService := services.NewAuthService(userRepo, cfg.SecretKey, cfg.JWTExpiration)
	projectService := services.NewProjectService(projectRepo)
	chargeService := services.NewChargeService(db, chargeRepo, projectRepo)

	authHandler := handlers.NewAuthHandler(authService)
	projectHandler := handlers.NewProjectHandler(projectService)
	chargeHandler := handlers.NewChargeHandler(chargeService)

	app := fiber.New(fiber.Config{ErrorHandler: handlers.ErrorHandler})
	app.Use(metrics.Default().Middleware())

	app.Get("/hello", func(c *fiber.Ctx) error {
		return c.SendString("Hello, World!")
	})
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	app.Get("/swagger/*", swagger.HandlerDefault)

	auth := app.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)

	projects := app.Group("/projects", middleware.JWTAuth(cfg.SecretKey))
	projects.Get("/", projectHandler.ListProjects)
	projects.Post("/create", projectHandler.CreateProject)
	projects.Get("/:id", projectHandler.GetProject)
	projects.Put("/:id/update", projectHandler.UpdateProject)
	projects.Delete("/:id/delete", projectHandler.DeleteProject)

	charges := app.Group("/charges", middleware.JWTAuth(cfg.SecretKey))
	charges.Get("/", chargeHandler.GetCharges)
	charges.Post("/create", chargeHandler.CreateCharges)
	charges.Put("/update", chargeHandler.UpdateCharges)
	charges.Delete("/delete", chargeHandler.DeleteCharges)

	return app
}

func InitConfig() *config.Config {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}
	return cfg
}

func ConnectDatabase(cfg *config.Config) *gorm.DB {
	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}
	return db
}

func MigrateDatabase(db *gorm.DB) {
	if err := config.MigrateDatabase(db); err != nil {
		log.Fatalf("Database migration failed: %v", err)
	}
}
