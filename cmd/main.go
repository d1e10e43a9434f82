package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/aulaplus/adminpanel/internal/config"
	"github.com/aulaplus/adminpanel/internal/db"
	"github.com/aulaplus/adminpanel/internal/handlers"
	"github.com/aulaplus/adminpanel/internal/middleware"
	"github.com/aulaplus/adminpanel/internal/services"
	"github.com/aulaplus/adminpanel/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		log.Printf("Unknown timezone %q, falling back to UTC", cfg.Timezone)
		loc = time.UTC
	}

	// Connect to MongoDB
	database := db.ConnectMongoDB(cfg.MongoURI, cfg.MongoDB)

	// QR images live in MinIO
	qrStore, err := storage.NewQRStore(cfg.MinioEndpoint, cfg.MinioAccess, cfg.MinioSecret, cfg.MinioBucket, cfg.Production())
	if err != nil {
		log.Fatalf("Failed to connect to MinIO: %v", err)
	}

	// Services
	authService := services.NewAuthService(database, cfg.SessionSecret, cfg.AdminEmail)
	userService := services.NewUserService(database)
	classService := services.NewClassService(database, loc)
	paymentService := services.NewPaymentService(database)
	courseService := services.NewCourseService(database)
	qrService := services.NewQRService(database, qrStore, nil)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService, cfg.Production())
	userHandler := handlers.NewUserHandler(userService)
	classHandler := handlers.NewClassHandler(classService)
	paymentHandler := handlers.NewPaymentHandler(paymentService)
	courseHandler := handlers.NewCourseHandler(courseService)
	qrHandler := handlers.NewQRHandler(qrService)

	app := fiber.New()
	app.Use(logger.New())
	app.Use(cors.New())

	// Page-path access control
	app.Use(middleware.SessionGuard(cfg.SessionSecret, cfg.AdminEmail))

	// Auth routes
	app.Post("/api/login", authHandler.Login)
	app.Post("/api/logout", authHandler.Logout)

	// Admin API
	api := app.Group("/api", middleware.RequireAdmin(cfg.SessionSecret, cfg.AdminEmail))
	api.Get("/users", userHandler.List)
	api.Delete("/delete-user", userHandler.Delete)
	api.Post("/toggle-active", userHandler.ToggleActive)
	api.Post("/update-subscription", userHandler.UpdateSubscription)
	api.Post("/clear-subscription", userHandler.ClearSubscription)

	api.Get("/live-classes", classHandler.List)
	api.Post("/live-classes", classHandler.Create)
	api.Put("/live-classes/:id", classHandler.Update)
	api.Delete("/live-classes/:id", classHandler.Delete)

	api.Get("/courses", courseHandler.List)
	api.Post("/courses", courseHandler.Create)
	api.Put("/courses/:id", courseHandler.Update)
	api.Delete("/courses/:id", courseHandler.Delete)

	api.Get("/solicitudes", paymentHandler.List)
	api.Post("/solicitudes/:id/approve", paymentHandler.Approve)
	api.Post("/solicitudes/:id/reject", paymentHandler.Reject)

	api.Get("/qr", qrHandler.Get)
	api.Post("/qr", qrHandler.SetURL)
	api.Post("/qr/upload", qrHandler.Upload)

	log.Fatal(app.Listen(":" + cfg.Port))
}
