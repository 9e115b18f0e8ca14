package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberLogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/givehub/backend/internal/config"
	"github.com/givehub/backend/internal/controller"
	"github.com/givehub/backend/internal/handler"
	"github.com/givehub/backend/internal/middleware"
	"github.com/givehub/backend/internal/repository"
	"github.com/givehub/backend/internal/service"
	"github.com/givehub/backend/pkg/database"
	"github.com/givehub/backend/pkg/email"
	jwtPkg "github.com/givehub/backend/pkg/jwt"
	"github.com/givehub/backend/pkg/logger"
	"github.com/givehub/backend/pkg/storage"
	"github.com/givehub/backend/pkg/utils"
)

func main() {
	// .env is optional outside development.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Invalid configuration: ", err)
	}

	appLogger, err := logger.New()
	if err != nil {
		log.Fatal("Failed to initialize logger: ", err)
	}
	defer appLogger.Sync()

	db, err := database.New(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to initialize database: ", err)
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	fundraiserRepo := repository.NewFundraiserRepository(db)
	donationRepo := repository.NewDonationRepository(db)

	// Image storage: local disk unless an S3 bucket is configured.
	var imageStorage storage.Storage
	if cfg.S3Enabled() {
		imageStorage, err = storage.NewS3Storage(cfg.S3)
		if err != nil {
			log.Fatal("Failed to initialize S3 storage: ", err)
		}
	} else {
		imageStorage, err = storage.NewLocalStorage(cfg.UploadDir)
		if err != nil {
			log.Fatal("Failed to initialize upload storage: ", err)
		}
	}

	// Token service refuses to start without a secret.
	tokenService, err := jwtPkg.NewTokenService(cfg.JWTSecret, cfg.TokenExpiry)
	if err != nil {
		log.Fatal("Failed to initialize token service: ", err)
	}

	// Email service is nil when no API key is configured.
	emailService := email.NewEmailService(cfg.Email)

	// Services
	authService := service.NewAuthService(userRepo, tokenService, emailService, appLogger)
	fundraiserService := service.NewFundraiserService(fundraiserRepo, imageStorage)
	donationService := service.NewDonationService(donationRepo)

	validator := utils.NewValidator()

	// Handlers
	authController := controller.NewAuthController(authService)
	authHandler := handler.NewAuthHandler(authController, validator, appLogger)
	fundraiserHandler := handler.NewFundraiserHandler(fundraiserService, validator, appLogger)
	donationHandler := handler.NewDonationHandler(donationService, validator, appLogger)

	// Router
	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST",
	}))
	app.Use(fiberLogger.New())
	app.Use(limiter.New(limiter.Config{
		Max:        20,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Welcome to backend")
	})
	app.Static("/uploads", cfg.UploadDir)

	api := app.Group("/api")

	// Public routes
	auth := api.Group("/auth")
	auth.Post("/signup", authHandler.Signup)
	auth.Post("/signin", authHandler.Signin)

	api.Get("/fundraisers", fundraiserHandler.List)
	api.Get("/fundraisers/:id", fundraiserHandler.GetByID)

	// Protected routes
	authGate := middleware.Auth(tokenService, userRepo)

	api.Post("/fundraisers", authGate, fundraiserHandler.Create)

	donations := api.Group("/donations", authGate)
	donations.Post("/", donationHandler.Create)
	donations.Get("/", donationHandler.List)
	donations.Get("/:id", donationHandler.GetByID)

	appLogger.Info("server starting", zap.String("port", cfg.Port))
	log.Fatal(app.Listen(":" + cfg.Port))
}
