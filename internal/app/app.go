package app

import (
	"context"
	"errors"
	"fmt"

	"clubsphere_backend/database"
	"clubsphere_backend/internal/auth"
	"clubsphere_backend/internal/config"
	"clubsphere_backend/internal/email"
	"clubsphere_backend/internal/handlers"
	"clubsphere_backend/internal/logger"
	"clubsphere_backend/internal/middleware"
	"clubsphere_backend/internal/models"
	"clubsphere_backend/internal/payments"
	"clubsphere_backend/internal/repositories"
	"clubsphere_backend/internal/routes"
	"clubsphere_backend/internal/services"
	"clubsphere_backend/internal/validator"
	"clubsphere_backend/internal/workers"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		logger.Fatal("Failed to connect to GORM", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	workerCtx, cancelWorkers := context.WithCancel(context.Background())
	defer cancelWorkers()
	membershipWorker := workers.NewMembershipWorker(repositories.NewMembershipRepository(gormDB))
	membershipWorker.Start(workerCtx)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	serviceContainer := initializeServices(cfg, gormDB)
	appHandlers := initializeHandlers(serviceContainer)

	ginRouter := initializeGinRouter(cfg)
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeServices(cfg *config.Config, gormDB *gorm.DB) *services.ServiceContainer {
	repos := &services.Repositories{
		User:         repositories.NewUserRepository(gormDB),
		Club:         repositories.NewClubRepository(gormDB),
		Event:        repositories.NewEventRepository(gormDB),
		Membership:   repositories.NewMembershipRepository(gormDB),
		Registration: repositories.NewRegistrationRepository(gormDB),
		Payment:      repositories.NewPaymentRepository(gormDB),
	}

	provider := payments.NewStripeProvider(cfg.Stripe.SecretKey)

	var emailProvider email.Provider
	smtpProvider, err := email.NewSMTPProvider(&email.SMTPConfig{
		Host:      cfg.Email.SMTPHost,
		Port:      cfg.Email.SMTPPort,
		Username:  cfg.Email.SMTPUsername,
		Password:  cfg.Email.SMTPPassword,
		FromEmail: cfg.Email.FromEmail,
		FromName:  cfg.Email.FromName,
	})
	if err != nil {
		logger.Warn("SMTP is not configured, payment receipts disabled", "error", err.Error())
	} else {
		emailProvider = smtpProvider
	}

	return services.NewServiceContainer(repos, provider, emailProvider, cfg)
}

func initializeHandlers(container *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:    handlers.NewAuthHandler(baseHandler, container.Auth),
		UserHandler:    handlers.NewUserHandler(baseHandler, container.User),
		ClubHandler:    handlers.NewClubHandler(baseHandler, container.Club, container.Event),
		EventHandler:   handlers.NewEventHandler(baseHandler, container.Event, container.Checkout),
		PaymentHandler: handlers.NewPaymentHandler(baseHandler, container.Checkout, container.Payment),
	}
}

func initializeGinRouter(cfg *config.Config) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.ClientURL))
	return router
}

func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	adminEmail := cfg.FirstAdminEmail
	adminPassword := cfg.FirstAdminPassword

	if adminEmail == "" || adminPassword == "" {
		logger.Warn("First admin credentials are not set. Skipping admin seeding.")
		return nil
	}

	var adminUser models.User
	result := db.Where("email = ?", adminEmail).First(&adminUser)

	if result.Error == nil {
		logger.Info("Admin user already exists. Skipping creation.", "email", adminEmail)
		return nil
	}

	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for admin user: %w", result.Error)
	}

	logger.Warn("No admin user found. Creating first admin...", "email", adminEmail)

	hashedPassword, err := auth.HashPassword(adminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	newAdmin := &models.User{
		Email:        adminEmail,
		PasswordHash: hashedPassword,
		Name:         "Administrator",
		Role:         models.UserRoleAdmin,
	}

	if err := db.Create(newAdmin).Error; err != nil {
		return fmt.Errorf("failed to create admin user in database: %w", err)
	}

	logger.Info("Successfully created first admin user", "email", adminEmail)
	return nil
}
