// Package server wires repositories, services and handlers into a Fiber app.
package server

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"socialgrowth/internal/config"
	"socialgrowth/internal/handlers"
	"socialgrowth/internal/middleware"
	"socialgrowth/internal/repositories"
	"socialgrowth/internal/services"
)

// Options carries the optional outbound dependencies. Nil values disable them.
type Options struct {
	Events    services.EventPublisher
	Generator services.TextGenerator
	// RequestLog enables fiber's access log.
	RequestLog bool
}

// Server is the HTTP storefront together with its database handle.
type Server struct {
	App *fiber.App
	db  *gorm.DB
	cfg *config.Config
	log *zap.SugaredLogger
}

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// New opens the database, seeds the admin account and registers every route.
func New(ctx context.Context, cfg *config.Config, logger *zap.SugaredLogger, opts Options) (*Server, error) {
	db, err := repositories.Open(cfg.DatabaseDriver, cfg.DatabaseDSN)
	if err != nil {
		return nil, err
	}
	if err := repositories.Migrate(db); err != nil {
		return nil, err
	}

	// --- Repositories ---
	serviceRepo := repositories.NewStaticServiceRepository()
	orderRepo := repositories.NewGORMOrderRepository(db)
	userRepo := repositories.NewGORMUserRepository(db)
	txRepo := repositories.NewGORMTransactionRepository(db)

	// --- Services ---
	ledgerService := services.NewLedgerService(userRepo)
	catalogService := services.NewCatalogService(serviceRepo)
	orderService := services.NewOrderService(orderRepo, serviceRepo, userRepo, ledgerService, opts.Events, logger)
	fundsService := services.NewFundsService(txRepo, ledgerService, opts.Events, logger, cfg.UPIID)
	authService := services.NewAuthService(userRepo, cfg.JWTSecret, logger)
	profileService := services.NewProfileService(ledgerService)
	assistantService := services.NewAssistantService(opts.Generator, logger)

	if err := authService.EnsureAdmin(ctx, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		return nil, fmt.Errorf("failed to seed admin account: %w", err)
	}

	app := fiber.New(fiber.Config{
		AppName:               "socialgrowth",
		DisableStartupMessage: true,
	})
	app.Use(recover.New())
	if opts.RequestLog {
		app.Use(fiberlogger.New())
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		events := "disabled"
		if opts.Events != nil {
			events = "connected"
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"rabbitmq": events,
		})
	})

	apiV1 := app.Group("/api/v1")

	// Public routes
	handlers.NewAuthHandler(authService, logger).RegisterRoutes(apiV1)
	handlers.NewCatalogHandler(catalogService, logger).RegisterRoutes(apiV1)

	// Admin routes (admin token required)
	adminRoutes := apiV1.Group("/admin", middleware.AuthRequired(authService, logger), middleware.AdminOnly())
	handlers.NewAdminHandler(orderService, logger).RegisterRoutes(adminRoutes)

	// Protected routes (require JWT authentication)
	protectedRoutes := apiV1.Group("", middleware.AuthRequired(authService, logger))
	handlers.NewOrderHandler(orderService, logger).RegisterRoutes(protectedRoutes)
	handlers.NewFundsHandler(fundsService, logger).RegisterRoutes(protectedRoutes)
	handlers.NewProfileHandler(profileService, logger).RegisterRoutes(protectedRoutes)
	handlers.NewAssistantHandler(assistantService, logger).RegisterRoutes(protectedRoutes)

	return &Server{App: app, db: db, cfg: cfg, log: logger}, nil
}

// Listen serves HTTP on the configured port until Shutdown is called.
func (s *Server) Listen() error {
	s.log.Infow("starting server", "port", s.cfg.AppPort)
	return s.App.Listen(s.cfg.AppPort)
}

// Shutdown stops accepting requests, waits for in-flight ones and closes the database.
func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.App.ShutdownWithContext(ctx); err != nil {
		return fmt.Errorf("fiber shutdown: %w", err)
	}
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
