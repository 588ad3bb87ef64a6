package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/silvastudio/intake-go-api/internal/config"
	"github.com/silvastudio/intake-go-api/internal/database"
	"github.com/silvastudio/intake-go-api/internal/handler"
	"github.com/silvastudio/intake-go-api/internal/middleware"
	"github.com/silvastudio/intake-go-api/internal/models"
	"github.com/silvastudio/intake-go-api/internal/notify"
	"github.com/silvastudio/intake-go-api/internal/repository"
	"github.com/silvastudio/intake-go-api/internal/router"
	"github.com/silvastudio/intake-go-api/internal/service"
	"github.com/silvastudio/intake-go-api/internal/validate"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	contacts, bookings, err := buildRepositories(cfg, logger)
	if err != nil {
		log.Fatalf("failed to initialise submission store: %v", err)
	}

	notifier, err := buildNotifier(cfg, logger)
	if err != nil {
		log.Fatalf("failed to initialise notifier: %v", err)
	}

	validator := validate.New()
	intakeService := service.NewIntakeService(contacts, bookings, validator, notifier, logger)
	adminService := service.NewAdminService(contacts, bookings, logger)

	contactHandler := handler.NewContactHandler(intakeService, logger)
	bookingHandler := handler.NewBookingHandler(intakeService, logger)
	adminHandler := handler.NewAdminHandler(adminService, logger)

	var limiterStorage fiber.Storage
	if cfg.RedisURL != "" {
		redisClient, err := database.ConnectRedis(cfg.RedisURL)
		if err != nil {
			log.Fatalf("failed to connect to redis: %v", err)
		}
		defer redisClient.Close()
		limiterStorage = middleware.NewRedisStorage(redisClient)
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ServerHeader: cfg.AppName,
	})

	middleware.Register(app, middleware.Config{Logger: &logger})
	router.Register(app, cfg, router.Dependencies{
		ContactHandler:  contactHandler,
		BookingHandler:  bookingHandler,
		AdminHandler:    adminHandler,
		IntakeRateLimit: middleware.RateLimit("intake", cfg.RateLimitMax, cfg.RateLimitWindow, limiterStorage),
	})

	go func() {
		if err := app.Listen(cfg.HTTPAddress()); err != nil {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	waitForShutdown(app)
}

// buildRepositories selects the Postgres-backed store when a database URL is
// configured and falls back to the process-lifetime in-memory store.
func buildRepositories(cfg config.Config, logger zerolog.Logger) (repository.ContactRepository, repository.BookingRepository, error) {
	if cfg.DatabaseURL == "" {
		logger.Info().Msg("no database configured, using in-memory submission store")
		return repository.NewMemoryContactRepository(), repository.NewMemoryBookingRepository(), nil
	}

	db, err := database.ConnectPostgres(cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}
	if err := db.AutoMigrate(&models.ContactSubmission{}, &models.BookingSubmission{}); err != nil {
		return nil, nil, err
	}

	return repository.NewContactRepository(db), repository.NewBookingRepository(db), nil
}

func buildNotifier(cfg config.Config, logger zerolog.Logger) (notify.Notifier, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	switch cfg.NotifyProvider {
	case config.NotifyProviderSES:
		return notify.NewSESNotifier(ctx, cfg.AWSRegion, cfg.NotifyEmailFrom, cfg.NotifyEmailTo)
	case config.NotifyProviderSNS:
		return notify.NewSNSNotifier(ctx, cfg.AWSRegion, cfg.NotifySNSTopic)
	case config.NotifyProviderNATS:
		return notify.NewNATSNotifier(cfg.NATSURL, cfg.NotifySubject)
	default:
		return notify.NewLogNotifier(logger), nil
	}
}

func waitForShutdown(app *fiber.App) {
	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-shutdownCtx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}

	log.Println("server stopped")
}
