package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	fibersession "github.com/gofiber/fiber/v2/middleware/session"
	"github.com/rs/zerolog"

	"github.com/noah-isme/school-fees/internal/config"
	"github.com/noah-isme/school-fees/internal/database"
	"github.com/noah-isme/school-fees/internal/handler"
	"github.com/noah-isme/school-fees/internal/middleware"
	"github.com/noah-isme/school-fees/internal/repository"
	"github.com/noah-isme/school-fees/internal/router"
	"github.com/noah-isme/school-fees/internal/service"
	"github.com/noah-isme/school-fees/internal/session"
	"github.com/noah-isme/school-fees/internal/views"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Str("service", cfg.AppName).Logger()
	if cfg.IsProduction() {
		logger = logger.Level(zerolog.InfoLevel)
	}

	db, err := database.Connect(cfg.DatabaseDriver, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to access database pool: %v", err)
	}
	defer sqlDB.Close()

	var sessionStorage, limiterStorage fiber.Storage
	if cfg.RedisURL != "" {
		redisClient, err := database.ConnectRedis(context.Background(), cfg.RedisURL)
		if err != nil {
			log.Fatalf("failed to connect to redis: %v", err)
		}
		defer redisClient.Close()

		sessionStorage = session.NewRedisStorage(redisClient, "fees:session:")
		limiterStorage = session.NewRedisStorage(redisClient, "fees:limiter:")
		logger.Info().Msg("using redis for sessions and rate limits")
	}

	store := fibersession.New(fibersession.Config{
		Expiration:     cfg.SessionTTL,
		Storage:        sessionStorage,
		KeyLookup:      "cookie:fees_session",
		CookieHTTPOnly: true,
		CookieSameSite: fiber.CookieSameSiteLaxMode,
		CookieSecure:   cfg.IsProduction(),
	})
	flash := handler.NewFlash(store)

	validate := validator.New(validator.WithRequiredStructEnabled())

	studentRepo := repository.NewStudentRepository(db)
	termRepo := repository.NewTermRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	reportRepo := repository.NewReportRepository(db)

	studentService := service.NewStudentService(studentRepo, validate, logger)
	termService := service.NewTermService(termRepo, validate, logger)
	paymentService := service.NewPaymentService(paymentRepo, studentRepo, termRepo, validate, logger)
	reportService := service.NewReportService(reportRepo, logger)
	receiptService := service.NewReceiptService(paymentRepo, logger)

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ServerHeader: cfg.AppName,
		Views:        views.NewEngine(),
		ViewsLayout:  views.Layout,
		ErrorHandler: handler.ErrorHandler(logger),
	})

	middleware.Register(app, middleware.Config{Logger: &logger, AccessLog: !cfg.IsProduction()})
	router.Register(app, cfg, router.Dependencies{
		StudentHandler: handler.NewStudentHandler(studentService, flash, logger),
		TermHandler:    handler.NewTermHandler(termService, flash, logger),
		PaymentHandler: handler.NewPaymentHandler(paymentService, flash, logger),
		ReportHandler:  handler.NewReportHandler(reportService, receiptService, flash, logger),
		Database:       sqlDB,
		FormRateLimit:  middleware.FormRateLimit(cfg.FormRateLimit, time.Minute, limiterStorage),
	})

	go func() {
		logger.Info().Str("address", cfg.HTTPAddress()).Msg("listening")
		if err := app.Listen(cfg.HTTPAddress()); err != nil {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	waitForShutdown(app, logger)
}

func waitForShutdown(app *fiber.App, logger zerolog.Logger) {
	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-shutdownCtx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed")
	}

	logger.Info().Msg("server stopped")
}
