package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	httpapi "condoreserve-backend/internal/api/http"
	"condoreserve-backend/internal/config"
	"condoreserve-backend/internal/logger"
	"condoreserve-backend/internal/repository/postgres"
	"condoreserve-backend/internal/security"
	"condoreserve-backend/internal/service"
)

func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting CondoReserve Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	store := postgres.NewStore(db)

	tokenManager := security.NewTokenManager(cfg.JWT.Secret)

	// Push delivery is best-effort; without credentials it degrades to a
	// no-op sender and only in-app notifications are stored.
	var pushSender service.PushSender
	if cfg.Push.CredentialsFile != "" {
		pushSender, err = service.NewFCMPushSender(context.Background(), cfg.Push.CredentialsFile)
		if err != nil {
			logger.Error("Failed to initialize FCM, falling back to no-op push", "error", err)
			pushSender = service.NewNoopPushSender()
		}
	} else {
		logger.Info("Push credentials not configured, push delivery disabled")
		pushSender = service.NewNoopPushSender()
	}

	notifier := service.NewNotifier(store.NotificationRepository, store.UserRepository, pushSender)
	auditRecorder := service.NewAuditRecorder(store.AuditRepository)

	settingsSvc := service.NewSettingsService(store.SettingRepository)
	if err := settingsSvc.EnsureDefaults(context.Background()); err != nil {
		logger.Error("Failed to seed default settings", "error", err)
		log.Fatalf("Failed to seed default settings: %v", err)
	}

	reservationSvc := service.NewReservationService(
		store.CartReservationRepository,
		store.TractorReservationRepository,
		store.ChainsawReservationRepository,
		store.SettingRepository,
		store.UserRepository,
		notifier,
		auditRecorder,
	)
	noteSvc := service.NewNotificationService(store.NotificationRepository)
	auditSvc := service.NewAuditService(store.AuditRepository)

	router := httpapi.NewRouter(
		tokenManager,
		httpapi.NewReservationHandler(reservationSvc),
		httpapi.NewSettingsHandler(settingsSvc),
		httpapi.NewNotificationHandler(noteSvc),
		httpapi.NewAuditHandler(auditSvc),
	)

	server := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", "error", err)
			log.Fatalf("Failed to serve: %v", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down HTTP server...")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Graceful shutdown failed", "error", err)
	}
	logger.Info("Server stopped. Goodbye!")
}
