package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pressly/goose/v3"

	_ "github.com/lib/pq"

	"carrental-backend/internal/api"
	"carrental-backend/internal/config"
	"carrental-backend/internal/logger"
	"carrental-backend/internal/repository/postgres"
	"carrental-backend/internal/security"
	"carrental-backend/internal/service"
	"carrental-backend/internal/storage"
	"carrental-backend/migrations"
)

func main() {
	configPath := flag.String("config", "config/config.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting car rental backend...", "log_level", cfg.Log.Level, "address", cfg.GetServerAddress())

	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established", "host", cfg.Database.Host, "database", cfg.Database.Database)

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatalf("Failed to set migration dialect: %v", err)
	}
	if err := goose.Up(db, "."); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	logger.Info("Database migrations applied")

	store := postgres.NewStore(db)

	tokenManager := security.NewTokenManager(
		cfg.JWT.Secret,
		time.Duration(cfg.JWT.AccessTokenExpiry)*time.Minute,
	)

	photoStore, err := storage.NewLocalStorage(cfg.Storage.PhotoDir)
	if err != nil {
		log.Fatalf("Failed to initialize photo storage: %v", err)
	}

	emailService := service.NewEmailService(cfg.Email.APIKey, cfg.Email.FromEmail, cfg.Email.FromName)
	authService := service.NewAuthService(store.EmployeeRepository, tokenManager)
	carService := service.NewCarService(store.CarRepository, store.RentalRepository)
	customerService := service.NewCustomerService(store.CustomerRepository, store.RentalRepository)
	employeeService := service.NewEmployeeService(store.EmployeeRepository)
	rentalService := service.NewRentalService(
		store.RentalRepository,
		store.CarRepository,
		store.CustomerRepository,
		store.EmployeeRepository,
		emailService,
	)
	reportService := service.NewReportService(store.ReportRepository)
	dashboardService := service.NewDashboardService(
		store.CarRepository,
		store.CustomerRepository,
		store.EmployeeRepository,
		store.RentalRepository,
	)
	photoService := service.NewPhotoService(store.DamagePhotoRepository, store.RentalRepository, photoStore)

	router := api.NewRouter(
		api.NewAuthHandler(authService),
		api.NewCarHandler(carService),
		api.NewCustomerHandler(customerService),
		api.NewEmployeeHandler(employeeService),
		api.NewRentalHandler(rentalService),
		api.NewPhotoHandler(photoService, cfg.Storage.MaxFileSizeMB),
		api.NewReportHandler(reportService, dashboardService),
		api.NewAuthMiddleware(tokenManager),
	)

	server := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "address", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("HTTP server failed: %v", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Graceful shutdown failed", "error", err)
	}
	logger.Info("Server stopped. Goodbye!")
}
