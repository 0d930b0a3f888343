package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"echolingo/internal/config"
	"echolingo/internal/handler"
	repo "echolingo/internal/repository/database"
	"echolingo/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	migratedb "github.com/golang-migrate/migrate/v4/database"
	migratepostgres "github.com/golang-migrate/migrate/v4/database/postgres"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite3"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
)

func main() {
	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting echolingo server")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	logger.Info("Configuration loaded",
		zap.String("driver", cfg.Database.Driver),
		zap.String("addr", cfg.HTTPAddr),
	)

	// The embedded store lives in a local file; make sure its directory exists
	if cfg.Database.Driver == "sqlite3" {
		if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
			logger.Fatal("Failed to create data directory", zap.Error(err))
		}
	}

	// Connect to the store with retries
	db, err := connectDatabase(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connection established")

	// Run migrations
	if err := runMigrations(db, cfg, logger); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	logger.Info("Database migrations completed")

	// Initialize repositories
	translationRepo := repo.NewTranslationRepo(db)
	progressRepo := repo.NewProgressRepo(db)
	summaryRepo := repo.NewSummaryRepo(db)

	// Initialize services
	translator := service.NewMyMemoryClient(
		cfg.Translator.BaseURL,
		cfg.Translator.SourceLang,
		cfg.Translator.TargetLang,
		logger,
	)
	progressService := service.NewProgressService(progressRepo, logger)
	translationService := service.NewTranslationService(translator, translationRepo, progressService, logger)
	historyService := service.NewHistoryService(translationRepo)
	summaryService := service.NewSummaryService(summaryRepo, translationRepo, logger)
	dictionaryService := service.NewDictionaryService()
	exportService := service.NewExportService(translationRepo, progressRepo, logger)

	// Initialize HTTP API
	gin.SetMode(gin.ReleaseMode)
	h := handler.NewHandler(
		translationService,
		historyService,
		progressService,
		summaryService,
		dictionaryService,
		exportService,
		logger,
	)

	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: h.Router(),
	}

	// Start server in background
	go func() {
		logger.Info("HTTP server started", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan

	logger.Info("Shutdown signal received, stopping server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Shutdown did not complete cleanly", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// connectDatabase opens the configured store with retries
func connectDatabase(cfg *config.Config, logger *zap.Logger) (*sql.DB, error) {
	var db *sql.DB
	var err error

	maxRetries := 30
	retryDelay := 2 * time.Second

	for i := 0; i < maxRetries; i++ {
		db, err = sql.Open(cfg.Database.Driver, cfg.DSN())
		if err != nil {
			logger.Warn("Failed to open database connection",
				zap.Int("attempt", i+1),
				zap.Error(err),
			)
			time.Sleep(retryDelay)
			continue
		}

		// Test connection
		if err = db.Ping(); err != nil {
			logger.Warn("Failed to ping database",
				zap.Int("attempt", i+1),
				zap.Error(err),
			)
			db.Close()
			time.Sleep(retryDelay)
			continue
		}

		if cfg.Database.Driver == "sqlite3" {
			// SQLite does not support concurrent writers
			db.SetMaxOpenConns(1)
			db.SetMaxIdleConns(1)
		} else {
			db.SetMaxOpenConns(25)
			db.SetMaxIdleConns(5)
			db.SetConnMaxLifetime(5 * time.Minute)
		}

		return db, nil
	}

	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", maxRetries, err)
}

// runMigrations runs database migrations for the configured driver
func runMigrations(db *sql.DB, cfg *config.Config, logger *zap.Logger) error {
	var (
		driver migratedb.Driver
		err    error
	)
	if cfg.Database.Driver == "sqlite3" {
		driver, err = migratesqlite.WithInstance(db, &migratesqlite.Config{})
	} else {
		driver, err = migratepostgres.WithInstance(db, &migratepostgres.Config{})
	}
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(cfg.MigrationsURL(), cfg.Database.Name, driver)
	if err != nil {
		return fmt.Errorf("failed to create migration instance: %w", err)
	}

	if err := m.Up(); err != nil {
		if err == migrate.ErrNoChange {
			logger.Info("No new migrations to apply")
			return nil
		}
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	logger.Info("Migrations applied successfully")
	return nil
}
