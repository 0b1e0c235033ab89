// Package startup prepares the application server
package startup

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/ShantiHimalaya/shanti-go/internal/application/container"
	"github.com/ShantiHimalaya/shanti-go/internal/infrastructure/database"
	"github.com/ShantiHimalaya/shanti-go/internal/infrastructure/observability/logging"
	persistence "github.com/ShantiHimalaya/shanti-go/internal/infrastructure/persistence/database"
	"github.com/ShantiHimalaya/shanti-go/internal/infrastructure/site"
	"github.com/ShantiHimalaya/shanti-go/internal/presentation/http/server"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

// Initialize performs the complete startup sequence
func Initialize() error {
	setupLogging()

	start := time.Now().UTC()

	log.Println("Shanti Himalaya content engine starting...")

	// Step 1: Load environment and site configuration
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment as-is")
	}

	siteConfig := site.Load()
	if err := siteConfig.Validate(); err != nil {
		return fmt.Errorf("configuration invalid: %w", err)
	}

	// Step 2: Create the channeled logger
	logger, err := logging.NewChanneledLogger(logging.DefaultLoggerConfig())
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	logger.Startup().Info("Configuration validated", "site", siteConfig.SiteName, "database", siteConfig.DatabaseType)

	// Step 3: Open the database and ensure the schema
	driver, dsn := siteConfig.DSN()
	if driver == "sqlite3" {
		if err := os.MkdirAll(filepath.Dir(siteConfig.SQLitePath), 0755); err != nil {
			return fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := persistence.NewConnectionWithLogger(driver, dsn, logger)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	tableCreator := database.NewTableCreator()
	if err := tableCreator.CreateSchema(db.DB); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	if err := tableCreator.SeedInitialContent(db.DB); err != nil {
		return fmt.Errorf("failed to seed initial content: %w", err)
	}
	logger.Startup().Info("Database ready", "driver", driver)

	// Step 4: Build the dependency injection container
	mediaPath := mediaBasePath()
	appContainer, err := container.NewContainer(db.DB, siteConfig, logger, mediaPath)
	if err != nil {
		return fmt.Errorf("failed to build container: %w", err)
	}
	logger.Startup().Info("Dependency injection container created with singleton services")

	// Step 5: Start the admin change feed pump
	go appContainer.AdminFeed.Run()

	// Step 6: Start HTTP server
	port := siteConfig.Port
	httpServer := server.New(port, appContainer)

	gracefulShutdown := make(chan os.Signal, 1)
	signal.Notify(gracefulShutdown, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logger.System().Info("Starting HTTP server", "address", ":"+port)
		if err := httpServer.Start(); err != nil {
			logger.System().Error("HTTP server failed", "error", err.Error())
		}
	}()

	logger.Startup().Info("Application startup complete",
		"totalDuration", time.Since(start),
		"port", port)

	// Wait for shutdown signal
	<-gracefulShutdown
	logger.Shutdown().Info("Shutdown signal received, starting graceful shutdown...")

	shutdownStart := time.Now()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	logger.Shutdown().Info("Stopping HTTP server...")
	if err := httpServer.Stop(shutdownCtx); err != nil {
		logger.Shutdown().Error("Error during server shutdown", "error", err.Error())
	} else {
		logger.Shutdown().Info("HTTP server stopped successfully")
	}

	logger.Shutdown().Info("Application shutdown complete",
		"totalUptime", time.Since(start),
		"shutdownDuration", time.Since(shutdownStart))

	return nil
}

// mediaBasePath resolves where uploaded gallery files live.
func mediaBasePath() string {
	if path := os.Getenv("MEDIA_PATH"); path != "" {
		return path
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		return filepath.Join(homeDir, "shanti-go-server", "media")
	}
	return "media"
}

// setupLogging configures application logging
func setupLogging() {
	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	log.SetFlags(log.LstdFlags | log.Lshortfile)
}
