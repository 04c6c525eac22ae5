package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"iadev-dashboard/internal/adapters/http/middleware"
	"iadev-dashboard/internal/adapters/http/routes"
	"iadev-dashboard/internal/adapters/persistence/models"
	"iadev-dashboard/internal/adapters/storage"
	"iadev-dashboard/internal/config"
	"iadev-dashboard/internal/core/services"

	"github.com/gofiber/fiber/v2"

	_ "iadev-dashboard/docs" // Swagger docs
)

// @title IADEV Dashboard API
// @version 1.0
// @description Church administration dashboard API: members, ledger, organization profile and backups.

// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer config.CloseDatabase(db)

	// Auto migrate (creates tables if not exist)
	if err := models.AutoMigrate(db); err != nil {
		log.Fatalf("❌ Failed to auto migrate: %v", err)
	}
	log.Println("✅ Database migration completed")

	svc := routes.NewServices(db, cfg, mediaStore(cfg), backupUploader(cfg))

	// Automatic backups (optional, the /api/backup/auto endpoint also serves external schedulers)
	if cfg.Backup.Schedule != "" {
		scheduler, err := services.NewBackupScheduler(svc.Backup, cfg.Backup.Schedule)
		if err != nil {
			log.Fatalf("❌ %v", err)
		}
		scheduler.Start()
		defer scheduler.Stop()
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "IADEV Dashboard API v1.0",
		ErrorHandler: middleware.CustomErrorHandler,
		BodyLimit:    10 * 1024 * 1024,
	})

	// Setup middlewares
	middleware.Setup(app, cfg)

	// Setup routes
	routes.Setup(app, db, cfg, svc)

	// Graceful shutdown
	go gracefulShutdown(app)

	// Start server
	log.Printf("🚀 Server starting on port %s [MODE: %s]", cfg.Port, cfg.AppMode)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Printf("❌ Failed to start server: %v", err)
	}
}

// mediaStore selects the receipt and photo store
func mediaStore(cfg *config.Config) services.MediaStore {
	if !cfg.Cloudinary.Enabled() {
		log.Println("⚠️ Cloudinary not configured, uploads will be skipped")
		return storage.DisabledMediaStore{}
	}
	store, err := storage.NewCloudinaryStore(cfg.Cloudinary.CloudName, cfg.Cloudinary.APIKey, cfg.Cloudinary.APISecret)
	if err != nil {
		log.Printf("⚠️ Cloudinary unavailable, uploads will be skipped: %v", err)
		return storage.DisabledMediaStore{}
	}
	return store
}

// backupUploader selects the bulk-file store for backups
func backupUploader(cfg *config.Config) services.BackupUploader {
	if !cfg.Drive.Enabled() {
		log.Println("⚠️ Google Drive not configured, backups will fail")
		return storage.DisabledUploader{}
	}
	uploader, err := storage.NewDriveUploader(context.Background(),
		cfg.Drive.ClientID,
		cfg.Drive.ClientSecret,
		cfg.Drive.RefreshToken,
		cfg.Drive.FolderID,
	)
	if err != nil {
		log.Printf("⚠️ Google Drive unavailable, backups will fail: %v", err)
		return storage.DisabledUploader{}
	}
	return uploader
}

// gracefulShutdown handles graceful shutdown
func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("❌ Error during shutdown: %v", err)
	}
	log.Println("✅ Server stopped gracefully")
}
