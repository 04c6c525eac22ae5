package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	AppMode    string
	Port       string
	Database   DatabaseConfig
	Session    SessionConfig
	Master     MasterConfig
	Cloudinary CloudinaryConfig
	Drive      DriveConfig
	Backup     BackupConfig
	Upload     UploadConfig
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

// SessionConfig holds session token configuration
type SessionConfig struct {
	Secret string
	TTL    time.Duration
}

// MasterConfig identifies the super-administrator. It is never stored in the database.
type MasterConfig struct {
	Username string
	Password string
}

// CloudinaryConfig holds receipt and profile photo storage credentials
type CloudinaryConfig struct {
	CloudName string
	APIKey    string
	APISecret string
}

// Enabled reports whether all credentials are present
func (c CloudinaryConfig) Enabled() bool {
	return c.CloudName != "" && c.APIKey != "" && c.APISecret != ""
}

// DriveConfig holds Google Drive OAuth credentials for backup uploads
type DriveConfig struct {
	ClientID     string
	ClientSecret string
	RefreshToken string
	FolderID     string
}

// Enabled reports whether the OAuth credentials are present
func (c DriveConfig) Enabled() bool {
	return c.ClientID != "" && c.ClientSecret != "" && c.RefreshToken != ""
}

// BackupConfig holds automatic backup configuration
type BackupConfig struct {
	CronSecret string
	Schedule   string
}

// UploadConfig bounds auxiliary uploads
type UploadConfig struct {
	Timeout time.Duration
}

// Load reads configuration from .env file and environment variables
func Load() (*Config, error) {
	// Load .env file (ignore error if file doesn't exist in production)
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	appMode := strings.TrimSpace(getEnv("APP_MODE", "dev"))
	if appMode != "dev" && appMode != "prod" {
		return nil, fmt.Errorf("invalid APP_MODE: '%s' (must be 'dev' or 'prod')", appMode)
	}

	sessionHours, err := strconv.Atoi(getEnv("SESSION_HOURS", "24"))
	if err != nil || sessionHours < 1 {
		return nil, fmt.Errorf("invalid SESSION_HOURS: '%s'", os.Getenv("SESSION_HOURS"))
	}

	uploadSecs, err := strconv.Atoi(getEnv("UPLOAD_TIMEOUT_SECONDS", "8"))
	if err != nil || uploadSecs < 1 {
		return nil, fmt.Errorf("invalid UPLOAD_TIMEOUT_SECONDS: '%s'", os.Getenv("UPLOAD_TIMEOUT_SECONDS"))
	}

	config := &Config{
		AppMode:  appMode,
		Port:     getEnv("PORT", "3000"),
		Database: loadDatabaseConfig(appMode),
		Session: SessionConfig{
			Secret: getEnv("SECRET_KEY", "iadev_secret_default"),
			TTL:    time.Duration(sessionHours) * time.Hour,
		},
		Master: MasterConfig{
			Username: strings.TrimSpace(getEnv("MASTER_USER", "admin")),
			Password: strings.TrimSpace(getEnv("MASTER_PASS", "admin")),
		},
		Cloudinary: CloudinaryConfig{
			CloudName: getEnv("CLOUDINARY_CLOUD_NAME", ""),
			APIKey:    getEnv("CLOUDINARY_API_KEY", ""),
			APISecret: getEnv("CLOUDINARY_API_SECRET", ""),
		},
		Drive: DriveConfig{
			ClientID:     getEnv("GOOGLE_CLIENT_ID", ""),
			ClientSecret: getEnv("GOOGLE_CLIENT_SECRET", ""),
			RefreshToken: getEnv("GOOGLE_REFRESH_TOKEN", ""),
			FolderID:     getEnv("GOOGLE_DRIVE_FOLDER_ID", ""),
		},
		Backup: BackupConfig{
			CronSecret: getEnv("CRON_SECRET", ""),
			Schedule:   strings.TrimSpace(getEnv("BACKUP_SCHEDULE", "")),
		},
		Upload: UploadConfig{
			Timeout: time.Duration(uploadSecs) * time.Second,
		},
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	log.Printf("✅ Configuration loaded successfully [MODE: %s]", appMode)
	return config, nil
}

// Validate checks invariants the rest of the application relies on
func (c *Config) Validate() error {
	if c.Master.Username == "" || c.Master.Password == "" {
		return fmt.Errorf("MASTER_USER and MASTER_PASS must not be blank")
	}
	// member ids are numeric; a numeric master name would be ambiguous in the token id claim
	if _, err := strconv.ParseUint(c.Master.Username, 10, 64); err == nil {
		return fmt.Errorf("MASTER_USER must not be purely numeric")
	}
	if c.Session.Secret == "" {
		return fmt.Errorf("SECRET_KEY must not be blank")
	}
	if c.IsProd() && c.Session.Secret == "iadev_secret_default" {
		log.Println("⚠️ Warning: SECRET_KEY is using the default value in production")
	}
	return nil
}

// loadDatabaseConfig loads database config based on mode
func loadDatabaseConfig(mode string) DatabaseConfig {
	prefix := "DEV_"
	if mode == "prod" {
		prefix = "PROD_"
	}

	return DatabaseConfig{
		Host:     getEnv(prefix+"DB_HOST", "localhost"),
		Port:     getEnv(prefix+"DB_PORT", "3306"),
		User:     getEnv(prefix+"DB_USER", "root"),
		Password: getEnv(prefix+"DB_PASS", ""),
		DBName:   getEnv(prefix+"DB_NAME", "iadev"),
	}
}

// getEnv gets environment variable with default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// IsDev returns true if running in development mode
func (c *Config) IsDev() bool {
	return c.AppMode == "dev"
}

// IsProd returns true if running in production mode
func (c *Config) IsProd() bool {
	return c.AppMode == "prod"
}

// GetAllowedOrigins returns allowed origins for CORS
func (c *Config) GetAllowedOrigins() string {
	origins := getEnv("ALLOWED_ORIGINS", "")
	if origins == "" {
		if c.IsDev() {
			return "*"
		}
		return "https://iadev-dashboard.vercel.app"
	}
	return origins
}
