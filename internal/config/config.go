package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	AppMode  string
	Port     string
	Database DatabaseConfig
	JWT      JWTConfig
	S3       S3Config
	Notify   NotifyConfig
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

// JWTConfig holds token signing configuration
type JWTConfig struct {
	Secret           string
	Issuer           string
	AccessTokenMins  int
	RefreshTokenDays int
}

// S3Config holds object storage configuration for voucher images
type S3Config struct {
	Region       string
	Bucket       string
	BaseEndpoint string
	AccessKey    string
	SecretKey    string
	VoucherDir   string
}

// NotifyConfig holds expiry notification configuration
type NotifyConfig struct {
	ExpiryNoticeDays int
	CronSpec         string
}

// Global config instance
var AppConfig *Config

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

	config := &Config{
		AppMode:  appMode,
		Port:     getEnv("PORT", "8080"),
		Database: loadDatabaseConfig(appMode),
		JWT:      loadJWTConfig(appMode),
		S3:       loadS3Config(appMode),
		Notify:   loadNotifyConfig(),
	}

	AppConfig = config

	log.Printf("✅ Configuration loaded successfully [MODE: %s]", appMode)
	return config, nil
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
		DBName:   getEnv(prefix+"DB_NAME", "gifthub"),
	}
}

// loadJWTConfig loads token config based on mode
func loadJWTConfig(mode string) JWTConfig {
	prefix := "DEV_"
	if mode == "prod" {
		prefix = "PROD_"
	}

	return JWTConfig{
		Secret:           getEnv(prefix+"JWT_SECRET", "default_secret"),
		Issuer:           getEnv("JWT_ISSUER", "gifthub"),
		AccessTokenMins:  getEnvInt("ACCESS_TOKEN_MINUTES", 30),
		RefreshTokenDays: getEnvInt("REFRESH_TOKEN_DAYS", 15),
	}
}

// loadS3Config loads object storage config based on mode
func loadS3Config(mode string) S3Config {
	prefix := "DEV_"
	if mode == "prod" {
		prefix = "PROD_"
	}

	return S3Config{
		Region:       getEnv("S3_REGION", "ap-northeast-2"),
		Bucket:       getEnv(prefix+"S3_BUCKET", "gifthub-vouchers"),
		BaseEndpoint: getEnv(prefix+"S3_ENDPOINT", ""),
		AccessKey:    getEnv(prefix+"S3_ACCESS_KEY", ""),
		SecretKey:    getEnv(prefix+"S3_SECRET_KEY", ""),
		VoucherDir:   getEnv("S3_VOUCHER_DIR", "voucher-images"),
	}
}

// loadNotifyConfig loads expiry notification config
func loadNotifyConfig() NotifyConfig {
	return NotifyConfig{
		ExpiryNoticeDays: getEnvInt("EXPIRY_NOTICE_DAYS", 3),
		CronSpec:         getEnv("EXPIRY_CRON_SPEC", "30 8 * * *"),
	}
}

// getEnv gets environment variable with default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an integer environment variable. A value that does not
// parse as a positive integer falls back to the default instead of
// silently becoming zero.
func getEnvInt(key string, defaultValue int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		log.Printf("⚠️ Invalid %s: '%s', using default %d", key, raw, defaultValue)
		return defaultValue
	}
	return value
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
		return "https://app.gifthub.kr"
	}
	return origins
}
