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
	AppMode string
	Port    string
	Data    DataConfig
	JWT     JWTConfig
	Cookie  CookieConfig
	Logger  LoggerConfig
}

// DataConfig points at the on-disk JSON dataset
type DataConfig struct {
	StaffFile string
	LoanFile  string
}

// JWTConfig holds session token configuration
type JWTConfig struct {
	Secret       string
	TokenTTLMins int
}

// CookieConfig holds cookie configuration
type CookieConfig struct {
	Secure   bool
	SameSite string
	Domain   string
}

// LoggerConfig configures logging behavior
type LoggerConfig struct {
	Level string
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

	ttlMins, _ := strconv.Atoi(getEnv("TOKEN_TTL_MINUTES", "60"))
	if ttlMins <= 0 {
		ttlMins = 60
	}

	secure, _ := strconv.ParseBool(getEnv("COOKIE_SECURE", "false"))

	config := &Config{
		AppMode: appMode,
		Port:    getEnv("PORT", "3000"),
		Data: DataConfig{
			StaffFile: getEnv("STAFF_DATA_FILE", "data/staff.json"),
			LoanFile:  getEnv("LOAN_DATA_FILE", "data/loans.json"),
		},
		JWT: JWTConfig{
			Secret:       getEnv("JWT_SECRET", "default_secret"),
			TokenTTLMins: ttlMins,
		},
		Cookie: CookieConfig{
			Secure:   secure,
			SameSite: getEnv("COOKIE_SAMESITE", "lax"),
			Domain:   getEnv("COOKIE_DOMAIN", ""),
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}

	// Set global config
	AppConfig = config

	return config, nil
}

// TokenTTL returns the session token lifetime.
func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.JWT.TokenTTLMins) * time.Minute
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
	if origins == "" && c.IsDev() {
		return "*"
	}
	return origins
}
