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
	AppMode     string
	Port        string
	FrontendURL string
	Database    DatabaseConfig
	JWT         JWTConfig
	SMTP        SMTPConfig
	Gateway     GatewayConfig
	Admin       AdminConfig
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

// JWTConfig holds bearer token configuration
type JWTConfig struct {
	Secret   string
	TTLHours int
}

// SMTPConfig holds outbound mail configuration
type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

// GatewayConfig holds API gateway configuration
type GatewayConfig struct {
	Port           string
	UserServiceURL string
	PublicPrefixes []string
}

// AdminConfig holds the seeded administrator account
type AdminConfig struct {
	Email    string
	Password string
	OrgName  string
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
		AppMode:     appMode,
		Port:        getEnv("PORT", "8081"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:8080"),
		Database:    loadDatabaseConfig(appMode),
		JWT:         loadJWTConfig(appMode),
		SMTP:        loadSMTPConfig(),
		Gateway:     loadGatewayConfig(),
		Admin:       loadAdminConfig(),
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
		DBName:   getEnv(prefix+"DB_NAME", "investhub"),
	}
}

// loadJWTConfig loads bearer token config based on mode
func loadJWTConfig(mode string) JWTConfig {
	prefix := "DEV_"
	if mode == "prod" {
		prefix = "PROD_"
	}

	ttlHours, _ := strconv.Atoi(getEnv("JWT_TTL_HOURS", "24"))

	return JWTConfig{
		Secret:   getEnv(prefix+"JWT_SECRET", "default_secret"),
		TTLHours: ttlHours,
	}
}

// loadSMTPConfig loads outbound mail config
func loadSMTPConfig() SMTPConfig {
	port, _ := strconv.Atoi(getEnv("SMTP_PORT", "587"))

	return SMTPConfig{
		Host:     getEnv("SMTP_HOST", "localhost"),
		Port:     port,
		User:     getEnv("SMTP_USER", ""),
		Password: getEnv("SMTP_PASS", ""),
		From:     getEnv("SMTP_FROM", "noreply@investhub.local"),
	}
}

// loadGatewayConfig loads API gateway config
func loadGatewayConfig() GatewayConfig {
	prefixes := getEnv("GATEWAY_PUBLIC_PREFIXES",
		"/api/auth,/api/users,/api/gateway,/swagger,/health")

	return GatewayConfig{
		Port:           getEnv("GATEWAY_PORT", "8080"),
		UserServiceURL: getEnv("USER_SERVICE_URL", "http://localhost:8081"),
		PublicPrefixes: splitAndTrim(prefixes),
	}
}

// loadAdminConfig loads the seeded administrator account
func loadAdminConfig() AdminConfig {
	return AdminConfig{
		Email:    getEnv("ADMIN_EMAIL", "admin@investhub.local"),
		Password: getEnv("ADMIN_PASSWORD", ""),
		OrgName:  getEnv("ADMIN_ORG_NAME", "InvestHub"),
	}
}

// getEnv gets environment variable with default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// splitAndTrim splits a comma-separated list, trimming whitespace and
// dropping empty entries
func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
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
		return c.FrontendURL
	}
	return origins
}
