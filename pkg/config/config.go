package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds all application configuration
type Config struct {
	Server       ServerConfig
	Redis        RedisConfig
	GoogleSheets GoogleSheetsConfig
	Gemini       GeminiConfig
	Pricing      PricingConfig
	Lab          LabConfig
	OTEL         OTELConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Host string
	Port int
	Env  string
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// GoogleSheetsConfig holds the spreadsheet backend configuration.
type GoogleSheetsConfig struct {
	ServiceAccountEmail string
	PrivateKey          string
	SpreadsheetID       string
	ReadRange           string
	CacheTTLSeconds     int
}

// GeminiConfig holds the generative AI configuration
type GeminiConfig struct {
	APIKey         string
	Model          string
	RateLimitRPM   int
	RateLimitBurst int
}

// PricingConfig selects the uncovered-coverage rate preset
type PricingConfig struct {
	UncoveredPreset string
}

// LabConfig holds the letterhead used on generated quotes
type LabConfig struct {
	Name    string
	Address string
	Email   string
}

// OTELConfig holds OpenTelemetry configuration
type OTELConfig struct {
	ServiceName    string
	ServiceVersion string
	Endpoint       string
	Enabled        bool
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	return &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: getEnvAsInt("SERVER_PORT", 8080),
			Env:  getEnv("APP_ENV", "development"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnvAsInt("REDIS_PORT", 6379),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		GoogleSheets: GoogleSheetsConfig{
			ServiceAccountEmail: getEnv("GOOGLE_SERVICE_ACCOUNT_EMAIL", ""),
			PrivateKey:          getEnv("GOOGLE_PRIVATE_KEY", ""),
			SpreadsheetID:       getEnv("GOOGLE_SHEET_ID", ""),
			ReadRange:           getEnv("GOOGLE_SHEET_RANGE", "PardiniAtualizado!A:G"),
			CacheTTLSeconds:     getEnvAsInt("SHEET_CACHE_TTL_SECONDS", 30),
		},
		Gemini: GeminiConfig{
			APIKey:         getEnv("GEMINI_API_KEY", ""),
			Model:          getEnv("GEMINI_MODEL", "gemini-2.5-pro"),
			RateLimitRPM:   getEnvAsInt("GEMINI_RATE_LIMIT_RPM", 60),
			RateLimitBurst: getEnvAsInt("GEMINI_RATE_LIMIT_BURST", 5),
		},
		Pricing: PricingConfig{
			UncoveredPreset: getEnv("PRICING_UNCOVERED_PRESET", "pardini"),
		},
		Lab: LabConfig{
			Name:    getEnv("LAB_NAME", "Laboratório Lab"),
			Address: getEnv("LAB_ADDRESS", "SHLS 716 BLOCO E, CENTRO MÉDICO BRASILIA, ASA SUL"),
			Email:   getEnv("LAB_EMAIL", "lab@laboratoriolab.com.br"),
		},
		OTEL: OTELConfig{
			ServiceName:    getEnv("OTEL_SERVICE_NAME", "tabela-particular"),
			ServiceVersion: getEnv("OTEL_SERVICE_VERSION", "1.0.0"),
			Endpoint:       getEnv("OTEL_ENDPOINT", ""),
			Enabled:        getEnvAsBool("OTEL_ENABLED", false),
		},
	}, nil
}

// RedisAddr returns the Redis address
func (c *RedisConfig) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Configured reports whether the spreadsheet backend has credentials
func (c *GoogleSheetsConfig) Configured() bool {
	return c.ServiceAccountEmail != "" && c.PrivateKey != "" && c.SpreadsheetID != ""
}

// NormalizedPrivateKey returns the private key with literal "\n" sequences
// replaced by real newlines, as env vars usually flatten PEM blocks.
func (c *GoogleSheetsConfig) NormalizedPrivateKey() string {
	return strings.ReplaceAll(c.PrivateKey, `\n`, "\n")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
