package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/tair/disease-surveillance/pkg/database"
	"github.com/tair/disease-surveillance/pkg/tracing"
)

const devJWTSecret = "dev-secret-change-me"

// Config holds the dashboard service configuration
type Config struct {
	ServiceName string
	Environment string
	LogLevel    string

	HTTPPort       string
	GRPCPort       string
	RequestTimeout time.Duration
	CORSOrigins    []string

	JWTSecret string

	// AutoMigrate creates the schema on start. Local development only.
	AutoMigrate bool

	Database database.Config
	Tracing  tracing.Config
}

// IsDevelopment reports whether the service runs in a development environment
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// Validate rejects configurations that are unsafe to run
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}
	if !c.IsDevelopment() && c.JWTSecret == devJWTSecret {
		return errors.New("JWT_SECRET must be set outside development")
	}
	if c.RequestTimeout <= 0 {
		return errors.New("REQUEST_TIMEOUT must be positive")
	}
	return nil
}

// LoadConfig loads the service configuration from environment variables
func LoadConfig() *Config {
	serviceName := getEnv("SERVICE_NAME", "dashboard-service")
	environment := getEnv("ENVIRONMENT", "development")

	return &Config{
		ServiceName:    serviceName,
		Environment:    environment,
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		HTTPPort:       getEnv("HTTP_PORT", "8080"),
		GRPCPort:       getEnv("GRPC_PORT", "9090"),
		RequestTimeout: getDuration("REQUEST_TIMEOUT", 30*time.Second),
		CORSOrigins:    getList("CORS_ALLOWED_ORIGINS", []string{"*"}),
		JWTSecret:      getEnv("JWT_SECRET", devJWTSecret),
		AutoMigrate:    getBool("DB_AUTO_MIGRATE", false),
		Database: database.Config{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "postgres"),
			Password:        getEnv("DB_PASSWORD", "postgres"),
			DBName:          getEnv("DB_NAME", "surveillance"),
			SSLMode:         getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:    getInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute),
			LogQueries:      getBool("DB_LOG_QUERIES", false),
		},
		Tracing: tracing.Config{
			ServiceName:    serviceName,
			ServiceVersion: getEnv("SERVICE_VERSION", "1.0.0"),
			Environment:    environment,
			JaegerEndpoint: getEnv("JAEGER_ENDPOINT", "http://localhost:14268/api/traces"),
			SampleRatio:    getFloat("TRACE_SAMPLE_RATIO", 1),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getInt(key string, defaultValue int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return v
	}
	return defaultValue
}

func getFloat(key string, defaultValue float64) float64 {
	if v, err := strconv.ParseFloat(os.Getenv(key), 64); err == nil {
		return v
	}
	return defaultValue
}

func getBool(key string, defaultValue bool) bool {
	if v, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return v
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	if v, err := time.ParseDuration(os.Getenv(key)); err == nil {
		return v
	}
	return defaultValue
}

func getList(key string, defaultValue []string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
