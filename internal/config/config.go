package config

import (
	"os"
	"strconv"
	"time"
)

const (
	// DriverSQLite selects the embedded SQLite engine (default).
	DriverSQLite = "sqlite"
	// DriverPostgres selects a PostgreSQL server reached through pgx.
	DriverPostgres = "postgres"
)

// DatabaseConfig holds storage engine and connection pool settings.
// Host/Port/User/Password/Name/SSLMode are only read when Driver is DriverPostgres.
type DatabaseConfig struct {
	Driver             string
	Path               string
	BusyTimeoutMS      int
	Host               string
	Port               string
	User               string
	Password           string
	Name               string
	SSLMode            string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeSec int
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	AppHost            string
	Port               string
	ServiceName        string
	PublicURL          string
	Timezone           string
	LogLevel           string
	LogPretty          bool
	ShutdownTimeoutSec int
	Database           DatabaseConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	appHost := getEnv("APP_HOST", "localhost:5000")
	return &AppConfig{
		AppHost:            appHost,
		Port:               getEnv("PORT", "5000"),
		ServiceName:        getEnv("SERVICE_NAME", "Bookstore API"),
		PublicURL:          getEnv("PUBLIC_URL", "http://"+appHost),
		Timezone:           getEnv("APP_TIMEZONE", "UTC"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		LogPretty:          getEnvBool("LOG_PRETTY", false),
		ShutdownTimeoutSec: getEnvInt("SHUTDOWN_TIMEOUT_SEC", 10),
		Database: DatabaseConfig{
			Driver:             getEnv("DB_DRIVER", DriverSQLite),
			Path:               getEnv("DB_PATH", "bookstore.db"),
			BusyTimeoutMS:      getEnvInt("DB_BUSY_TIMEOUT_MS", 5000),
			Host:               getEnv("DB_HOST", ""),
			Port:               getEnv("DB_PORT", "5432"),
			User:               getEnv("DB_USER", ""),
			Password:           getEnv("DB_PASSWORD", ""),
			Name:               getEnv("DB_NAME", ""),
			SSLMode:            getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetimeSec: getEnvInt("DB_CONN_MAX_LIFETIME_SEC", 300),
		},
	}
}

// Location resolves Timezone, falling back to UTC when it is unknown.
func (c *AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// BooksURL is the canonical collection URL advertised by the health endpoint.
func (c *AppConfig) BooksURL() string {
	return c.PublicURL + "/api/v1/books"
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}
