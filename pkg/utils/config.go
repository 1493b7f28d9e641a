package utils

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

type Config struct {
	App        AppConfig
	HTTP       HTTPConfig
	Database   DatabaseConfig
	Mongo      MongoConfig
	Pagination PaginationConfig
	UI         UIConfig
}

type AppConfig struct {
	Name    string
	Env     string
	Port    string
	Debug   bool
	LogPath string
}

type HTTPConfig struct {
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	AllowedOrigins  []string
}

type DatabaseConfig struct {
	Driver            string
	Host              string
	Port              string
	Name              string
	User              string
	Password          string
	MaxConns          int32
	ConnectRetries    int
	ConnectRetryDelay time.Duration
}

type MongoConfig struct {
	URI        string
	Database   string
	Collection string
}

type PaginationConfig struct {
	DefaultLimit int
	MaxLimit     int
}

type UIConfig struct {
	SampleFallback bool
}

// LoadConfig reads an optional .env file (ENV_PATH overrides the location),
// then the process environment. Real environment variables win over the file.
func LoadConfig() (*Config, error) {
	envPath := os.Getenv("ENV_PATH")
	if envPath == "" {
		envPath = ".env"
	}
	if err := godotenv.Load(envPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load %s: %w", envPath, err)
	}

	v := viper.New()
	v.AutomaticEnv()

	// Set defaults
	v.SetDefault("APP_NAME", "movies-api")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("PORT", "8080")
	v.SetDefault("DEBUG", false)
	v.SetDefault("LOG_PATH", "logs/")
	v.SetDefault("HTTP_READ_TIMEOUT", "15s")
	v.SetDefault("HTTP_WRITE_TIMEOUT", "15s")
	v.SetDefault("SHUTDOWN_TIMEOUT", "10s")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("DB_DRIVER", DriverMongo)
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_NAME", "movies")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_CONNECT_RETRIES", 10)
	v.SetDefault("DB_CONNECT_RETRY_DELAY", "3s")
	v.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	v.SetDefault("MONGO_DB", "movies")
	v.SetDefault("MONGO_COLLECTION", "movie_active")
	v.SetDefault("PAGINATION_DEFAULT_LIMIT", 10)
	v.SetDefault("PAGINATION_MAX_LIMIT", 100)
	v.SetDefault("UI_SAMPLE_FALLBACK", true)

	config := &Config{
		App: AppConfig{
			Name:    v.GetString("APP_NAME"),
			Env:     v.GetString("APP_ENV"),
			Port:    v.GetString("PORT"),
			Debug:   v.GetBool("DEBUG"),
			LogPath: v.GetString("LOG_PATH"),
		},
		HTTP: HTTPConfig{
			ReadTimeout:     v.GetDuration("HTTP_READ_TIMEOUT"),
			WriteTimeout:    v.GetDuration("HTTP_WRITE_TIMEOUT"),
			ShutdownTimeout: v.GetDuration("SHUTDOWN_TIMEOUT"),
			AllowedOrigins:  splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
		Database: DatabaseConfig{
			Driver:            strings.ToLower(v.GetString("DB_DRIVER")),
			Host:              v.GetString("DB_HOST"),
			Port:              v.GetString("DB_PORT"),
			Name:              v.GetString("DB_NAME"),
			User:              v.GetString("DB_USER"),
			Password:          v.GetString("DB_PASS"),
			MaxConns:          v.GetInt32("DB_MAX_CONNS"),
			ConnectRetries:    v.GetInt("DB_CONNECT_RETRIES"),
			ConnectRetryDelay: v.GetDuration("DB_CONNECT_RETRY_DELAY"),
		},
		Mongo: MongoConfig{
			URI:        v.GetString("MONGO_URI"),
			Database:   v.GetString("MONGO_DB"),
			Collection: v.GetString("MONGO_COLLECTION"),
		},
		Pagination: PaginationConfig{
			DefaultLimit: v.GetInt("PAGINATION_DEFAULT_LIMIT"),
			MaxLimit:     v.GetInt("PAGINATION_MAX_LIMIT"),
		},
		UI: UIConfig{
			SampleFallback: v.GetBool("UI_SAMPLE_FALLBACK"),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks values viper cannot check on its own.
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case DriverMongo, DriverPostgres, DriverMemory:
	default:
		return fmt.Errorf("invalid DB_DRIVER %q: must be one of mongo, postgres, memory", c.Database.Driver)
	}

	if c.Pagination.DefaultLimit < 1 {
		return fmt.Errorf("invalid PAGINATION_DEFAULT_LIMIT %d: must be at least 1", c.Pagination.DefaultLimit)
	}
	if c.Pagination.MaxLimit < 0 {
		return fmt.Errorf("invalid PAGINATION_MAX_LIMIT %d: must not be negative", c.Pagination.MaxLimit)
	}
	if c.Pagination.MaxLimit > 0 && c.Pagination.DefaultLimit > c.Pagination.MaxLimit {
		return fmt.Errorf("PAGINATION_DEFAULT_LIMIT %d exceeds PAGINATION_MAX_LIMIT %d",
			c.Pagination.DefaultLimit, c.Pagination.MaxLimit)
	}
	if c.Database.ConnectRetries < 1 {
		return fmt.Errorf("invalid DB_CONNECT_RETRIES %d: must be at least 1", c.Database.ConnectRetries)
	}
	return nil
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
