package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
	StoreSQLite   = "sqlite"
)

type Config struct {
	App          AppConfig
	Store        StoreConfig
	Database     DatabaseConfig
	JWT          JWTConfig
	OAuth2Google OAuth2GoogleConfig
	GenAI        GenAIConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Port        int
	Env         string
	LogLevel    string
	FrontendURL string
}

// StoreConfig selects the record store backend.
type StoreConfig struct {
	Type         string
	SQLitePath   string
	SeedDemoData bool
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration time.Duration
}

type OAuth2GoogleConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	Scopes       []string
}

// Enabled reports whether any Google SSO value was supplied.
func (g OAuth2GoogleConfig) Enabled() bool {
	return g.ClientID != "" || g.ClientSecret != "" || g.RedirectURL != ""
}

// GenAIConfig configures the assistant's language model. An empty APIKey
// leaves the assistant offline.
type GenAIConfig struct {
	APIKey string
	Model  string
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file loaded, using process environment", "error", err)
	}

	config := &Config{}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:        appPort,
		Env:         getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
	}

	// Store configuration
	seed, err := strconv.ParseBool(getEnv("SEED_DEMO_DATA", "true"))
	if err != nil {
		return nil, fmt.Errorf("invalid SEED_DEMO_DATA: %w", err)
	}

	config.Store = StoreConfig{
		Type:         strings.ToLower(getEnv("STORE_TYPE", StoreMemory)),
		SQLitePath:   getEnv("SQLITE_PATH", "hris.db"),
		SeedDemoData: seed,
	}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "grx10-hris"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// JWT configuration
	accessExpiration, err := time.ParseDuration(getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_ACCESS_EXPIRATION_TIME: %w", err)
	}

	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: accessExpiration,
	}

	// OAuth2 Google Configuration
	config.OAuth2Google = OAuth2GoogleConfig{
		ClientID:     getEnv("CLIENT_ID", ""),
		ClientSecret: getEnv("CLIENT_SECRET", ""),
		RedirectURL:  getEnv("REDIRECT_URL", ""),
		Scopes:       getEnvSlice("SCOPES"),
	}

	config.GenAI = GenAIConfig{
		APIKey: getEnv("GEMINI_API_KEY", ""),
		Model:  getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return errors.New("JWT_SECRET_KEY is required")
	}
	if c.JWT.AccessExpiration <= 0 {
		return errors.New("JWT_ACCESS_EXPIRATION_TIME must be positive")
	}

	switch c.Store.Type {
	case StoreMemory:
	case StorePostgres:
		if c.Database.Password == "" {
			return errors.New("DB_PASSWORD is required when STORE_TYPE=postgres")
		}
	case StoreSQLite:
		if c.Store.SQLitePath == "" {
			return errors.New("SQLITE_PATH is required when STORE_TYPE=sqlite")
		}
	default:
		return fmt.Errorf("unknown STORE_TYPE %q", c.Store.Type)
	}

	if c.OAuth2Google.Enabled() {
		if c.OAuth2Google.ClientID == "" {
			return errors.New("CLIENT_ID is required")
		}
		if c.OAuth2Google.ClientSecret == "" {
			return errors.New("CLIENT_SECRET is required")
		}
		if c.OAuth2Google.RedirectURL == "" {
			return errors.New("REDIRECT_URL is required")
		}
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// SlogLevel maps LOG_LEVEL to a slog level, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.App.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvSlice(env string) []string {
	value := getEnv(env, "")
	if value == "" {
		return []string{}
	}
	var result []string
	for _, s := range strings.Split(value, ",") {
		if s = strings.TrimSpace(s); s != "" {
			result = append(result, s)
		}
	}
	return result
}
