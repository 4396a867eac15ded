package config

import (
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
)

// StoreMode selects which persistence adapter the client-side ledger uses.
type StoreMode string

const (
	// StoreModeLocal keeps records in a self-contained SQLite slot store.
	StoreModeLocal StoreMode = "local"
	// StoreModeRemote delegates to the authenticated MoneyViewer API.
	StoreModeRemote StoreMode = "remote"
)

// Config holds application configuration
type Config struct {
	// Server
	Port string

	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// JWT
	JWTSecret        string
	JWTExpirationDur time.Duration

	// Client
	StoreMode      StoreMode
	LocalStorePath string
	APIBaseURL     string
	TokenPath      string
}

var appConfig *Config

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if not already loaded
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	config := &Config{
		// Server
		Port: getEnv("PORT", "8080"),

		// Database
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "moneyviewer"),
		DBPassword: getEnv("DB_PASSWORD", "moneyviewer"),
		DBName:     getEnv("DB_NAME", "moneyviewer"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		// JWT
		JWTSecret: getEnv("JWT_SECRET", "fallback-secret-key-for-dev-only"),

		// Client
		StoreMode:      StoreMode(getEnv("STORE_MODE", string(StoreModeLocal))),
		LocalStorePath: getEnv("LOCAL_STORE_PATH", defaultClientPath("ledger.db")),
		APIBaseURL:     getEnv("API_BASE_URL", "http://localhost:8080"),
		TokenPath:      getEnv("TOKEN_PATH", defaultClientPath("token")),
	}

	// Parse JWT expiration duration
	expStr := getEnv("JWT_EXPIRES_IN", "24h")
	expDur, err := time.ParseDuration(expStr)
	if err != nil {
		log.Printf("Warning: invalid JWT_EXPIRES_IN value '%s', falling back to 24h\n", expStr)
		expDur = 24 * time.Hour
	}
	config.JWTExpirationDur = expDur

	appConfig = config
	return config, nil
}

// Get returns the application configuration
func Get() *Config {
	if appConfig == nil {
		var err error
		appConfig, err = Load()
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}
	return appConfig
}

// defaultClientPath places client-side state under ~/.moneyviewer.
func defaultClientPath(name string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return name
	}
	return filepath.Join(home, ".moneyviewer", name)
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
