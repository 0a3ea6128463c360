package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment variables.
// It is resolved once at startup and injected into every component that needs
// it; nothing reads the environment after Load returns.
type Config struct {
	ServerPort string

	// AuthAPIURL is the base URL of the authentication API the request gate
	// and the client session store talk to. For a single-process deployment
	// this is the server's own public address.
	AuthAPIURL     string
	AuthAPITimeout time.Duration

	MySQLDSN  string
	RedisAddr string
	RedisDB   int
	RedisPass string

	JWTSecret     string
	SessionExpiry time.Duration

	// StorageAPIURL is the external file-hosting API photo uploads are
	// forwarded to. Upload mechanics live entirely on that side.
	StorageAPIURL string
	StorageAPIKey string

	SwaggerHost string
}

// Load builds Config from environment with sensible defaults.
// A .env file in the working directory is honored when present.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("config: skipping .env: %v", err)
	}

	return &Config{
		ServerPort:     getEnv("SERVER_PORT", "8080"),
		AuthAPIURL:     getEnv("AUTH_API_URL", "http://localhost:8080"),
		AuthAPITimeout: getEnvDuration("AUTH_API_TIMEOUT", 3*time.Second),
		MySQLDSN:       getEnv("MYSQL_DSN", "user:password@tcp(localhost:3306)/offwhite?charset=utf8mb4&parseTime=True&loc=Local"),
		RedisAddr:      getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:        getEnvInt("REDIS_DB", 0),
		RedisPass:      os.Getenv("REDIS_PASSWORD"),
		JWTSecret:      getEnv("JWT_SECRET", "change-me"),
		SessionExpiry:  getEnvDuration("SESSION_EXPIRY", 7*24*time.Hour),
		StorageAPIURL:  getEnv("STORAGE_API_URL", "https://api.imgbb.com/1/upload"),
		StorageAPIKey:  os.Getenv("STORAGE_API_KEY"),
		SwaggerHost:    os.Getenv("SWAGGER_HOST"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			return parsed
		}
	}
	return def
}
