package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	MongoURI      string
	MongoDB       string
	SessionSecret string
	AdminEmail    string
	AppEnv        string
	Timezone      string
	MinioEndpoint string
	MinioAccess   string
	MinioSecret   string
	MinioBucket   string
}

// Load reads the environment (and a .env file if present) into a Config.
// SESSION_SECRET has no fallback: issuing or verifying a session without it
// would be meaningless, so startup fails instead.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	secret, exists := os.LookupEnv("SESSION_SECRET")
	if !exists || secret == "" {
		return nil, fmt.Errorf("SESSION_SECRET is required")
	}

	return &Config{
		Port:          getEnv("PORT", "8080"),
		MongoURI:      getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:       getEnv("MONGO_DB", "aulaplus"),
		SessionSecret: secret,
		AdminEmail:    getEnv("ADMIN_EMAIL", ""),
		AppEnv:        normalizeEnv(getEnv("APP_ENV", "production")),
		Timezone:      getEnv("TIMEZONE", "America/Lima"),
		MinioEndpoint: getEnv("MINIO_ENDPOINT", "localhost:9000"),
		MinioAccess:   getEnv("MINIO_ACCESS_KEY", "minioadmin"),
		MinioSecret:   getEnv("MINIO_SECRET_KEY", "minioadmin"),
		MinioBucket:   getEnv("MINIO_BUCKET", "qr-codes"),
	}, nil
}

// Production controls cookie Secure attributes among other things.
func (c *Config) Production() bool {
	return c.AppEnv == "production"
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}

func normalizeEnv(value string) string {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "dev", "develop", "development", "local":
		return "development"
	case "prod", "production":
		return "production"
	default:
		return strings.ToLower(strings.TrimSpace(value))
	}
}
