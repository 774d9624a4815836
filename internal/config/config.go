package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	GinMode     string
	Database    DatabaseConfig
	JWT         JWTConfig
	CORSOrigins []string
}

type DatabaseConfig struct {
	URL string
}

type JWTConfig struct {
	Secret   string
	TTLHours int
}

func Load() (*Config, error) {
	godotenv.Load()

	corsStr := os.Getenv("CORS_ORIGINS")
	corsOrigins := []string{}
	if corsStr != "" {
		corsOrigins = strings.Split(corsStr, ",")
		for i := range corsOrigins {
			corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
		}
	}

	ttlHours, err := strconv.Atoi(getEnv("TOKEN_TTL_HOURS", "24"))
	if err != nil || ttlHours <= 0 {
		ttlHours = 24
	}

	return &Config{
		Port:    getEnv("PORT", "8080"),
		GinMode: getEnv("GIN_MODE", "debug"),
		Database: DatabaseConfig{
			URL: getEnv("DATABASE_URL", ""),
		},
		JWT: JWTConfig{
			Secret:   getEnv("JWT_SECRET", ""),
			TTLHours: ttlHours,
		},
		CORSOrigins: corsOrigins,
	}, nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
