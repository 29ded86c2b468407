package config

import (
	"os"
)

type Config struct {
	DBDriver      string
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	DBDSN         string
	JWTSecret     string
	GinMode       string
	Port          string
	OwnerEmail    string
	OwnerName     string
	OwnerPassword string
}

func Load() *Config {
	return &Config{
		DBDriver:      getEnv("DB_DRIVER", "mysql"),
		DBHost:        getEnv("DB_HOST", "localhost"),
		DBPort:        getEnv("DB_PORT", "3306"),
		DBUser:        getEnv("DB_USER", "llum"),
		DBPassword:    getEnv("DB_PASSWORD", "llum"),
		DBName:        getEnv("DB_NAME", "llum_portfolio"),
		DBDSN:         getEnv("DB_DSN", ""),
		JWTSecret:     getEnv("JWT_SECRET", "default-secret-key-change-me"),
		GinMode:       getEnv("GIN_MODE", "debug"),
		Port:          getEnv("PORT", "3001"),
		OwnerEmail:    getEnv("OWNER_EMAIL", "admin@llum.com"),
		OwnerName:     getEnv("OWNER_NAME", "Admin"),
		OwnerPassword: getEnv("OWNER_PASSWORD", ""),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
