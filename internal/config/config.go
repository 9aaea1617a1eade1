package config

import (
	"os"
	"time"
)

type Config struct {
	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// JWT
	JWTSecret    string
	JWTExpiresIn time.Duration

	// Machine-to-machine shared secret (X-API-Key header)
	APIKey string

	// Seed accounts created on boot when absent
	AdminEmail      string
	AdminPassword   string
	ManagerEmail    string
	ManagerPassword string

	// Server
	Port        string
	CORSOrigins string
}

func Load() *Config {
	return &Config{
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "empleabilidad"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		JWTSecret:    getEnv("JWT_SECRET", ""),
		JWTExpiresIn: parseDuration(getEnv("JWT_EXPIRES_IN", "24h")),

		APIKey: getEnv("API_KEY", ""),

		AdminEmail:      getEnv("ADMIN_EMAIL", "admin@riwi.com"),
		AdminPassword:   getEnv("ADMIN_PASSWORD", ""),
		ManagerEmail:    getEnv("MANAGER_EMAIL", "manager@riwi.com"),
		ManagerPassword: getEnv("MANAGER_PASSWORD", ""),

		Port:        getEnv("PORT", "8080"),
		CORSOrigins: getEnv("CORS_ORIGINS", "*"),
	}
}

func (c *Config) DSN() string {
	return "host=" + c.DBHost +
		" user=" + c.DBUser +
		" password=" + c.DBPassword +
		" dbname=" + c.DBName +
		" port=" + c.DBPort +
		" sslmode=" + c.DBSSLMode +
		" TimeZone=UTC"
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func parseDuration(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 24 * time.Hour
	}
	return d
}
