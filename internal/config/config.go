// Package config loads process configuration from the environment, with a
// .env file picked up in development.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Host        string
	Port        string
	Env         string // "development" or "production"
	DatabaseURL string // empty means the in-memory store
	LogLevel    string
}

// Load reads .env if present, then the environment.
func Load() *Config {
	_ = godotenv.Load()
	return &Config{
		Host:        getEnv("HOST", "0.0.0.0"),
		Port:        getEnv("PORT", "8080"),
		Env:         getEnv("ENV", "development"),
		DatabaseURL: getEnv("DATABASE_URL", ""),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
	}
}

func (c *Config) Addr() string { return c.Host + ":" + c.Port }

func (c *Config) IsProduction() bool { return c.Env == "production" }

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
