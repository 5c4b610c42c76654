package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DatabaseDSN string
	JWTSecret   string
	CORSOrigin  string
	// Secure flag on the token cookie; only makes sense behind TLS.
	CookieSecure bool
}

// Load reads .env (if present) and builds the config from environment
// variables with local-dev defaults.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading config from environment")
	}

	return &Config{
		Port:         getenv("PORT", "8080"),
		DatabaseDSN:  getenv("DATABASE_DSN", "host=localhost user=postgres password=password dbname=jobportal port=5432 sslmode=disable"),
		JWTSecret:    getenv("JWT_SECRET", "dev-secret-change-me"),
		CORSOrigin:   getenv("CORS_ORIGIN", "http://localhost:3000"),
		CookieSecure: os.Getenv("APP_ENV") == "production",
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
