package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port string
	Env  string

	// Gemini AI
	GeminiAPIKey string
	GeminiModel  string

	// Rate limiting (fixed window, per client IP)
	RateLimitMax    int
	RateLimitWindow time.Duration

	// Frontend
	FrontendURL string
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	cfg := &Config{
		Port:            getEnvOrDefault("PORT", "8080"),
		Env:             getEnvOrDefault("ENV", "development"),
		GeminiAPIKey:    os.Getenv("GEMINI_API_KEY"),
		GeminiModel:     getEnvOrDefault("GEMINI_MODEL", "gemini-2.0-flash"),
		RateLimitMax:    getEnvAsIntOrDefault("RATE_LIMIT_MAX_REQUESTS", 20),
		RateLimitWindow: time.Duration(getEnvAsIntOrDefault("RATE_LIMIT_WINDOW_MINUTES", 60)) * time.Minute,
		FrontendURL:     getEnvOrDefault("FRONTEND_URL", "http://localhost:3000"),
	}

	return cfg
}

// AIEnabled reports whether a Gemini credential is configured. A missing
// key is a supported deployment state, not a startup failure: every
// capability serves canned guidance instead of calling the model.
func (c *Config) AIEnabled() bool {
	return c.GeminiAPIKey != ""
}

func getEnvOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func getEnvAsIntOrDefault(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return n
}
