package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config carries the environment-driven settings of the web frontend.
// The polling cadence and checkout-context TTL are product policy, not
// structure, so they are tunable here rather than hard-coded.
type Config struct {
	Port       string
	APIBaseURL string

	// DevAuth switches the login target of gated pages to the dev-auth page.
	DevAuth bool

	PollInterval       time.Duration
	PollMaxAttempts    int
	CheckoutContextTTL time.Duration
}

func Load() Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}

	return Config{
		Port:               getEnv("PORT", "8080"),
		APIBaseURL:         getEnv("IRONMIND_API_BASE_URL", "http://localhost:8000/api/v1"),
		DevAuth:            getEnv("IRONMIND_DEV_AUTH", "") == "1",
		PollInterval:       getDurationEnv("IRONMIND_POLL_INTERVAL", 1500*time.Millisecond),
		PollMaxAttempts:    getIntEnv("IRONMIND_POLL_MAX_ATTEMPTS", 15),
		CheckoutContextTTL: getDurationEnv("IRONMIND_CHECKOUT_CONTEXT_TTL", 30*time.Minute),
	}
}

func getEnv(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getIntEnv(key string, fallback int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Invalid value %q for %s, using default %d", value, key, fallback)
		return fallback
	}
	return parsed
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}

	parsed, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("Invalid value %q for %s, using default %s", value, key, fallback)
		return fallback
	}
	return parsed
}
