package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv   string
	LogLevel string

	APIBaseURL     string
	RequestTimeout time.Duration
	SessionFile    string

	// DevAPIPort is only read by the devapi binary.
	DevAPIPort int
}

func Load() Config {
	// A .env in the working directory is a local-development convenience;
	// real environment variables win.
	_ = godotenv.Load()

	return Config{
		AppEnv:         getEnv("APP_ENV", "dev"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		APIBaseURL:     getEnv("STOREFRONT_API_URL", "http://localhost:9998"),
		RequestTimeout: getEnvDuration("STOREFRONT_HTTP_TIMEOUT", 10*time.Second),
		SessionFile:    getEnv("STOREFRONT_SESSION_FILE", defaultSessionFile()),
		DevAPIPort:     getEnvInt("DEVAPI_PORT", 9998),
	}
}

func defaultSessionFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".storefront-session.json"
	}
	return filepath.Join(dir, "storefront", "session.json")
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)

	if v == "" {
		return def
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}

	return n
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)

	if v == "" {
		return def
	}

	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}

	return d
}
