package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	OllamaURL   string
	OllamaModel string
	LLMTimeout  time.Duration

	LogMode     string
	StaticDir   string
	BodyLimitMB int
	UploadMaxMB int
}

// Load reads environment variables, optionally from a .env file if present.
func Load() Config {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	cfg := Config{
		Port:        getEnv("PORT", "3000"),
		OllamaURL:   getEnv("OLLAMA_URL", "http://localhost:11434"),
		OllamaModel: getEnv("OLLAMA_MODEL", "llama3"),
		LLMTimeout:  getEnvDuration("LLM_TIMEOUT", 60*time.Second),
		LogMode:     getEnv("LOG_MODE", "dev"),
		StaticDir:   getEnv("STATIC_DIR", "frontend"),
		BodyLimitMB: getEnvInt("BODY_LIMIT_MB", 50),
		UploadMaxMB: getEnvInt("UPLOAD_MAX_MB", 15),
	}
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}

// getEnvDuration accepts Go durations ("90s", "2m") and bare integers as seconds.
func getEnvDuration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil && d > 0 {
		return d
	}
	if n, err := strconv.Atoi(v); err == nil && n > 0 {
		return time.Duration(n) * time.Second
	}
	return def
}
