package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port        string
	JWTSecret   string
	StatePath   string
	IdleTimeout time.Duration
}

func Load() *Config {
	return &Config{
		Port:        getEnv("PORT", "8081"),
		JWTSecret:   getEnv("JWT_SECRET", "dev-secret-change-in-production"),
		StatePath:   getEnv("STATE_PATH", "terminal.db"),
		IdleTimeout: getDurationSeconds("IDLE_TIMEOUT_SECONDS", 300),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDurationSeconds(key string, fallback int) time.Duration {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return time.Duration(n) * time.Second
		}
	}
	return time.Duration(fallback) * time.Second
}
