// Package config provides runtime configuration values for the client.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds the knobs for talking to the marketplace API.
type Config struct {
	APIBaseURL  string
	HTTPTimeout time.Duration
	AccessToken string
	LogLevel    string
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoienv(key string, def int) int {
	v := getenv(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func durenvs(key string, defSec int) time.Duration {
	sec := atoienv(key, defSec)
	return time.Duration(sec) * time.Second
}

// Load collects configuration from environment with defaults.
func Load() Config {
	return Config{
		APIBaseURL:  getenv("API_BASE_URL", "http://localhost:5189"),
		HTTPTimeout: durenvs("HTTP_TIMEOUT", 15),
		AccessToken: getenv("ACCESS_TOKEN", ""),
		LogLevel:    getenv("LOG_LEVEL", "info"),
	}
}
