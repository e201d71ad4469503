package config

import (
	"errors"
	"os"
	"strings"
)

// Config holds all externalized settings. Built once at startup and passed
// explicitly into constructors.
type Config struct {
	Port              string
	DatabaseURL       string
	SessionSecret     string
	OpenWeatherAPIKey string
	UploadDir         string
	AllowedOrigins    []string
}

// Load reads configuration from the environment. DATABASE_URL and
// SESSION_SECRET are required; the weather API key is checked at request
// time so the rest of the app can run without it.
func Load() (*Config, error) {
	cfg := &Config{
		Port:              getenv("PORT", "8080"),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		SessionSecret:     os.Getenv("SESSION_SECRET"),
		OpenWeatherAPIKey: os.Getenv("OPENWEATHER_API_KEY"),
		UploadDir:         getenv("UPLOAD_DIR", "uploads"),
	}

	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
			}
		}
	}

	if cfg.DatabaseURL == "" {
		return nil, errors.New("DATABASE_URL is empty")
	}
	if cfg.SessionSecret == "" {
		return nil, errors.New("SESSION_SECRET is empty")
	}
	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
