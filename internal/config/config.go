package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config keeps runtime settings for the server.
type Config struct {
	Port             string
	DatabaseURL      string
	LogLevel         string
	Timezone         string
	PlanGenerateTime string
	CronSecret       string
}

// Load reads configuration from the environment with sane defaults,
// after loading a .env file when one is present.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Port:             strings.TrimSpace(os.Getenv("PORT")),
		DatabaseURL:      strings.TrimSpace(os.Getenv("DATABASE_URL")),
		LogLevel:         strings.TrimSpace(os.Getenv("LOG_LEVEL")),
		Timezone:         strings.TrimSpace(os.Getenv("TIMEZONE")),
		PlanGenerateTime: strings.TrimSpace(os.Getenv("PLAN_GENERATE_TIME")),
		CronSecret:       strings.TrimSpace(os.Getenv("CRON_SECRET")),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = "plates.db"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.Timezone == "" {
		cfg.Timezone = "UTC"
	}
	if cfg.PlanGenerateTime == "" {
		cfg.PlanGenerateTime = "05:00"
	}

	if cfg.CronSecret == "" {
		return cfg, fmt.Errorf("CRON_SECRET is required")
	}

	return cfg, nil
}
