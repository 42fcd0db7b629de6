package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/alexanderramin/mooncyc/internal/scheduler"
	"github.com/joho/godotenv"
)

const (
	DefaultHTTPAddr = "127.0.0.1:8080"
	dataDirName     = ".mooncyc"
)

// AppConfig holds the process-wide settings. LLM settings live in llm.LoadConfig.
type AppConfig struct {
	DBPath   string
	Debug    bool
	LogDir   string
	HTTPAddr string
	Schedule scheduler.Options
}

// Load reads configuration from environment variables and a .env file in the
// working directory, if present. Real environment variables win over .env.
func Load() (*AppConfig, error) {
	_ = godotenv.Load()
	return fromEnv(os.Getenv)
}

func fromEnv(getenv func(string) string) (*AppConfig, error) {
	cfg := &AppConfig{
		HTTPAddr: DefaultHTTPAddr,
		Schedule: scheduler.DefaultOptions(),
	}

	home := ""
	if getenv("MOONCYC_DB") == "" || getenv("MOONCYC_LOG_DIR") == "" {
		h, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("finding home directory: %w", err)
		}
		home = h
	}

	cfg.DBPath = getenv("MOONCYC_DB")
	if cfg.DBPath == "" {
		cfg.DBPath = filepath.Join(home, dataDirName, "mooncyc.db")
	}
	cfg.LogDir = getenv("MOONCYC_LOG_DIR")
	if cfg.LogDir == "" {
		cfg.LogDir = filepath.Join(home, dataDirName, "logs")
	}

	if v := getenv("MOONCYC_DEBUG"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid MOONCYC_DEBUG: %w", err)
		}
		cfg.Debug = b
	}

	if v := strings.TrimSpace(getenv("MOONCYC_HTTP_ADDR")); v != "" {
		cfg.HTTPAddr = v
	}

	if v := getenv("MOONCYC_WINDOW_DAYS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid MOONCYC_WINDOW_DAYS %q: must be a positive integer", v)
		}
		cfg.Schedule.WindowDays = n
	}

	if v := getenv("MOONCYC_HEALTHY_LIMIT"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f <= 0 {
			return nil, fmt.Errorf("invalid MOONCYC_HEALTHY_LIMIT %q: must be a positive number", v)
		}
		cfg.Schedule.HealthyLimit = f
	}

	return cfg, nil
}
