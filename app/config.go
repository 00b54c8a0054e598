package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultAxeTimeout        = 30 * time.Second
	defaultLighthouseTimeout = 120 * time.Second
)

// Config carries the environment-tunable paths and timeouts. A .env file
// in the working directory is honored when present.
type Config struct {
	AxeReportsDir        string
	AxeLogsDir           string
	AxeTimeout           time.Duration
	LighthouseReportsDir string
	LighthouseLogsDir    string
	LighthouseTimeout    time.Duration
}

func NewConfig() (*Config, error) {
	// Optional; most installs run on environment variables alone.
	_ = godotenv.Load()

	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("could not determine home directory: %w", err)
	}

	cfg := Config{}
	cfg.AxeReportsDir = envOr("AXE_REPORTS_DIR", filepath.Join(home, "axe_reports"))
	cfg.AxeLogsDir = filepath.Join(cfg.AxeReportsDir, "logs")
	cfg.LighthouseReportsDir = envOr("LIGHTHOUSE_REPORTS_DIR", filepath.Join(home, "lighthouse_reports"))
	cfg.LighthouseLogsDir = filepath.Join(cfg.LighthouseReportsDir, "logs")

	cfg.AxeTimeout, err = timeoutFromEnv("AXE_TIMEOUT_SECONDS", defaultAxeTimeout)
	if err != nil {
		return nil, err
	}

	cfg.LighthouseTimeout, err = timeoutFromEnv("LIGHTHOUSE_TIMEOUT_SECONDS", defaultLighthouseTimeout)
	if err != nil {
		return nil, err
	}

	return &cfg, nil
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return fallback
}

func timeoutFromEnv(key string, fallback time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}

	seconds, err := strconv.Atoi(value)
	if err != nil || seconds <= 0 {
		return 0, fmt.Errorf("%s: %q is not a positive number of seconds", key, value)
	}

	return time.Duration(seconds) * time.Second, nil
}
