package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	App   AppConfig
	Paths PathConfig
	Fetch FetchConfig
	Apply ApplyConfig
}

type AppConfig struct {
	HTTPPort string
}

type PathConfig struct {
	DataDir     string
	LogPath     string
	ProfilePath string
	ResumePath  string
}

type FetchConfig struct {
	IntervalHours int
}

type ApplyConfig struct {
	MinDelay time.Duration
	MaxDelay time.Duration
}

func Load() (Config, error) {
	cfg := Config{}

	opt := func(key, def string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			return def
		}
		return v
	}

	cfg.App = AppConfig{
		HTTPPort: opt("HTTP_PORT", "8080"),
	}

	cfg.Paths = PathConfig{
		DataDir:     opt("DATA_DIR", "data"),
		LogPath:     opt("APPLICATION_LOG_PATH", "application_log.csv"),
		ProfilePath: opt("PROFILE_PATH", "user_profile/profile.yaml"),
		ResumePath:  opt("RESUME_PATH", "user_profile/resume.json"),
	}

	interval, err := positiveInt(opt("FETCH_INTERVAL_HOURS", "6"), "FETCH_INTERVAL_HOURS")
	if err != nil {
		return Config{}, err
	}
	cfg.Fetch = FetchConfig{IntervalHours: interval}

	minDelay, err := positiveInt(opt("APPLY_MIN_DELAY_SECONDS", "5"), "APPLY_MIN_DELAY_SECONDS")
	if err != nil {
		return Config{}, err
	}
	maxDelay, err := positiveInt(opt("APPLY_MAX_DELAY_SECONDS", "15"), "APPLY_MAX_DELAY_SECONDS")
	if err != nil {
		return Config{}, err
	}
	if maxDelay < minDelay {
		return Config{}, fmt.Errorf("APPLY_MAX_DELAY_SECONDS (%d) must be >= APPLY_MIN_DELAY_SECONDS (%d)", maxDelay, minDelay)
	}
	cfg.Apply = ApplyConfig{
		MinDelay: time.Duration(minDelay) * time.Second,
		MaxDelay: time.Duration(maxDelay) * time.Second,
	}

	return cfg, nil
}

func positiveInt(raw, key string) (int, error) {
	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		return 0, fmt.Errorf("%s must be a positive integer, got %q", key, raw)
	}
	return v, nil
}
