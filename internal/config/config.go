package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr             string
	DBPath           string
	SeedDBPath       string
	LogLevel         string
	UserID           int64
	DefaultDailyGoal int
	Timezone         string
	WeekStart        string

	ImportWorkerCount int
	ImportQueueSize   int
}

// Load reads configuration from a .env file (if present) and environment variables,
// applying sensible defaults when values are missing or invalid.
func Load() Config {
	// Ignore error so the app still starts when .env is absent in production.
	_ = godotenv.Load()

	return Config{
		Addr:             envOr("ADDR", ":8080"),
		DBPath:           envOr("DB_PATH", "echo.db"),
		SeedDBPath:       envOr("SEED_DB_PATH", "echoinit.db"),
		LogLevel:         envOr("LOG_LEVEL", "INFO"),
		UserID:           int64(envIntOr("USER_ID", 1)),
		DefaultDailyGoal: envIntOr("DEFAULT_DAILY_GOAL", 20),
		Timezone:         envOr("TIMEZONE", "Local"),
		WeekStart:        strings.ToLower(envOr("WEEK_START", "sunday")),

		ImportWorkerCount: envIntOr("IMPORT_WORKER_COUNT", 1),
		ImportQueueSize:   envIntOr("IMPORT_QUEUE_SIZE", 8),
	}
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var errs []error

	if c.Addr == "" {
		errs = append(errs, errors.New("ADDR cannot be empty"))
	}
	if c.DBPath == "" {
		errs = append(errs, errors.New("DB_PATH cannot be empty"))
	}
	switch strings.ToUpper(c.LogLevel) {
	case "DEBUG", "INFO", "WARN", "ERROR":
	default:
		errs = append(errs, fmt.Errorf("LOG_LEVEL must be one of DEBUG, INFO, WARN, ERROR, got %q", c.LogLevel))
	}
	if c.UserID <= 0 {
		errs = append(errs, fmt.Errorf("USER_ID must be positive, got %d", c.UserID))
	}
	if c.DefaultDailyGoal < 1 || c.DefaultDailyGoal > 500 {
		errs = append(errs, fmt.Errorf("DEFAULT_DAILY_GOAL must be between 1 and 500, got %d", c.DefaultDailyGoal))
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		errs = append(errs, fmt.Errorf("TIMEZONE %q is not a known location: %w", c.Timezone, err))
	}
	if _, err := c.FirstWeekday(); err != nil {
		errs = append(errs, err)
	}
	if c.ImportWorkerCount < 0 {
		errs = append(errs, fmt.Errorf("IMPORT_WORKER_COUNT cannot be negative, got %d", c.ImportWorkerCount))
	}
	if c.ImportQueueSize < 0 {
		errs = append(errs, fmt.Errorf("IMPORT_QUEUE_SIZE cannot be negative, got %d", c.ImportQueueSize))
	}

	return errors.Join(errs...)
}

// Location resolves Timezone, falling back to time.Local.
func (c Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

// FirstWeekday maps WeekStart to the weekday shown in the first calendar column.
func (c Config) FirstWeekday() (time.Weekday, error) {
	switch strings.ToLower(c.WeekStart) {
	case "sunday":
		return time.Sunday, nil
	case "monday":
		return time.Monday, nil
	default:
		return time.Sunday, fmt.Errorf("WEEK_START must be sunday or monday, got %q", c.WeekStart)
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntOr(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
		log.Printf("invalid value for %s=%q, using default %d", key, v, def)
	}
	return def
}
