package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wordspark/echo/internal/config"
)

func validConfig() config.Config {
	return config.Config{
		Addr:             ":8080",
		DBPath:           "echo.db",
		SeedDBPath:       "echoinit.db",
		LogLevel:         "INFO",
		UserID:           1,
		DefaultDailyGoal: 20,
		Timezone:         "UTC",
		WeekStart:        "sunday",

		ImportWorkerCount: 1,
		ImportQueueSize:   8,
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
}

func TestValidate_EmptySeedPathAllowed(t *testing.T) {
	cfg := validConfig()
	cfg.SeedDBPath = ""
	assert.NoError(t, cfg.Validate())
}

func TestValidate_EmptyAddr(t *testing.T) {
	cfg := validConfig()
	cfg.Addr = ""

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "ADDR cannot be empty")
}

func TestValidate_EmptyDBPath(t *testing.T) {
	cfg := validConfig()
	cfg.DBPath = ""

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "DB_PATH cannot be empty")
}

func TestValidate_DailyGoal(t *testing.T) {
	tests := []struct {
		name  string
		goal  int
		valid bool
	}{
		{name: "zero", goal: 0, valid: false},
		{name: "negative", goal: -3, valid: false},
		{name: "too large", goal: 501, valid: false},
		{name: "minimum", goal: 1, valid: true},
		{name: "default", goal: 20, valid: true},
		{name: "maximum", goal: 500, valid: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			cfg.DefaultDailyGoal = tt.goal

			err := cfg.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "DEFAULT_DAILY_GOAL")
			}
		})
	}
}

func TestValidate_LogLevel(t *testing.T) {
	tests := []struct {
		level string
		valid bool
	}{
		{level: "DEBUG", valid: true},
		{level: "INFO", valid: true},
		{level: "WARN", valid: true},
		{level: "ERROR", valid: true},
		{level: "debug", valid: true},
		{level: "", valid: false},
		{level: "TRACE", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			cfg := validConfig()
			cfg.LogLevel = tt.level

			err := cfg.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "LOG_LEVEL")
			}
		})
	}
}

func TestValidate_TimezoneAndWeekStart(t *testing.T) {
	cfg := validConfig()
	cfg.Timezone = "Mars/Olympus_Mons"
	cfg.WeekStart = "friday"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TIMEZONE")
	assert.Contains(t, err.Error(), "WEEK_START")
}

func TestValidate_MultipleErrors(t *testing.T) {
	cfg := config.Config{
		Addr:             "",
		DBPath:           "",
		LogLevel:         "INVALID",
		UserID:           0,
		DefaultDailyGoal: 0,
		Timezone:         "UTC",
		WeekStart:        "sunday",
	}

	err := cfg.Validate()
	require.Error(t, err)

	errStr := err.Error()
	assert.Contains(t, errStr, "ADDR cannot be empty")
	assert.Contains(t, errStr, "DB_PATH cannot be empty")
	assert.Contains(t, errStr, "LOG_LEVEL")
	assert.Contains(t, errStr, "USER_ID")
	assert.Contains(t, errStr, "DEFAULT_DAILY_GOAL")
}

func TestFirstWeekday(t *testing.T) {
	cfg := validConfig()

	wd, err := cfg.FirstWeekday()
	require.NoError(t, err)
	assert.Equal(t, time.Sunday, wd)

	cfg.WeekStart = "Monday"
	wd, err = cfg.FirstWeekday()
	require.NoError(t, err)
	assert.Equal(t, time.Monday, wd)
}

func TestLocation(t *testing.T) {
	cfg := validConfig()
	assert.Equal(t, "UTC", cfg.Location().String())

	cfg.Timezone = "Nowhere/Special"
	assert.Equal(t, time.Local, cfg.Location())
}

func TestLoad_EnvironmentVariables(t *testing.T) {
	t.Setenv("ADDR", ":9090")
	t.Setenv("DB_PATH", "custom.db")
	t.Setenv("DEFAULT_DAILY_GOAL", "35")
	t.Setenv("USER_ID", "not-a-number")
	t.Setenv("WEEK_START", "MONDAY")
	t.Setenv("IMPORT_QUEUE_SIZE", "32")

	cfg := config.Load()

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "custom.db", cfg.DBPath)
	assert.Equal(t, 35, cfg.DefaultDailyGoal)
	assert.Equal(t, int64(1), cfg.UserID, "invalid ints fall back to the default")
	assert.Equal(t, "monday", cfg.WeekStart)
	assert.Equal(t, 32, cfg.ImportQueueSize)
	assert.Equal(t, 1, cfg.ImportWorkerCount)
}

func TestValidate_NegativeImportPool(t *testing.T) {
	cfg := validConfig()
	cfg.ImportQueueSize = -1

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "IMPORT_QUEUE_SIZE")
}
