package config

import (
	"os"
	"time"

	"github.com/diegoclair/slack-schedule-bot/pkg/recurrence"
	"github.com/pkg/errors"
)

type Config struct {
	SlackBotToken      string
	SlackSigningSecret string
	DatabasePath       string
	Port               string

	// DefaultTimeZone is the IANA zone new schedules start in.
	DefaultTimeZone     string
	DefaultTimeZoneName string

	LogLevel  string
	LogFormat string

	// SchedulerSpec is the cron spec of the dispatch tick.
	SchedulerSpec string
}

func Load() (*Config, error) {
	cfg := &Config{
		SlackBotToken:       getEnv("SLACK_BOT_TOKEN", ""),
		SlackSigningSecret:  getEnv("SLACK_SIGNING_SECRET", ""),
		DatabasePath:        getEnv("DATABASE_PATH", "./schedule.db"),
		Port:                getEnv("PORT", "3000"),
		DefaultTimeZone:     getEnv("DEFAULT_TIME_ZONE", "America/New_York"),
		DefaultTimeZoneName: getEnv("DEFAULT_TIME_ZONE_NAME", "Eastern Time"),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		LogFormat:           getEnv("LOG_FORMAT", "fmt"),
		SchedulerSpec:       getEnv("SCHEDULER_SPEC", "* * * * *"),
	}

	if _, err := time.LoadLocation(cfg.DefaultTimeZone); err != nil {
		return nil, errors.Wrapf(err, "invalid DEFAULT_TIME_ZONE %q", cfg.DefaultTimeZone)
	}

	return cfg, nil
}

// Location returns the default zone. Load has already validated it.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.DefaultTimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Zone is the team default zone injected into new schedules.
func (c *Config) Zone() recurrence.Zone {
	return recurrence.Zone{ID: c.DefaultTimeZone, Name: c.DefaultTimeZoneName}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
