package config

import (
	"errors"
	"fmt"
	"time"

	"lull-backoffice/internal/logging"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const referenceDateLayout = "2006-01-02"

type Config struct {
	DBDSN         string
	ServerPort    string
	SessionSecret string

	AdminUsername string
	AdminPassword string

	// ReferenceDate pins "today" for filters such as planned=future.
	ReferenceDate time.Time

	Log logging.Config
}

// Load reads .env (when present) and the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return FromViper(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("ADMIN_USERNAME", "admin@lull.local")
	v.SetDefault("ADMIN_PASSWORD", "Admin123!")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "console")
	v.SetDefault("LOG_OUTPUT", "stdout")

	for _, key := range []string{"DB_DSN", "SESSION_SECRET", "REFERENCE_DATE"} {
		_ = v.BindEnv(key)
	}
	return v
}

// FromViper builds a validated Config from v.
func FromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		DBDSN:         v.GetString("DB_DSN"),
		ServerPort:    v.GetString("SERVER_PORT"),
		SessionSecret: v.GetString("SESSION_SECRET"),
		AdminUsername: v.GetString("ADMIN_USERNAME"),
		AdminPassword: v.GetString("ADMIN_PASSWORD"),
		Log: logging.Config{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
			Output: v.GetString("LOG_OUTPUT"),
		},
	}

	if raw := v.GetString("REFERENCE_DATE"); raw != "" {
		date, err := time.ParseInLocation(referenceDateLayout, raw, time.Local)
		if err != nil {
			return nil, fmt.Errorf("invalid REFERENCE_DATE %q: %w", raw, err)
		}
		cfg.ReferenceDate = date
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.SessionSecret == "" {
		return errors.New("SESSION_SECRET is not set")
	}
	if c.ServerPort == "" {
		return errors.New("SERVER_PORT is empty")
	}
	if c.AdminUsername == "" || c.AdminPassword == "" {
		return errors.New("ADMIN_USERNAME and ADMIN_PASSWORD must not be empty")
	}
	return c.Log.Validate()
}

// Clock returns the reference date when one is configured, else time.Now.
func (c *Config) Clock() func() time.Time {
	if c.ReferenceDate.IsZero() {
		return time.Now
	}
	fixed := c.ReferenceDate
	return func() time.Time { return fixed }
}
