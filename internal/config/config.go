// Package config loads runtime settings from .env files and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/true1853/Nykha-bot/internal/constants"
	"github.com/true1853/Nykha-bot/internal/keyring"
	"github.com/true1853/Nykha-bot/internal/models"
	"github.com/true1853/Nykha-bot/internal/utils"
)

// Source records where the database target came from.
type Source string

const (
	SourceFlag       Source = "flag"
	SourceEnv        Source = "env"
	SourceConnection Source = "connection-env"
	SourceKeyring    Source = "keyring"
	SourceDefault    Source = "default"
)

// Config holds all application configuration
type Config struct {
	// Storage
	DB        string
	DBSource  Source
	DBTimeout time.Duration
	// Snapshots kept by rotation; 0 disables the pre-sweep backup.
	BackupKeep int

	// Runtime
	Debug    bool
	HTTPAddr string
	SweepAt  string

	// Applied to users on first contact
	Defaults models.UserDefaults
}

// Trusted reports whether the target may carry credentials. Only the connection
// variable and the keyring are allowed to hold a password.
func (c *Config) Trusted() bool {
	return c.DBSource == SourceConnection || c.DBSource == SourceKeyring
}

// ConfigDir is the directory that holds logs and the daemon lockfile.
func (c *Config) ConfigDir() string {
	if c.DB != "" && !isURL(c.DB) {
		return filepath.Dir(c.DB)
	}
	return filepath.Dir(kong.ExpandPath(constants.DefaultConfigPath))
}

// Load reads envFiles (missing files are ignored), then the environment. dbFlag wins
// over every other database source when set.
func Load(dbFlag string, envFiles ...string) (*Config, error) {
	if err := loadDotEnv(envFiles...); err != nil {
		return nil, err
	}

	cfg := &Config{
		DBTimeout:  time.Duration(getEnvAsInt(constants.EnvDBTimeoutSeconds, int(constants.DefaultDBTimeout/time.Second))) * time.Second,
		BackupKeep: getEnvAsInt(constants.EnvBackupKeep, constants.DefaultBackupKeep),
		Debug:      getEnvAsBool(constants.EnvDebug, false),
		HTTPAddr:   getEnv(constants.EnvHTTPAddr, constants.DefaultHTTPAddr),
		SweepAt:    getEnv(constants.EnvSweepAt, constants.DefaultSweepAt),
		Defaults:   models.UserDefaults{
			Phase: getEnv(constants.EnvDefaultPhase, constants.DefaultPhase),
			Location: models.Location{
				City:     getEnv(constants.EnvDefaultCity, constants.DefaultCityName),
				Lat:      getEnvAsFloat(constants.EnvDefaultLatitude, constants.DefaultLatitude),
				Lon:      getEnvAsFloat(constants.EnvDefaultLongitude, constants.DefaultLongitude),
				Timezone: getEnv(constants.EnvDefaultTimezone, constants.DefaultTimezone),
			},
		},
	}
	cfg.DB, cfg.DBSource = resolveDB(dbFlag)

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.DBTimeout <= 0 {
		return fmt.Errorf("%s must be positive", constants.EnvDBTimeoutSeconds)
	}
	if c.BackupKeep < 0 {
		return fmt.Errorf("%s must not be negative", constants.EnvBackupKeep)
	}
	if _, _, err := utils.ParseClock(c.SweepAt); err != nil {
		return fmt.Errorf("%s: %w", constants.EnvSweepAt, err)
	}
	if !utils.ValidateTimezone(c.Defaults.Location.Timezone) {
		return fmt.Errorf("%s: unknown timezone %q", constants.EnvDefaultTimezone, c.Defaults.Location.Timezone)
	}
	return nil
}

// resolveDB picks the database target: flag, NYKHA_DB, NYKHA_DB_CONNECTION, keyring, default.
func resolveDB(flag string) (string, Source) {
	if flag != "" {
		return expand(flag), SourceFlag
	}
	if v := getEnv(constants.EnvDatabase, ""); v != "" {
		return expand(v), SourceEnv
	}
	if v := getEnv(constants.EnvDBConnection, ""); v != "" {
		return v, SourceConnection
	}
	if v, err := keyring.DatabaseURL(); err == nil && v != "" {
		return v, SourceKeyring
	}
	return kong.ExpandPath(constants.DefaultConfigPath), SourceDefault
}

func loadDotEnv(files ...string) error {
	for _, f := range files {
		err := godotenv.Load(f)
		if err == nil || errors.Is(err, os.ErrNotExist) {
			continue
		}
		return fmt.Errorf("load %s: %w", f, err)
	}
	return nil
}

func expand(target string) string {
	if isURL(target) {
		return target
	}
	return kong.ExpandPath(target)
}

func isURL(target string) bool {
	return strings.HasPrefix(target, "postgres://") || strings.HasPrefix(target, "postgresql://")
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	value, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}
