package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/text/language"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/services"
	"logistics/internal/pkg/errs"
)

type Config struct {
	HTTPPort string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// DBLockTimeout bounds how long a write waits for a locked route.
	DBLockTimeout time.Duration

	Depot           kernel.Coordinate
	TwoOptMaxPasses int

	// CollationLocale drives the zone and address comparison of stops without coordinates.
	CollationLocale language.Tag

	LogLevel slog.Level
}

// LoadConfig reads envFile into the environment when it exists and builds the Config.
// Values already present in the environment win over the file. Every malformed value
// is reported in one joined error.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	cfg := Config{
		HTTPPort:   getEnv("HTTP_PORT", "8080"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBSslMode:  getEnv("DB_SSLMODE", "disable"),
	}

	if err := errors.Join(
		cfg.parseLockTimeout(getEnv("DB_LOCK_TIMEOUT", "5s")),
		cfg.parseDepot(os.Getenv("DEPOT_LAT"), os.Getenv("DEPOT_LNG")),
		cfg.parseTwoOptMaxPasses(os.Getenv("TWO_OPT_MAX_PASSES")),
		cfg.parseCollationLocale(getEnv("COLLATION_LOCALE", "es")),
		cfg.parseLogLevel(getEnv("LOG_LEVEL", "info")),
	); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// DSN is the Postgres connection string understood by both pgx and lib/pq.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func (c *Config) parseLockTimeout(raw string) error {
	d, err := time.ParseDuration(raw)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("DB_LOCK_TIMEOUT", err)
	}
	if d < 0 {
		return errs.NewValueIsInvalidErrorWithCause("DB_LOCK_TIMEOUT", fmt.Errorf("%s is negative", d))
	}
	c.DBLockTimeout = d
	return nil
}

func (c *Config) parseDepot(rawLat, rawLng string) error {
	if rawLat == "" && rawLng == "" {
		c.Depot = services.DefaultDepot
		return nil
	}
	if rawLat == "" || rawLng == "" {
		return errs.NewValueIsRequiredErrorWithCause("DEPOT_LAT/DEPOT_LNG",
			errors.New("both coordinates must be set together"))
	}

	lat, latErr := strconv.ParseFloat(rawLat, 64)
	if latErr != nil {
		latErr = errs.NewValueIsInvalidErrorWithCause("DEPOT_LAT", latErr)
	} else if lat < -90 || lat > 90 {
		latErr = errs.NewValueIsOutOfRangeError("DEPOT_LAT", lat, -90, 90)
	}
	lng, lngErr := strconv.ParseFloat(rawLng, 64)
	if lngErr != nil {
		lngErr = errs.NewValueIsInvalidErrorWithCause("DEPOT_LNG", lngErr)
	} else if lng < -180 || lng > 180 {
		lngErr = errs.NewValueIsOutOfRangeError("DEPOT_LNG", lng, -180, 180)
	}
	if err := errors.Join(latErr, lngErr); err != nil {
		return err
	}

	depot := kernel.NewCoordinate(lat, lng)
	if !depot.IsUsable() {
		return errs.NewValueIsInvalidErrorWithCause("DEPOT_LAT/DEPOT_LNG",
			errors.New("(0, 0) marks a missing location"))
	}
	c.Depot = depot
	return nil
}

func (c *Config) parseTwoOptMaxPasses(raw string) error {
	if raw == "" {
		c.TwoOptMaxPasses = services.DefaultTwoOptMaxPasses
		return nil
	}
	passes, err := strconv.Atoi(raw)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("TWO_OPT_MAX_PASSES", err)
	}
	if passes < 1 {
		return errs.NewValueIsInvalidErrorWithCause("TWO_OPT_MAX_PASSES", fmt.Errorf("%d is not a positive pass count", passes))
	}
	c.TwoOptMaxPasses = passes
	return nil
}

func (c *Config) parseCollationLocale(raw string) error {
	tag, err := language.Parse(raw)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("COLLATION_LOCALE", err)
	}
	c.CollationLocale = tag
	return nil
}

func (c *Config) parseLogLevel(raw string) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(raw))); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("LOG_LEVEL", err)
	}
	c.LogLevel = level
	return nil
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
