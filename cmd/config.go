package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"pos/internal/adapters/out/sqlstore"
	"pos/internal/core/domain/model/access"
	"pos/internal/jobs"
	"pos/internal/pkg/errs"
)

type Config struct {
	HTTPPort   string
	DBDriver   string
	DBSource   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	SessionTTL           time.Duration
	SessionPurgeSchedule string
	AuthEnforced         bool
	// BootstrapAdminCode is registered as an admin login code at startup when set.
	BootstrapAdminCode string

	LogLevel          slog.Level
	OpenAPIValidation bool
}

// ConfigFromEnv reads the configuration through getenv, applying defaults for
// unset keys. Malformed values of all keys are reported together.
func ConfigFromEnv(getenv func(string) string) (Config, error) {
	env := func(key, fallback string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return fallback
	}

	config := Config{
		HTTPPort:             env("HTTP_PORT", "3000"),
		DBDriver:             strings.ToLower(env("DB_DRIVER", sqlstore.DriverSQLite)),
		DBSource:             env("DB_SOURCE", "orders.db"),
		DBHost:               env("DB_HOST", "localhost"),
		DBPort:               env("DB_PORT", "5432"),
		DBUser:               env("DB_USER", ""),
		DBPassword:           env("DB_PASSWORD", ""),
		DBName:               env("DB_NAME", ""),
		DBSslMode:            env("DB_SSLMODE", "disable"),
		SessionPurgeSchedule: env("SESSION_PURGE_SCHEDULE", jobs.DefaultSessionPurgeSchedule),
		BootstrapAdminCode:   env("BOOTSTRAP_ADMIN_CODE", ""),
	}

	var errList []error

	ttl, err := time.ParseDuration(env("SESSION_TTL", access.DefaultSessionTTL.String()))
	if err != nil || ttl <= 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("SESSION_TTL", err))
	}
	config.SessionTTL = ttl

	if config.AuthEnforced, err = strconv.ParseBool(env("AUTH_ENFORCED", "false")); err != nil {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("AUTH_ENFORCED", err))
	}
	if config.OpenAPIValidation, err = strconv.ParseBool(env("OPENAPI_VALIDATION", "true")); err != nil {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("OPENAPI_VALIDATION", err))
	}
	if err = config.LogLevel.UnmarshalText([]byte(env("LOG_LEVEL", "info"))); err != nil {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("LOG_LEVEL", err))
	}

	switch config.DBDriver {
	case sqlstore.DriverSQLite, sqlstore.DriverPostgres:
	default:
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("DB_DRIVER",
			fmt.Errorf("unsupported driver %q", config.DBDriver)))
	}

	if err = errors.Join(errList...); err != nil {
		return Config{}, err
	}
	return config, nil
}

// DatabaseOptions selects the sqlite file or the postgres server.
func (c Config) DatabaseOptions() sqlstore.Options {
	if c.DBDriver == sqlstore.DriverPostgres {
		return sqlstore.Options{
			Driver: sqlstore.DriverPostgres,
			DSN:    sqlstore.PostgresDSN(c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode),
			Quiet:  c.LogLevel > slog.LevelDebug,
		}
	}
	return sqlstore.Options{
		Driver: sqlstore.DriverSQLite,
		DSN:    c.DBSource,
		Quiet:  c.LogLevel > slog.LevelDebug,
	}
}
