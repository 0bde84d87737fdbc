package sqlstore

import (
	"fmt"
	"strings"

	"pos/internal/adapters/out/sqlstore/accessrepo"
	"pos/internal/adapters/out/sqlstore/archiverepo"
	"pos/internal/adapters/out/sqlstore/menurepo"
	"pos/internal/adapters/out/sqlstore/orderrepo"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Options selects the database an Open call connects to.
type Options struct {
	// Driver is DriverSQLite or DriverPostgres.
	Driver string
	// DSN is a sqlite file name or URI, or a postgres connection string.
	DSN string
	// Quiet silences the GORM query logger.
	Quiet bool
}

// Open connects with TranslateError enabled, so unique index violations surface
// as gorm.ErrDuplicatedKey. A sqlite pool is limited to one connection, which
// serialises writers.
func Open(opts Options) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch strings.ToLower(opts.Driver) {
	case "", DriverSQLite:
		dialector = sqlite.Open(opts.DSN)
	case DriverPostgres:
		dialector = postgres.Open(opts.DSN)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", opts.Driver)
	}

	cfg := &gorm.Config{TranslateError: true}
	if opts.Quiet {
		cfg.Logger = logger.Default.LogMode(logger.Silent)
	}

	db, err := gorm.Open(dialector, cfg)
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", dialector.Name(), err)
	}

	if dialector.Name() == DriverSQLite {
		sqlDB, sqlErr := db.DB()
		if sqlErr != nil {
			return nil, sqlErr
		}
		sqlDB.SetMaxOpenConns(1)
	}

	return db, nil
}

// Migrate creates or updates every table of the store.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&archiverepo.EntryDTO{},
		&menurepo.DocumentDTO{},
		&accessrepo.UserCodeDTO{},
		&accessrepo.SessionDTO{},
	)
}

// PostgresDSN builds a key/value connection string.
func PostgresDSN(host, port, user, password, dbName, sslMode string) string {
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, password, dbName, sslMode)
}
