// Package sqlstoretest opens migrated in-memory sqlite databases for tests.
package sqlstoretest

import (
	"fmt"
	"strings"
	"testing"

	"pos/internal/adapters/out/sqlstore"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// Open returns a migrated database private to t. It is closed when t ends.
func Open(t testing.TB) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s_%s?mode=memory&cache=shared", name, uuid.NewString())

	db, err := sqlstore.Open(sqlstore.Options{Driver: sqlstore.DriverSQLite, DSN: dsn, Quiet: true})
	require.NoError(t, err)
	require.NoError(t, sqlstore.Migrate(db))

	t.Cleanup(func() {
		if sqlDB, dbErr := db.DB(); dbErr == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

// Truncate empties every table of the store.
func Truncate(t testing.TB, db *gorm.DB) {
	t.Helper()
	for _, table := range []string{"order_items", "orders", "archived_orders", "menu_documents", "user_codes", "sessions"} {
		require.NoError(t, db.Exec("DELETE FROM "+table).Error)
	}
}
