// Package testutil holds helpers shared by package tests.
package testutil

import (
	"context"
	"fmt"
	"testing"

	"fitlog/internal/database"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewSQLiteDB returns a migrated, private in-memory SQLite database with foreign keys on.
// The pool is pinned to one connection so the in-memory database lives as long as the test.
func NewSQLiteDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, database.Migrate(context.Background(), db))
	return db
}

// FailInsertsInto makes every INSERT into table fail until the test ends, simulating a
// storage failure in the middle of a multi-row write.
func FailInsertsInto(t *testing.T, db *gorm.DB, table string) {
	t.Helper()

	name := "testutil:fail_inserts_" + table
	err := db.Callback().Create().Before("gorm:create").Register(name, func(tx *gorm.DB) {
		if tx.Statement.Table == table {
			_ = tx.AddError(fmt.Errorf("simulated failure inserting into %s", table))
		}
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = db.Callback().Create().Remove(name)
	})
}

// CountRows returns the number of rows in table.
func CountRows(t *testing.T, db *gorm.DB, table string) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Table(table).Count(&n).Error)
	return n
}
