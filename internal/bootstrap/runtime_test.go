package bootstrap

import (
	"os"
	"path/filepath"
	"testing"

	"fitlog/internal/cache"
	"fitlog/internal/config"
	"fitlog/internal/database"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sqliteConfig() *config.Config {
	return &config.Config{
		DBDriver:       config.DriverSQLite,
		DatabaseURL:    "file:" + uuid.NewString() + "?mode=memory&cache=shared",
		DBMaxOpenConns: 1,
	}
}

func TestInitRuntime_MigratesSchema(t *testing.T) {
	db, rdb, err := InitRuntime(sqliteConfig(), Options{Migrate: true})
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })

	assert.Nil(t, rdb)
	for _, table := range []string{"users", "workout_sessions", "strength_sets", "cardio_entries"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
}

func TestInitRuntime_WithoutMigration(t *testing.T) {
	db, _, err := InitRuntime(sqliteConfig(), Options{})
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })

	assert.False(t, db.Migrator().HasTable("users"))
}

func TestInitRuntime_BadDriver(t *testing.T) {
	cfg := sqliteConfig()
	cfg.DBDriver = "oracle"

	_, _, err := InitRuntime(cfg, Options{})
	assert.Error(t, err)
}

func TestInitRuntime_MigrationFailureReleasesRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	t.Cleanup(func() { _ = cache.Close() })

	// An empty file is a valid SQLite database; read-only mode makes CREATE TABLE fail.
	path := filepath.Join(t.TempDir(), "readonly.db")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	cfg := sqliteConfig()
	cfg.DatabaseURL = "file:" + path + "?mode=ro"
	cfg.RedisURL = mr.Addr()

	db, rdb, err := InitRuntime(cfg, Options{Migrate: true})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema migration failed")
	assert.Nil(t, db)
	assert.Nil(t, rdb)
	assert.Nil(t, cache.GetClient())
}

func TestInitRuntime_ConnectsRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	t.Cleanup(func() { _ = cache.Close() })

	cfg := sqliteConfig()
	cfg.RedisURL = mr.Addr()

	db, rdb, err := InitRuntime(cfg, Options{})
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })

	require.NotNil(t, rdb)
	assert.Same(t, cache.GetClient(), rdb)
}
