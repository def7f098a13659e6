// Package bootstrap wires the process-wide runtime: database, Redis and schema.
package bootstrap

import (
	"context"
	"fmt"
	"log"
	"time"

	"fitlog/internal/cache"
	"fitlog/internal/config"
	"fitlog/internal/database"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const migrateTimeout = 2 * time.Minute

// Options control runtime initialization behavior.
type Options struct {
	Migrate bool
}

// InitRuntime connects to the database and Redis and optionally migrates the schema.
// The returned Redis client is nil when Redis is not configured or unreachable.
func InitRuntime(cfg *config.Config, opts Options) (*gorm.DB, *redis.Client, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("database connection failed: %w", err)
	}

	// Init Redis (may result in nil client if unreachable)
	cache.InitRedis(cfg.RedisURL)
	r := cache.GetClient()

	if opts.Migrate {
		ctx, cancel := context.WithTimeout(context.Background(), migrateTimeout)
		defer cancel()
		if err := database.Migrate(ctx, db); err != nil {
			_ = database.Close(db)
			_ = cache.Close()
			return nil, nil, fmt.Errorf("schema migration failed: %w", err)
		}
		log.Println("Database schema is up to date")
	}

	return db, r, nil
}
