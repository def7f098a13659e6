package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"fitlog/internal/observability"

	"github.com/redis/go-redis/v9"
)

const (
	UserKeyPrefix    = "user:%d"
	RevokedKeyPrefix = "blacklist:%s"
)

const (
	UserTTL = 5 * time.Minute
)

func UserKey(userID uint) string {
	return fmt.Sprintf(UserKeyPrefix, userID)
}

func RevokedKey(jti string) string {
	return fmt.Sprintf(RevokedKeyPrefix, jti)
}

// Aside implements cache-aside: on a hit dest is decoded from Redis; on a miss fetch fills
// dest and the result is stored for ttl. Redis failures fall through to fetch.
func Aside(ctx context.Context, key string, dest any, ttl time.Duration, fetch func() error) error {
	if client == nil {
		return fetch()
	}

	ctx, span := observability.GetTraceLayer().TraceRedisOperation(ctx, "aside")
	defer span.End()

	raw, err := client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		if jsonErr := json.Unmarshal(raw, dest); jsonErr == nil {
			return nil
		}
		// Undecodable entries are refetched and overwritten below.
	case !errors.Is(err, redis.Nil):
		log.Printf("cache read failed for %s: %v", key, err)
	}

	if err := fetch(); err != nil {
		return err
	}

	encoded, err := json.Marshal(dest)
	if err != nil {
		return nil
	}
	if err := client.Set(ctx, key, encoded, ttl).Err(); err != nil {
		log.Printf("cache write failed for %s: %v", key, err)
	}
	return nil
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
}
