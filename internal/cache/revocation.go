package cache

import (
	"context"
	"time"
)

// RevokeToken records jti as revoked until the token would have expired anyway.
// Without Redis it does nothing.
func RevokeToken(ctx context.Context, jti string, remaining time.Duration) error {
	if client == nil || jti == "" {
		return nil
	}
	if remaining <= 0 {
		return nil
	}
	return client.Set(ctx, RevokedKey(jti), "1", remaining).Err()
}

// IsTokenRevoked reports whether jti was revoked. Lookups fail open: a Redis error is
// returned alongside false so callers can log it and continue.
func IsTokenRevoked(ctx context.Context, jti string) (bool, error) {
	if client == nil || jti == "" {
		return false, nil
	}
	n, err := client.Exists(ctx, RevokedKey(jti)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
