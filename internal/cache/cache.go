// Package cache stores computed analysis reports by document hash.
package cache

import (
	"context"
	"errors"
	"time"
)

// ErrUnavailable is returned when the backing store cannot be reached.
var ErrUnavailable = errors.New("cache unavailable")

// Cache is a byte-oriented key/value store with per-entry TTL.
// Get reports found=false for absent or expired keys.
type Cache interface {
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Ping(ctx context.Context) error
	Close() error
}
