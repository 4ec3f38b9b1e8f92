package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sony/gobreaker/v2"

	"resume-insights/internal/shared/telemetry"
)

const defaultKeyPrefix = "resume-insights:report:"

// RedisOptions configure the Redis backend.
type RedisOptions struct {
	URL       string
	KeyPrefix string
	// Breaker opens after MinRequests calls with at least FailureRatio failing,
	// and probes again after OpenTimeout.
	MinRequests  uint32
	FailureRatio float64
	OpenTimeout  time.Duration
}

// Redis is a Cache backed by Redis. Calls go through a circuit breaker so a
// struggling Redis fails fast instead of slowing every request.
type Redis struct {
	client *redis.Client
	prefix string
	cb     *gobreaker.CircuitBreaker[[]byte]
}

// NewRedis parses opts.URL and constructs the client. It does not dial.
func NewRedis(opts RedisOptions) (*Redis, error) {
	redisOpts, err := redis.ParseURL(opts.URL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	redisOpts.DialTimeout = 2 * time.Second
	redisOpts.ReadTimeout = time.Second
	redisOpts.WriteTimeout = time.Second
	return NewRedisWithClient(redis.NewClient(redisOpts), opts), nil
}

// NewRedisWithClient wraps an existing client.
func NewRedisWithClient(client *redis.Client, opts RedisOptions) *Redis {
	prefix := opts.KeyPrefix
	if prefix == "" {
		prefix = defaultKeyPrefix
	}
	minRequests := opts.MinRequests
	if minRequests == 0 {
		minRequests = 5
	}
	ratio := opts.FailureRatio
	if ratio <= 0 {
		ratio = 0.6
	}
	timeout := opts.OpenTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	settings := gobreaker.Settings{
		Name:        "redis-report-cache",
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= minRequests && failureRatio >= ratio
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			telemetry.Warn("cache.breaker.state_change", map[string]any{
				"name": name,
				"from": from.String(),
				"to":   to.String(),
			})
		},
		// A miss is a healthy answer.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, redis.Nil)
		},
	}

	return &Redis{
		client: client,
		prefix: prefix,
		cb:     gobreaker.NewCircuitBreaker[[]byte](settings),
	}
}

// Get returns the value stored at key.
func (r *Redis) Get(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := r.cb.Execute(func() ([]byte, error) {
		return r.client.Get(ctx, r.prefix+key).Bytes()
	})
	switch {
	case err == nil:
		return val, true, nil
	case errors.Is(err, redis.Nil):
		return nil, false, nil
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return nil, false, fmt.Errorf("%w: %v", ErrUnavailable, err)
	default:
		return nil, false, fmt.Errorf("redis get: %w", err)
	}
}

// Set stores value at key with ttl. A non-positive ttl never expires.
func (r *Redis) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl < 0 {
		ttl = 0
	}
	_, err := r.cb.Execute(func() ([]byte, error) {
		return nil, r.client.Set(ctx, r.prefix+key, value, ttl).Err()
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// Ping checks connectivity without going through the breaker.
func (r *Redis) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

// State reports the breaker state, for health output.
func (r *Redis) State() string {
	return r.cb.State().String()
}

// Close closes the Redis connection.
func (r *Redis) Close() error {
	if r.client != nil {
		return r.client.Close()
	}
	return nil
}
