package migrate

import (
	"context"
	"crypto/tls"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// markerKey builds the storage key for one owner's completion marker.
func markerKey(did string) string {
	return "garden:migrated:" + did
}

// RedisOptions configures the Redis-backed marker store.
type RedisOptions struct {
	// URL is the Redis connection string (e.g., "redis://localhost:6379")
	URL string

	// TLS configuration for secure connections
	TLS *tls.Config

	// ConnectTimeout is the maximum time to wait for connection establishment
	ConnectTimeout time.Duration

	// ReadTimeout is the maximum time to wait for read operations
	ReadTimeout time.Duration

	// WriteTimeout is the maximum time to wait for write operations
	WriteTimeout time.Duration

	// TTL expires markers after this duration. Zero keeps them
	// forever. An expired marker only costs one redundant scan.
	TTL time.Duration
}

// RedisMarkers keeps completion markers in Redis so every process
// serving the same accounts shares them.
type RedisMarkers struct {
	client *redis.Client
	ttl    time.Duration
}

var _ MarkerStore = (*RedisMarkers)(nil)

// NewRedisMarkers creates a Redis marker store with the given options
// and verifies the connection.
func NewRedisMarkers(opts RedisOptions) (*RedisMarkers, error) {
	if opts.URL == "" {
		opts.URL = "redis://localhost:6379"
	}

	if opts.ConnectTimeout == 0 {
		opts.ConnectTimeout = 5 * time.Second
	}

	if opts.ReadTimeout == 0 {
		opts.ReadTimeout = 30 * time.Second
	}

	if opts.WriteTimeout == 0 {
		opts.WriteTimeout = 5 * time.Second
	}

	redisOpts, err := redis.ParseURL(opts.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	redisOpts.TLSConfig = opts.TLS
	redisOpts.DialTimeout = opts.ConnectTimeout
	redisOpts.ReadTimeout = opts.ReadTimeout
	redisOpts.WriteTimeout = opts.WriteTimeout

	client := redis.NewClient(redisOpts)

	ctx, cancel := context.WithTimeout(context.Background(), opts.ConnectTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisMarkers{client: client, ttl: opts.TTL}, nil
}

// Done reports whether the owner's marker is set.
func (r *RedisMarkers) Done(ctx context.Context, did string) (bool, error) {
	_, err := r.client.Get(ctx, markerKey(did)).Result()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, fmt.Errorf("failed to read marker for %s: %w", did, err)
	}
	return true, nil
}

// SetDone sets the owner's marker, subject to the configured TTL.
func (r *RedisMarkers) SetDone(ctx context.Context, did string) error {
	if err := r.client.Set(ctx, markerKey(did), "1", r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write marker for %s: %w", did, err)
	}
	return nil
}

// Clear removes the owner's marker.
func (r *RedisMarkers) Clear(ctx context.Context, did string) error {
	if err := r.client.Del(ctx, markerKey(did)).Err(); err != nil {
		return fmt.Errorf("failed to clear marker for %s: %w", did, err)
	}
	return nil
}

// Close closes the Redis connection.
func (r *RedisMarkers) Close() error {
	return r.client.Close()
}
