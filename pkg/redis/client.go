package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// TTLSession is the session lifetime used when none is configured
const TTLSession = 24 * time.Hour

// Client wraps go-redis with per-command timing logs and environment
// namespaced keys
type Client struct {
	rdb  *redis.Client
	Keys *KeyBuilder
	log  *zap.Logger
}

// NewClient connects to redisURL and pings it once
func NewClient(redisURL string, environment string, log *zap.Logger) (*Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	opts.PoolSize = 10
	opts.MinIdleConns = 1
	opts.MaxRetries = 2
	opts.DialTimeout = 3 * time.Second
	opts.ReadTimeout = time.Second
	opts.WriteTimeout = time.Second

	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	if log == nil {
		log = zap.NewNop()
	}

	return &Client{rdb: rdb, Keys: NewKeyBuilder(environment), log: log}, nil
}

// IsNil reports whether err is the "key does not exist" reply
func IsNil(err error) bool {
	return errors.Is(err, redis.Nil)
}

// Close closes the Redis connection
func (c *Client) Close() error {
	if c.rdb != nil {
		return c.rdb.Close()
	}
	return nil
}

// GetEx reads key and pushes its expiry back to ttl in the same round trip
func (c *Client) GetEx(ctx context.Context, key string, ttl time.Duration) ([]byte, error) {
	start := time.Now()
	val, err := c.rdb.GetEx(ctx, key, ttl).Bytes()
	c.observe("getex", key, start, err)
	return val, err
}

// Set stores value under key with ttl
func (c *Client) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	start := time.Now()
	err := c.rdb.Set(ctx, key, value, ttl).Err()
	c.observe("set", key, start, err)
	return err
}

// Health checks the Redis connection
func (c *Client) Health(ctx context.Context) error {
	start := time.Now()
	err := c.rdb.Ping(ctx).Err()
	c.observe("ping", "", start, err)
	return err
}

func (c *Client) observe(op, key string, start time.Time, err error) {
	fields := []zap.Field{
		zap.String("op", op),
		zap.Duration("duration", time.Since(start)),
	}
	if key != "" {
		fields = append(fields, zap.String("key_prefix", prefixForLog(key)))
	}
	if err != nil && !IsNil(err) {
		c.log.Warn("redis_command_failed", append(fields, zap.Error(err))...)
		return
	}
	c.log.Debug("redis_command", fields...)
}

// prefixForLog cuts a key before its id part so session ids stay out of logs
func prefixForLog(key string) string {
	if len(key) <= 24 {
		return key
	}
	return key[:24] + "…"
}
