package cache

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// RateLimitCounter is a Redis-backed counter for go-chi/httprate so request
// limits hold across process restarts and replicas. Redis failures fail open:
// a broken limiter must not take the API down with it.
type RateLimitCounter struct {
	client       *redis.Client
	logger       *slog.Logger
	prefix       string
	timeout      time.Duration
	windowLength time.Duration
}

// NewRateLimitCounter constructs a counter using the given Redis client.
func NewRateLimitCounter(client *redis.Client, logger *slog.Logger) *RateLimitCounter {
	return &RateLimitCounter{
		client:  client,
		logger:  logger,
		prefix:  "jobdeck:ratelimit:",
		timeout: 250 * time.Millisecond,
	}
}

// Config implements httprate.LimitCounter.
func (c *RateLimitCounter) Config(requestLimit int, windowLength time.Duration) {
	c.windowLength = windowLength
}

// Increment implements httprate.LimitCounter.
func (c *RateLimitCounter) Increment(key string, currentWindow time.Time) error {
	return c.IncrementBy(key, currentWindow, 1)
}

// IncrementBy implements httprate.LimitCounter.
func (c *RateLimitCounter) IncrementBy(key string, currentWindow time.Time, amount int) error {
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	redisKey := c.windowKey(key, currentWindow)
	count, err := c.client.IncrBy(ctx, redisKey, int64(amount)).Result()
	if err != nil {
		c.logRedisError("incrby", err)
		return nil
	}
	if count == int64(amount) {
		// First hit in this window: bound the key lifetime to two windows so
		// the previous window stays readable for the sliding count.
		if err := c.client.Expire(ctx, redisKey, 2*c.windowLength).Err(); err != nil {
			c.logRedisError("expire", err)
		}
	}
	return nil
}

// Get implements httprate.LimitCounter.
func (c *RateLimitCounter) Get(key string, currentWindow, previousWindow time.Time) (int, int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	values, err := c.client.MGet(ctx, c.windowKey(key, currentWindow), c.windowKey(key, previousWindow)).Result()
	if err != nil {
		c.logRedisError("mget", err)
		return 0, 0, nil
	}
	return parseCount(values[0]), parseCount(values[1]), nil
}

func (c *RateLimitCounter) windowKey(key string, window time.Time) string {
	return c.prefix + key + ":" + strconv.FormatInt(window.Unix(), 10)
}

func (c *RateLimitCounter) logRedisError(op string, err error) {
	if c.logger == nil {
		return
	}
	c.logger.Error("redis rate limit counter error", slog.String("op", op), slog.Any("error", err))
}

func parseCount(value any) int {
	s, ok := value.(string)
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
