package services

import (
	"context"
	"fmt"
	"photomagnet_server/structs"
	"strconv"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/redis/go-redis/v9"
)

// CacheService wraps the Redis client used for rate limiting
type CacheService struct {
	logger *gecho.Logger
	client *redis.Client
}

func NewCacheService(logger *gecho.Logger, cfg *structs.Config) *CacheService {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Cache.Address,
		Username: cfg.Cache.Username,
		Password: cfg.Cache.Password,
		DB:       cfg.Cache.DB,

		// Connection pool settings
		PoolSize:        cfg.Cache.PoolSize,
		MinIdleConns:    cfg.Cache.MinIdleConns,
		MaxIdleConns:    cfg.Cache.MaxIdleConns,
		PoolTimeout:     cfg.Cache.PoolTimeout,
		ConnMaxIdleTime: cfg.Cache.IdleTimeout,

		// Timeouts
		DialTimeout:  cfg.Cache.DialTimeout,
		ReadTimeout:  cfg.Cache.ReadTimeout,
		WriteTimeout: cfg.Cache.WriteTimeout,

		// Retry settings, 0 by default
		MaxRetries:      cfg.Cache.MaxRetries,
		MinRetryBackoff: cfg.Cache.MinRetryBackoff,
		MaxRetryBackoff: cfg.Cache.MaxRetryBackoff,
	})

	return NewCacheServiceWithClient(logger, client)
}

func NewCacheServiceWithClient(logger *gecho.Logger, client *redis.Client) *CacheService {
	return &CacheService{
		logger: logger,
		client: client,
	}
}

// Close closes the Redis connection pool
func (cs *CacheService) Close() error {
	return cs.client.Close()
}

func rateLimitKey(ip, endpoint string) string {
	return fmt.Sprintf("ratelimit:%s:%s", ip, endpoint)
}

// IncrementRateLimit atomically increments a rate limit counter and starts
// its window on the first hit
func (cs *CacheService) IncrementRateLimit(ctx context.Context, ip, endpoint string, ttl time.Duration) (int, error) {
	key := rateLimitKey(ip, endpoint)

	count, err := cs.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}

	// Set expiration only on first increment
	if count == 1 {
		if err := cs.client.Expire(ctx, key, ttl).Err(); err != nil {
			return int(count), err
		}
	}

	return int(count), nil
}

// GetRateLimitStatus returns current rate limit information for debugging
func (cs *CacheService) GetRateLimitStatus(ctx context.Context, ip, endpoint string) (map[string]any, error) {
	key := rateLimitKey(ip, endpoint)

	val, err := cs.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return map[string]any{"count": 0, "ttl": 0}, nil
	}
	if err != nil {
		return nil, err
	}

	ttl, err := cs.client.TTL(ctx, key).Result()
	if err != nil {
		return nil, err
	}

	count, err := strconv.Atoi(val)
	if err != nil {
		return nil, fmt.Errorf("invalid rate limit value: %w", err)
	}

	return map[string]any{
		"count": count,
		"ttl":   int(ttl.Seconds()),
	}, nil
}

// DeletePattern removes all keys matching a pattern using SCAN
func (cs *CacheService) DeletePattern(ctx context.Context, pattern string) (int, error) {
	var cursor uint64
	deleted := 0

	for {
		keys, nextCursor, err := cs.client.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			return deleted, fmt.Errorf("scan failed: %w", err)
		}

		if len(keys) > 0 {
			if err := cs.client.Del(ctx, keys...).Err(); err != nil {
				return deleted, fmt.Errorf("delete failed: %w", err)
			}
			deleted += len(keys)
		}

		cursor = nextCursor
		if cursor == 0 {
			return deleted, nil
		}
	}
}

// Ping tests the Redis connection
func (cs *CacheService) Ping(ctx context.Context) error {
	return cs.client.Ping(ctx).Err()
}

// GetConnectionStats returns Redis connection pool statistics
func (cs *CacheService) GetConnectionStats() map[string]any {
	stats := cs.client.PoolStats()

	return map[string]any{
		"hits":        stats.Hits,
		"misses":      stats.Misses,
		"timeouts":    stats.Timeouts,
		"total_conns": stats.TotalConns,
		"idle_conns":  stats.IdleConns,
		"stale_conns": stats.StaleConns,
	}
}
