package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/DanielPeled7/StockMarketProject/internal/model"
)

// RedisCache is a SeriesCache backed by Redis, for deployments where several
// instances share one warm cache.
type RedisCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedisCache creates a new RedisCache and pings the server.
func NewRedisCache(ctx context.Context, addr, password string, db int, ttl time.Duration) (*RedisCache, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return &RedisCache{rdb: rdb, ttl: ttl}, nil
}

func (c *RedisCache) Get(ctx context.Context, key string) (model.TimeSeries, bool) {
	data, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("[WARN] redis get %s: %v", key, err)
		}
		return nil, false
	}
	var series model.TimeSeries
	if err := json.Unmarshal(data, &series); err != nil {
		log.Printf("[WARN] redis decode %s: %v", key, err)
		return nil, false
	}
	return series, true
}

func (c *RedisCache) Set(ctx context.Context, key string, series model.TimeSeries) {
	data, err := json.Marshal(series)
	if err != nil {
		log.Printf("[WARN] redis encode %s: %v", key, err)
		return
	}
	if err := c.rdb.Set(ctx, key, data, c.ttl).Err(); err != nil {
		log.Printf("[WARN] redis set %s: %v", key, err)
	}
}

func (c *RedisCache) Close() error {
	return c.rdb.Close()
}
