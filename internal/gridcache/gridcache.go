package gridcache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/rushdesk/rush-scheduler/internal/dto"
)

const (
	gridKey = "scheduler:grid"
	gridTTL = 30 * time.Second
)

// Cache holds the latest scheduler grid snapshot in redis. A short TTL keeps
// the view fresh even if an invalidation is lost; readers tolerate staleness.
type Cache struct {
	rdb *redis.Client
	log *zap.Logger
}

func New(rdb *redis.Client, log *zap.Logger) *Cache {
	return &Cache{rdb: rdb, log: log}
}

func (c *Cache) Get(ctx context.Context) (*dto.SchedulerGrid, error) {
	raw, err := c.rdb.Get(ctx, gridKey).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		c.log.Debug("grid cache read failed", zap.Error(err))
		return nil, err
	}

	var grid dto.SchedulerGrid
	if err := json.Unmarshal(raw, &grid); err != nil {
		// A corrupt snapshot behaves like a miss.
		_ = c.rdb.Del(ctx, gridKey).Err()
		return nil, nil
	}
	return &grid, nil
}

func (c *Cache) Set(ctx context.Context, g *dto.SchedulerGrid) error {
	raw, err := json.Marshal(g)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, gridKey, raw, gridTTL).Err()
}

func (c *Cache) Invalidate(ctx context.Context) error {
	if err := c.rdb.Del(ctx, gridKey).Err(); err != nil {
		c.log.Debug("grid cache invalidation failed", zap.Error(err))
		return err
	}
	return nil
}
