package searchcache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Checker reports whether the Redis backing the cache answers pings.
type Checker struct {
	rdb *redis.Client
}

func NewChecker(rdb *redis.Client) *Checker { return &Checker{rdb: rdb} }

func (c *Checker) Name() string { return "redis" }

func (c *Checker) Check(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	return c.rdb.Ping(ctx).Err()
}
