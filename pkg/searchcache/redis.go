package searchcache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const generationKey = "resumes:search:gen"

// Redis namespaces every key with a generation counter; bumping the counter
// invalidates all earlier entries, which then expire on their own TTL.
type Redis struct {
	rdb *redis.Client
}

func NewRedis(rdb *redis.Client) *Redis { return &Redis{rdb: rdb} }

// Dial parses a redis:// URL and verifies the connection.
func Dial(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("redis.ParseURL: %w", err)
	}
	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return rdb, nil
}

func (c *Redis) generation(ctx context.Context) (int64, error) {
	v, err := c.rdb.Get(ctx, generationKey).Result()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return strconv.ParseInt(v, 10, 64)
}

func slotFor(gen int64, key string) Slot {
	return Slot(fmt.Sprintf("resumes:search:%d:%s", gen, key))
}

// Get reads the generation once; the returned slot is pinned to it.
func (c *Redis) Get(ctx context.Context, key string) ([]byte, Slot, error) {
	gen, err := c.generation(ctx)
	if err != nil {
		return nil, "", err
	}
	slot := slotFor(gen, key)
	b, err := c.rdb.Get(ctx, string(slot)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, slot, ErrMiss
	}
	return b, slot, err
}

func (c *Redis) Set(ctx context.Context, slot Slot, value []byte, ttl time.Duration) error {
	if slot == "" {
		return errors.New("searchcache: empty slot")
	}
	return c.rdb.Set(ctx, string(slot), value, ttl).Err()
}

func (c *Redis) Invalidate(ctx context.Context) error {
	return c.rdb.Incr(ctx, generationKey).Err()
}
