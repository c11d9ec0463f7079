package infra

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// NewRedis opens the redis client used for report caching and rate
// limiting. A failed ping aborts startup rather than degrading silently.
func NewRedis(redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	rdb := redis.NewClient(opts)
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}
	return rdb, nil
}
