package ratelimit

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/rueidis"
)

// RedisStore shares fixed-window counters between processes.
type RedisStore struct {
	client rueidis.Client
	prefix string
	limit  int
	window time.Duration
	now    func() time.Time
}

func NewRedisStore(client rueidis.Client, prefix string, limit int, window time.Duration) *RedisStore {
	return &RedisStore{
		client: client,
		prefix: prefix,
		limit:  limit,
		window: window,
		now:    time.Now,
	}
}

func (r *RedisStore) Allow(ctx context.Context, key string) (bool, error) {
	windowKey := r.windowKey(key)

	count, err := r.client.Do(ctx, r.client.B().Incr().Key(windowKey).Build()).AsInt64()
	if err != nil {
		return false, err
	}

	if count == 1 {
		expire := r.client.B().Expire().Key(windowKey).Seconds(int64(r.window/time.Second) + 1).Build()
		if err := r.client.Do(ctx, expire).Error(); err != nil {
			return false, err
		}
	}

	return count <= int64(r.limit), nil
}

func (r *RedisStore) windowKey(key string) string {
	slot := r.now().UnixNano() / int64(r.window)
	return r.prefix + ":" + key + ":" + strconv.FormatInt(slot, 10)
}
