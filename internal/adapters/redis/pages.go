package redisad

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"hotel_detail/internal/adapters/observability"
)

const keyPrefix = "page:"

// PageStore keeps published HTML documents in Redis.
type PageStore struct{ c *redis.Client }

func New(addr, pass string, db int) *PageStore {
	return NewWithClient(redis.NewClient(&redis.Options{Addr: addr, Password: pass, DB: db}))
}

func NewWithClient(c *redis.Client) *PageStore { return &PageStore{c: c} }

func (s *PageStore) Ping(ctx context.Context) error { return s.c.Ping(ctx).Err() }

func (s *PageStore) Close() error { return s.c.Close() }

func (s *PageStore) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := s.c.Get(ctx, keyPrefix+key).Result()
	if errors.Is(err, redis.Nil) {
		observability.ObserveStore("redis", "miss")
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	observability.ObserveStore("redis", "hit")
	return v, true, nil
}

// Put stores html under key; ttl <= 0 keeps it until replaced or deleted.
func (s *PageStore) Put(ctx context.Context, key, html string, ttl time.Duration) error {
	if ttl < 0 {
		ttl = 0
	}
	observability.ObserveStore("redis", "put")
	return s.c.Set(ctx, keyPrefix+key, html, ttl).Err()
}

func (s *PageStore) Del(ctx context.Context, key string) error {
	observability.ObserveStore("redis", "del")
	return s.c.Del(ctx, keyPrefix+key).Err()
}
