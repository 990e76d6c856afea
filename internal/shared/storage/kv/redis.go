package kv

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "workwise:state:"

// RedisStore keeps client state in Redis without expiry.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore connects to redisURL and verifies the server answers.
func NewRedisStore(ctx context.Context, redisURL string) (*RedisStore, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("kv redis: parse url: %w", err)
	}
	client := redis.NewClient(opts)
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("kv redis: ping %s: %w", opts.Addr, err)
	}
	return &RedisStore{client: client}, nil
}

func (s *RedisStore) Load(ctx context.Context, key string) ([]byte, error) {
	data, err := s.client.Get(ctx, redisKeyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return data, nil
}

func (s *RedisStore) Save(ctx context.Context, key string, value []byte) error {
	return s.client.Set(ctx, redisKeyPrefix+key, value, 0).Err()
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}

var _ Store = (*RedisStore)(nil)
