package storage

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Redis backs the KeyValue contract with a Redis instance. Values are stored
// without expiration; the stores own their lifecycle.
type Redis struct {
	client *redis.Client
	ctx    context.Context
}

func NewRedis(addr, password string, db int) (*Redis, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx := context.Background()
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Redis{client: rdb, ctx: ctx}, nil
}

func (r *Redis) Get(key string) (string, error) {
	val, err := r.client.Get(r.ctx, key).Result()
	if err == redis.Nil {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

func (r *Redis) Set(key, value string) error {
	return r.client.Set(r.ctx, key, value, 0).Err()
}

func (r *Redis) Remove(key string) error {
	return r.client.Del(r.ctx, key).Err()
}

func (r *Redis) Close() error {
	return r.client.Close()
}
