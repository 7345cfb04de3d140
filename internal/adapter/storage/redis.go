package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/kanoha/storefront/internal/core/port"
	"github.com/redis/go-redis/v9"
)

var _ port.CartStorage = (*RedisCarts)(nil)

// RedisCarts keeps each serialized cart under its own key.
type RedisCarts struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCarts wraps client. A zero ttl keeps carts forever.
func NewRedisCarts(client *redis.Client, ttl time.Duration) *RedisCarts {
	return &RedisCarts{client: client, ttl: ttl}
}

// DialRedis connects to addr and checks the connection.
func DialRedis(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	const op = "DialRedis"

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("%s: redis is unavailable: %w", op, err)
	}
	slog.Info("redis is available", "op", op)
	return client, nil
}

func (r *RedisCarts) LoadCart(ctx context.Context, visitorID string) ([]byte, error) {
	const op = "RedisCarts.LoadCart"

	data, err := r.client.Get(ctx, cartKey(visitorID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return data, nil
}

func (r *RedisCarts) SaveCart(ctx context.Context, visitorID string, data []byte) error {
	const op = "RedisCarts.SaveCart"

	if err := r.client.Set(ctx, cartKey(visitorID), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (r *RedisCarts) DeleteCart(ctx context.Context, visitorID string) error {
	const op = "RedisCarts.DeleteCart"

	if err := r.client.Del(ctx, cartKey(visitorID)).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
