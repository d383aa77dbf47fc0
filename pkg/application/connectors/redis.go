package connectors

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/redis/go-redis/v9"
	"github.com/samber/lo"

	"nft_escrow/pkg/logx"
)

type Redis struct {
	Username           string
	Password           string
	Address            string
	DatabaseNumber     int
	PoolSize           int
	MinIdleConnections int
	MaxIdleConnections int

	once   sync.Once
	client *redis.Client
}

// Options те же настройки, что нужны asynq и проверкам.
func (r *Redis) Options() *redis.Options {
	return &redis.Options{
		Network:      "tcp",
		Addr:         r.Address,
		Username:     r.Username,
		Password:     r.Password,
		DB:           r.DatabaseNumber,
		PoolSize:     r.PoolSize,
		MinIdleConns: r.MinIdleConnections,
		MaxIdleConns: r.MaxIdleConnections,
	}
}

func (r *Redis) Client(ctx context.Context) *redis.Client {
	r.once.Do(func() {
		r.client = redis.NewClient(r.Options())

		lo.Must0(r.client.Ping(ctx).Err())

		logger(ctx).Info("redis connected", slog.String("address", r.Address), slog.Int("database", r.DatabaseNumber))
	})

	return r.client
}

func (r *Redis) Ping(ctx context.Context) error {
	if err := r.Client(ctx).Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis.Ping: %w", err)
	}

	return nil
}

func (r *Redis) Close(ctx context.Context) {
	if r.client == nil {
		return
	}

	if err := r.client.Close(); err != nil {
		logger(ctx).Error("redis.Close", logx.Error(err))

		return
	}

	logger(ctx).Info("redis disconnected", slog.String("address", r.Address))
}
