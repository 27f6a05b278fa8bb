package database

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bingeboard/bingeboard/internal/config"
	"github.com/redis/go-redis/v9"
)

// NewRedis connects to Redis for the metadata cache. Callers treat a nil
// client as "cache disabled".
func NewRedis(cfg *config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	slog.Info("redis connected", "addr", cfg.RedisAddr)
	return client, nil
}
