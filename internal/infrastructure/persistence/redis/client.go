package redis

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/xiebiao/jpashop/internal/infrastructure/config"
	apperrors "github.com/xiebiao/jpashop/pkg/errors"
)

const defaultPingTimeout = 3 * time.Second

func clientOptions(cfg config.RedisConfig) *redis.Options {
	return &redis.Options{
		Addr:         cfg.Addr(),
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     cfg.PoolSize,
		MinIdleConns: cfg.MinIdleConns,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
}

// NewClient 创建Redis客户端并确认连接可用
// Redis只作缓存，启动时连不上直接返回错误，由调用方决定是否关闭redis.enabled
func NewClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(clientOptions(cfg))

	timeout := cfg.DialTimeout
	if timeout <= 0 {
		timeout = defaultPingTimeout
	}
	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, apperrors.WrapCode(err, apperrors.ErrCodeCacheError, "Redis连接失败")
	}

	slog.InfoContext(ctx, "Redis连接成功", "addr", cfg.Addr(), "db", cfg.DB, "pool_size", cfg.PoolSize)
	return client, nil
}
