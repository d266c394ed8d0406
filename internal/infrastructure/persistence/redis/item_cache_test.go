package redis

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/jpashop/internal/domain"
	"github.com/xiebiao/jpashop/internal/infrastructure/config"
	"github.com/xiebiao/jpashop/pkg/circuitbreaker"
	apperrors "github.com/xiebiao/jpashop/pkg/errors"
)

func TestItemCodec(t *testing.T) {
	t.Run("各类型商品保留变体属性", func(t *testing.T) {
		items := []*domain.Item{
			domain.RestoreItem(1, "JPA", 10000, 10, domain.Book{Author: "kim", ISBN: "978-1"}),
			domain.RestoreItem(2, "Abbey Road", 30000, 3, domain.Album{Artist: "The Beatles", Etc: "LP"}),
			domain.RestoreItem(3, "Oldboy", 15000, 1, domain.Movie{Director: "Park", Actor: "Choi"}),
		}
		for _, want := range items {
			data, err := encodeItem(want)
			require.NoError(t, err)

			got, err := decodeItem(data)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		}
	})

	t.Run("无详情按图书处理", func(t *testing.T) {
		data, err := encodeItem(domain.RestoreItem(1, "JPA", 10000, 10, nil))
		require.NoError(t, err)

		got, err := decodeItem(data)
		require.NoError(t, err)
		assert.Equal(t, domain.DTypeBook, got.DType())
	})

	t.Run("非法数据", func(t *testing.T) {
		_, err := decodeItem([]byte("{"))
		assert.Error(t, err)
	})
}

func TestItemKey(t *testing.T) {
	assert.Equal(t, "item:detail:42", itemKey(42))
}

func TestNewClient(t *testing.T) {
	t.Run("连接参数", func(t *testing.T) {
		opts := clientOptions(config.RedisConfig{Host: "cache", Port: 6380, DB: 2, PoolSize: 8})
		assert.Equal(t, "cache:6380", opts.Addr)
		assert.Equal(t, 2, opts.DB)
		assert.Equal(t, 8, opts.PoolSize)
	})

	t.Run("连接失败", func(t *testing.T) {
		_, err := NewClient(context.Background(), config.RedisConfig{Host: "127.0.0.1", Port: 1, DialTimeout: 200 * time.Millisecond})
		require.Error(t, err)
		assert.Equal(t, apperrors.ErrCodeCacheError, apperrors.CodeOf(err))
	})
}

func TestItemCache_Breaker(t *testing.T) {
	ctx := context.Background()
	// 不存在的Redis，连接立即被拒绝
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1, DialTimeout: 200 * time.Millisecond})
	t.Cleanup(func() { _ = client.Close() })

	cache := NewItemCache(client, &config.Config{Redis: config.RedisConfig{BreakerFailures: 3, BreakerTimeout: time.Minute}})

	for i := 0; i < 3; i++ {
		_, err := cache.Get(ctx, 1)
		require.Error(t, err)
		assert.NotErrorIs(t, err, circuitbreaker.ErrOpenState)
	}

	_, err := cache.Get(ctx, 1)
	assert.ErrorIs(t, err, circuitbreaker.ErrOpenState, "连续失败后应熔断")
	assert.ErrorIs(t, cache.Delete(ctx, 1), circuitbreaker.ErrOpenState)
	assert.Equal(t, circuitbreaker.StateOpen, cache.breaker.State())
}

// TestItemCache_Redis 需要真实Redis，设置JPASHOP_TEST_REDIS_ADDR后运行
func TestItemCache_Redis(t *testing.T) {
	addr := os.Getenv("JPASHOP_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("未设置JPASHOP_TEST_REDIS_ADDR，跳过Redis测试")
	}

	ctx := context.Background()
	client := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { _ = client.Close() })
	require.NoError(t, client.Ping(ctx).Err())

	cache := NewItemCache(client, &config.Config{Redis: config.RedisConfig{ItemCacheTTL: time.Minute}})
	it := domain.RestoreItem(900001, "JPA", 10000, 10, domain.Book{Author: "kim", ISBN: "978-1"})
	t.Cleanup(func() { _ = cache.Delete(ctx, it.ID) })

	t.Run("未命中", func(t *testing.T) {
		got, err := cache.Get(ctx, it.ID)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("写入后命中", func(t *testing.T) {
		require.NoError(t, cache.Set(ctx, it))

		got, err := cache.Get(ctx, it.ID)
		require.NoError(t, err)
		assert.Equal(t, it, got)

		ttl, err := client.TTL(ctx, itemKey(it.ID)).Result()
		require.NoError(t, err)
		assert.LessOrEqual(t, ttl, time.Minute)
	})

	t.Run("删除后未命中", func(t *testing.T) {
		require.NoError(t, cache.Delete(ctx, it.ID))

		got, err := cache.Get(ctx, it.ID)
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}
