package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/xiebiao/jpashop/internal/domain"
	"github.com/xiebiao/jpashop/internal/infrastructure/config"
	"github.com/xiebiao/jpashop/pkg/circuitbreaker"
	apperrors "github.com/xiebiao/jpashop/pkg/errors"
)

// ItemCache 商品详情缓存
// Key设计：item:detail:{id}，值为JSON，过期时间取redis.item_cache_ttl
// 所有Redis调用经过熔断器，Redis不可用时快速失败，由调用方回源数据库
type ItemCache struct {
	client  *redis.Client
	ttl     time.Duration
	breaker *circuitbreaker.CircuitBreaker
}

// NewItemCache 创建商品缓存
func NewItemCache(client *redis.Client, cfg *config.Config) *ItemCache {
	ttl := cfg.Redis.ItemCacheTTL
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	failures := cfg.Redis.BreakerFailures
	if failures == 0 {
		failures = 5
	}
	breaker := circuitbreaker.New("redis:item-cache", circuitbreaker.Settings{
		Timeout: cfg.Redis.BreakerTimeout,
		ReadyToTrip: func(c circuitbreaker.Counts) bool {
			return c.ConsecutiveFailures >= failures
		},
		// 未命中不是故障
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, redis.Nil)
		},
		OnStateChange: func(name string, from, to circuitbreaker.State) {
			slog.Warn("缓存熔断器状态变化", "name", name, "from", from.String(), "to", to.String())
		},
	})
	return &ItemCache{client: client, ttl: ttl, breaker: breaker}
}

func itemKey(id uint) string {
	return fmt.Sprintf("item:detail:%d", id)
}

// Get 读取缓存，未命中返回(nil, nil)
func (c *ItemCache) Get(ctx context.Context, id uint) (*domain.Item, error) {
	var data []byte
	err := c.breaker.Execute(func() error {
		var err error
		data, err = c.client.Get(ctx, itemKey(id)).Bytes()
		return err
	})
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, apperrors.WrapCode(err, apperrors.ErrCodeCacheError, "读取商品缓存失败")
	}
	return decodeItem(data)
}

// Set 写入缓存
func (c *ItemCache) Set(ctx context.Context, it *domain.Item) error {
	data, err := encodeItem(it)
	if err != nil {
		return err
	}
	err = c.breaker.Execute(func() error {
		return c.client.Set(ctx, itemKey(it.ID), data, c.ttl).Err()
	})
	if err != nil {
		return apperrors.WrapCode(err, apperrors.ErrCodeCacheError, "写入商品缓存失败")
	}
	return nil
}

// Delete 删除缓存
func (c *ItemCache) Delete(ctx context.Context, ids ...uint) error {
	if len(ids) == 0 {
		return nil
	}
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = itemKey(id)
	}
	err := c.breaker.Execute(func() error {
		return c.client.Del(ctx, keys...).Err()
	})
	if err != nil {
		return apperrors.WrapCode(err, apperrors.ErrCodeCacheError, "删除商品缓存失败")
	}
	return nil
}

// cachedItem 缓存中的商品结构
type cachedItem struct {
	ID       uint   `json:"id"`
	DType    string `json:"dtype"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Stock    int    `json:"stock_quantity"`
	Author   string `json:"author,omitempty"`
	ISBN     string `json:"isbn,omitempty"`
	Artist   string `json:"artist,omitempty"`
	Etc      string `json:"etc,omitempty"`
	Director string `json:"director,omitempty"`
	Actor    string `json:"actor,omitempty"`
}

func encodeItem(it *domain.Item) ([]byte, error) {
	c := cachedItem{
		ID:    it.ID,
		DType: string(it.DType()),
		Name:  it.Name,
		Price: it.Price,
		Stock: it.StockQuantity(),
	}
	switch d := it.Detail.(type) {
	case domain.Book:
		c.Author, c.ISBN = d.Author, d.ISBN
	case domain.Album:
		c.Artist, c.Etc = d.Artist, d.Etc
	case domain.Movie:
		c.Director, c.Actor = d.Director, d.Actor
	}
	data, err := json.Marshal(c)
	if err != nil {
		return nil, apperrors.WrapCode(err, apperrors.ErrCodeCacheError, "序列化商品缓存失败")
	}
	return data, nil
}

func decodeItem(data []byte) (*domain.Item, error) {
	var c cachedItem
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, apperrors.WrapCode(err, apperrors.ErrCodeCacheError, "解析商品缓存失败")
	}

	var detail domain.ItemDetail
	switch domain.DType(c.DType) {
	case domain.DTypeAlbum:
		detail = domain.Album{Artist: c.Artist, Etc: c.Etc}
	case domain.DTypeMovie:
		detail = domain.Movie{Director: c.Director, Actor: c.Actor}
	default:
		detail = domain.Book{Author: c.Author, ISBN: c.ISBN}
	}
	return domain.RestoreItem(c.ID, c.Name, c.Price, c.Stock, detail), nil
}
