package item

import (
	"context"

	"github.com/xiebiao/jpashop/internal/domain"
)

// Cache 商品详情缓存
// Get未命中时返回(nil, nil)
type Cache interface {
	Get(ctx context.Context, id uint) (*domain.Item, error)
	Set(ctx context.Context, it *domain.Item) error
	Delete(ctx context.Context, ids ...uint) error
}

// NopCache 未启用Redis时使用的空缓存
type NopCache struct{}

func (NopCache) Get(context.Context, uint) (*domain.Item, error) { return nil, nil }
func (NopCache) Set(context.Context, *domain.Item) error         { return nil }
func (NopCache) Delete(context.Context, ...uint) error           { return nil }
