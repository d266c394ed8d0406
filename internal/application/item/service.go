package item

import (
	"context"
	"log/slog"

	"github.com/xiebiao/jpashop/internal/domain"
	"github.com/xiebiao/jpashop/pkg/metrics"
	"github.com/xiebiao/jpashop/pkg/tracing"
)

const tracerName = "jpashop/item"

// Service 商品用例
// 读单个商品走cache-aside：先查缓存，未命中回源数据库再回填；写操作提交后删除缓存
type Service struct {
	tx    domain.Transactor
	items domain.ItemRepository
	cache Cache
}

// NewService 创建商品服务
func NewService(tx domain.Transactor, items domain.ItemRepository, cache Cache) *Service {
	if cache == nil {
		cache = NopCache{}
	}
	return &Service{tx: tx, items: items, cache: cache}
}

// SaveBook 登记图书
func (s *Service) SaveBook(ctx context.Context, name string, price int64, stock int, author, isbn string) (uint, error) {
	it, err := domain.NewBook(name, price, stock, author, isbn)
	if err != nil {
		return 0, err
	}
	if err := s.SaveItem(ctx, it); err != nil {
		return 0, err
	}
	return it.ID, nil
}

// SaveItem 保存任意类型的商品
func (s *Service) SaveItem(ctx context.Context, it *domain.Item) error {
	ctx, span := tracing.StartSpan(ctx, tracerName, "SaveItem")
	defer span.End()

	if err := s.items.Save(ctx, it); err != nil {
		tracing.Fail(span, err)
		return err
	}
	slog.InfoContext(ctx, "商品已登记", "item_id", it.ID, "dtype", string(it.DType()))
	return nil
}

// UpdateItem 修改名称、价格、库存
// 先加载再修改，只写回这三列，作者、ISBN等变体属性保持不变
func (s *Service) UpdateItem(ctx context.Context, id uint, name string, price int64, stock int) error {
	ctx, span := tracing.StartSpan(ctx, tracerName, "UpdateItem")
	defer span.End()

	err := s.tx.Transaction(ctx, func(ctx context.Context) error {
		it, err := s.items.FindOneForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if err := it.ChangeInfo(name, price, stock); err != nil {
			return err
		}
		return s.items.Update(ctx, it)
	})
	if err != nil {
		tracing.Fail(span, err)
		return err
	}

	s.evict(ctx, id)
	return nil
}

// FindItem 查询单个商品
func (s *Service) FindItem(ctx context.Context, id uint) (*domain.Item, error) {
	cached, err := s.cache.Get(ctx, id)
	switch {
	case err != nil:
		// 缓存故障不影响读取，直接回源
		metrics.ObserveItemCache("error")
		slog.WarnContext(ctx, "读取商品缓存失败", "item_id", id, "error", err)
	case cached != nil:
		metrics.ObserveItemCache("hit")
		return cached, nil
	default:
		metrics.ObserveItemCache("miss")
	}

	it, err := s.items.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, it); err != nil {
		slog.WarnContext(ctx, "写入商品缓存失败", "item_id", id, "error", err)
	}
	return it, nil
}

// FindItems 查询全部商品
func (s *Service) FindItems(ctx context.Context) ([]*domain.Item, error) {
	return s.items.FindAll(ctx)
}

func (s *Service) evict(ctx context.Context, ids ...uint) {
	Evict(ctx, s.cache, ids...)
}

// Evict 删除商品缓存，失败只记录日志
func Evict(ctx context.Context, cache Cache, ids ...uint) {
	if cache == nil || len(ids) == 0 {
		return
	}
	if err := cache.Delete(ctx, ids...); err != nil {
		slog.WarnContext(ctx, "删除商品缓存失败", "item_ids", ids, "error", err)
	}
}
