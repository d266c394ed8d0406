package order

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/xiebiao/jpashop/internal/application/item"
	"github.com/xiebiao/jpashop/internal/domain"
	apperrors "github.com/xiebiao/jpashop/pkg/errors"
	"github.com/xiebiao/jpashop/pkg/metrics"
	"github.com/xiebiao/jpashop/pkg/tracing"
)

const tracerName = "jpashop/order"

// Service 订单用例
//
// 防止超卖使用悲观锁：
//  1. SELECT ... FOR UPDATE 锁定商品行
//  2. 在锁内检查并扣减库存
//  3. 保存订单，写回库存
//  4. COMMIT释放锁
//
// 取消订单同样先锁定订单及其商品行再归还库存
type Service struct {
	tx      domain.Transactor
	members domain.MemberRepository
	items   domain.ItemRepository
	orders  domain.OrderRepository
	cache   item.Cache
}

// NewService 创建订单服务
func NewService(
	tx domain.Transactor,
	members domain.MemberRepository,
	items domain.ItemRepository,
	orders domain.OrderRepository,
	cache item.Cache,
) *Service {
	if cache == nil {
		cache = item.NopCache{}
	}
	return &Service{tx: tx, members: members, items: items, orders: orders, cache: cache}
}

// Order 下单
// 价格取下单时商品的当前价格，配送地址取会员地址
func (s *Service) Order(ctx context.Context, memberID, itemID uint, count int) (uint, error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "Order")
	defer span.End()
	span.SetAttributes(
		attribute.Int64("member.id", int64(memberID)),
		attribute.Int64("item.id", int64(itemID)),
		attribute.Int("count", count),
	)

	start := time.Now()
	var o *domain.Order
	err := s.tx.Transaction(ctx, func(ctx context.Context) error {
		m, err := s.members.FindOne(ctx, memberID)
		if err != nil {
			return err
		}

		it, err := s.items.FindOneForUpdate(ctx, itemID)
		if err != nil {
			return err
		}

		oi, err := domain.CreateOrderItem(it, it.Price, count)
		if err != nil {
			return err
		}

		o = domain.CreateOrder(m, domain.NewDelivery(m.Address), oi)
		if err := s.orders.Save(ctx, o); err != nil {
			return err
		}
		return s.items.UpdateStock(ctx, it)
	})
	if err != nil {
		tracing.Fail(span, err)
		metrics.ObserveOrderFailure(failureReason(err))
		slog.WarnContext(ctx, "下单失败", "member_id", memberID, "item_id", itemID, "count", count, "error", err)
		return 0, err
	}

	metrics.ObserveOrderPlaced(time.Since(start))
	item.Evict(ctx, s.cache, itemID)
	slog.InfoContext(ctx, "下单成功", "order_id", o.ID, "member_id", memberID, "total", o.TotalPrice())
	return o.ID, nil
}

// CancelOrder 取消订单
// 已取消返回ErrAlreadyCanceled，已配送完成返回ErrAlreadyDelivered
func (s *Service) CancelOrder(ctx context.Context, orderID uint) error {
	ctx, span := tracing.StartSpan(ctx, tracerName, "CancelOrder")
	defer span.End()
	span.SetAttributes(attribute.Int64("order.id", int64(orderID)))

	var itemIDs []uint
	err := s.tx.Transaction(ctx, func(ctx context.Context) error {
		o, err := s.orders.FindOneForUpdate(ctx, orderID)
		if err != nil {
			return err
		}
		if err := o.Cancel(); err != nil {
			return err
		}
		if err := s.orders.UpdateStatus(ctx, o); err != nil {
			return err
		}

		// 同一商品出现在多条明细时共享同一个实体，只写一次
		seen := make(map[uint]bool)
		for _, oi := range o.OrderItems() {
			it := oi.Item()
			if seen[it.ID] {
				continue
			}
			seen[it.ID] = true
			if err := s.items.UpdateStock(ctx, it); err != nil {
				return err
			}
			itemIDs = append(itemIDs, it.ID)
		}
		return nil
	})
	if err != nil {
		tracing.Fail(span, err)
		metrics.ObserveOrderFailure(failureReason(err))
		return err
	}

	metrics.ObserveOrderCanceled()
	item.Evict(ctx, s.cache, itemIDs...)
	slog.InfoContext(ctx, "订单已取消", "order_id", orderID)
	return nil
}

// CompleteDelivery 标记配送完成，之后订单不能再取消
func (s *Service) CompleteDelivery(ctx context.Context, orderID uint) error {
	return s.tx.Transaction(ctx, func(ctx context.Context) error {
		o, err := s.orders.FindOneForUpdate(ctx, orderID)
		if err != nil {
			return err
		}
		if o.Status() == domain.OrderStatusCancel {
			return domain.ErrAlreadyCanceled
		}
		d := o.Delivery()
		d.Complete()
		return s.orders.UpdateDeliveryStatus(ctx, d)
	})
}

// FindOne 查询单个订单
func (s *Service) FindOne(ctx context.Context, orderID uint) (*domain.Order, error) {
	return s.orders.FindOne(ctx, orderID)
}

// FindOrders 按会员名、状态检索订单
func (s *Service) FindOrders(ctx context.Context, search domain.OrderSearch) ([]*domain.Order, error) {
	var orders []*domain.Order
	err := s.tx.ReadOnly(ctx, func(ctx context.Context) error {
		var err error
		orders, err = s.orders.FindAll(ctx, search, domain.FindOptions{Fetch: domain.FetchBatch})
		return err
	})
	return orders, err
}

// failureReason 失败原因标签
func failureReason(err error) string {
	switch {
	case domain.IsNotEnoughStock(err):
		return "not_enough_stock"
	case domain.IsNotFound(err):
		return "not_found"
	case domain.IsInvalidStateTransition(err):
		return "invalid_state"
	case apperrors.IsCode(err, apperrors.ErrCodeInvalidParams):
		return "invalid_params"
	default:
		return "internal"
	}
}
