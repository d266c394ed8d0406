package orderquery

import (
	"context"

	"github.com/xiebiao/jpashop/internal/domain"
	"github.com/xiebiao/jpashop/pkg/tracing"
)

const tracerName = "jpashop/orderquery"

// 分页默认值
const (
	DefaultLimit = 100
	MaxLimit     = 1000
)

// Service 订单列表的多种读取策略
// 各策略返回内容一致，区别只在查询条数和是否支持分页：
//
//	策略                     查询条数          分页
//	OrdersWithEntityMapping  1+3N             支持
//	OrdersWithFetchJoin      1                不支持
//	OrdersWithBatchFetch     1+ceil(N/batch)  支持
//	OrdersWithItemQueries    1+N              支持
//	OrdersWithTwoQueries     2                支持
//	OrdersWithFlatQuery      1                不支持
type Service struct {
	tx     domain.Transactor
	orders domain.OrderRepository
	query  QueryRepository
	simple SimpleQueryRepository
}

// NewService 创建订单查询服务
func NewService(tx domain.Transactor, orders domain.OrderRepository, query QueryRepository, simple SimpleQueryRepository) *Service {
	return &Service{tx: tx, orders: orders, query: query, simple: simple}
}

// OrdersWithEntityMapping 逐个订单加载关联后映射DTO
func (s *Service) OrdersWithEntityMapping(ctx context.Context) ([]OrderDto, error) {
	return s.orderDtos(ctx, "OrdersWithEntityMapping", domain.FindOptions{Fetch: domain.FetchLazy})
}

// OrdersWithFetchJoin 一条连接查询加载全部关联
func (s *Service) OrdersWithFetchJoin(ctx context.Context) ([]OrderDto, error) {
	return s.orderDtos(ctx, "OrdersWithFetchJoin", domain.FindOptions{Fetch: domain.FetchJoinAll})
}

// OrdersWithBatchFetch to-one连接查询分页，明细批量加载
func (s *Service) OrdersWithBatchFetch(ctx context.Context, offset, limit int) ([]OrderDto, error) {
	offset, limit = NormalizePage(offset, limit)
	return s.orderDtos(ctx, "OrdersWithBatchFetch", domain.FindOptions{Fetch: domain.FetchBatch, Offset: offset, Limit: limit})
}

func (s *Service) orderDtos(ctx context.Context, op string, opts domain.FindOptions) ([]OrderDto, error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, op)
	defer span.End()

	var result []OrderDto
	err := s.tx.ReadOnly(ctx, func(ctx context.Context) error {
		orders, err := s.orders.FindAll(ctx, domain.OrderSearch{}, opts)
		if err != nil {
			return err
		}
		result = make([]OrderDto, len(orders))
		for i, o := range orders {
			result[i] = NewOrderDto(o)
		}
		return nil
	})
	if err != nil {
		tracing.Fail(span, err)
		return nil, err
	}
	return result, nil
}

// OrdersWithItemQueries 订单投影 + 逐个订单查明细
func (s *Service) OrdersWithItemQueries(ctx context.Context) ([]OrderQueryDto, error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "OrdersWithItemQueries")
	defer span.End()

	var result []OrderQueryDto
	err := s.tx.ReadOnly(ctx, func(ctx context.Context) error {
		var err error
		result, err = s.query.FindOrderQueryDtos(ctx)
		return err
	})
	if err != nil {
		tracing.Fail(span, err)
		return nil, err
	}
	return result, nil
}

// OrdersWithTwoQueries 订单投影(分页) + 一条IN查询取明细
func (s *Service) OrdersWithTwoQueries(ctx context.Context, offset, limit int) ([]OrderQueryDto, error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "OrdersWithTwoQueries")
	defer span.End()

	offset, limit = NormalizePage(offset, limit)
	var result []OrderQueryDto
	err := s.tx.ReadOnly(ctx, func(ctx context.Context) error {
		var err error
		result, err = s.query.FindAllByDtoOptimization(ctx, offset, limit)
		return err
	})
	if err != nil {
		tracing.Fail(span, err)
		return nil, err
	}
	return result, nil
}

// OrdersWithFlatQuery 一条扁平查询，在内存中按订单重新分组
func (s *Service) OrdersWithFlatQuery(ctx context.Context) ([]OrderQueryDto, error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "OrdersWithFlatQuery")
	defer span.End()

	var flats []OrderFlatDto
	err := s.tx.ReadOnly(ctx, func(ctx context.Context) error {
		var err error
		flats, err = s.query.FindAllByDtoFlat(ctx)
		return err
	})
	if err != nil {
		tracing.Fail(span, err)
		return nil, err
	}
	return GroupFlat(flats), nil
}

// SimpleOrdersWithEntityMapping 逐个订单加载会员和配送
func (s *Service) SimpleOrdersWithEntityMapping(ctx context.Context) ([]SimpleOrderDto, error) {
	return s.simpleOrderDtos(ctx, "SimpleOrdersWithEntityMapping", domain.FetchLazyToOne)
}

// SimpleOrdersWithFetchJoin 一条连接查询加载会员和配送
func (s *Service) SimpleOrdersWithFetchJoin(ctx context.Context) ([]SimpleOrderDto, error) {
	return s.simpleOrderDtos(ctx, "SimpleOrdersWithFetchJoin", domain.FetchToOne)
}

func (s *Service) simpleOrderDtos(ctx context.Context, op string, plan domain.FetchPlan) ([]SimpleOrderDto, error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, op)
	defer span.End()

	var result []SimpleOrderDto
	err := s.tx.ReadOnly(ctx, func(ctx context.Context) error {
		orders, err := s.orders.FindAll(ctx, domain.OrderSearch{}, domain.FindOptions{Fetch: plan})
		if err != nil {
			return err
		}
		result = make([]SimpleOrderDto, len(orders))
		for i, o := range orders {
			result[i] = NewSimpleOrderDto(o)
		}
		return nil
	})
	if err != nil {
		tracing.Fail(span, err)
		return nil, err
	}
	return result, nil
}

// SimpleOrdersWithQuery 直接投影查询
func (s *Service) SimpleOrdersWithQuery(ctx context.Context) ([]OrderSimpleQueryDto, error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "SimpleOrdersWithQuery")
	defer span.End()

	var result []OrderSimpleQueryDto
	err := s.tx.ReadOnly(ctx, func(ctx context.Context) error {
		var err error
		result, err = s.simple.FindOrderDtos(ctx)
		return err
	})
	if err != nil {
		tracing.Fail(span, err)
		return nil, err
	}
	return result, nil
}

// NormalizePage 分页参数归一化
// offset小于0按0处理；limit未指定时取DefaultLimit，上限MaxLimit
func NormalizePage(offset, limit int) (int, int) {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return offset, limit
}
