package orderquery

import "context"

// QueryRepository 订单DTO直接投影查询
// 与实体仓储分离：这里的查询只服务于展示，返回值不是实体
type QueryRepository interface {
	// FindOrderQueryDtos 先查订单投影，再逐个订单查明细：1+N条查询
	FindOrderQueryDtos(ctx context.Context) ([]OrderQueryDto, error)

	// FindAllByDtoOptimization 订单投影(可分页) + 一条IN查询取全部明细：2条查询
	FindAllByDtoOptimization(ctx context.Context, offset, limit int) ([]OrderQueryDto, error)

	// FindAllByDtoFlat 一条连接查询，每个明细一行
	FindAllByDtoFlat(ctx context.Context) ([]OrderFlatDto, error)
}

// SimpleQueryRepository 仅to-one关联的投影查询
type SimpleQueryRepository interface {
	FindOrderDtos(ctx context.Context) ([]OrderSimpleQueryDto, error)
}
