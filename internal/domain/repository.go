package domain

import "context"

// MemberRepository 会员仓储接口
// 在domain层定义，infrastructure层实现(依赖倒置)
type MemberRepository interface {
	Save(ctx context.Context, m *Member) error
	FindOne(ctx context.Context, id uint) (*Member, error)
	FindAll(ctx context.Context) ([]*Member, error)
	FindByName(ctx context.Context, name string) ([]*Member, error)

	// UpdateName 只更新name列
	UpdateName(ctx context.Context, id uint, name string) error
}

// ItemRepository 商品仓储接口
type ItemRepository interface {
	Save(ctx context.Context, it *Item) error
	FindOne(ctx context.Context, id uint) (*Item, error)

	// FindOneForUpdate 悲观锁读取(SELECT ... FOR UPDATE)，必须在事务中调用
	FindOneForUpdate(ctx context.Context, id uint) (*Item, error)
	FindAll(ctx context.Context) ([]*Item, error)

	// Update 字段级更新name/price/stock_quantity，不会整行覆盖
	Update(ctx context.Context, it *Item) error

	// UpdateStock 写回内存中的库存
	UpdateStock(ctx context.Context, it *Item) error
}

// OrderRepository 订单仓储接口
type OrderRepository interface {
	// Save 级联保存Delivery和OrderItems，回填所有ID
	Save(ctx context.Context, o *Order) error

	// FindOne 加载完整订单图(会员、配送、明细及商品)
	FindOne(ctx context.Context, id uint) (*Order, error)

	// FindOneForUpdate 同FindOne，并锁定订单行和明细商品行
	FindOneForUpdate(ctx context.Context, id uint) (*Order, error)

	UpdateStatus(ctx context.Context, o *Order) error
	UpdateDeliveryStatus(ctx context.Context, d *Delivery) error

	// FindAll 按检索条件查询，opts.Fetch声明加载哪些关联
	FindAll(ctx context.Context, search OrderSearch, opts FindOptions) ([]*Order, error)
}

// Transactor 工作单元
// fn内的所有仓储操作共享同一事务，fn返回error时回滚
type Transactor interface {
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error

	// ReadOnly 多条查询共享一致性快照
	ReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}
