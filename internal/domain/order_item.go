package domain

// OrderItem 订单明细
// orderPrice是下单时的价格快照，之后商品改价不影响历史订单
type OrderItem struct {
	ID uint

	item       *Item
	order      *Order
	orderPrice int64
	count      int
}

// CreateOrderItem 创建订单明细并扣减库存
// 扣减失败时不创建明细，商品库存保持不变
func CreateOrderItem(item *Item, orderPrice int64, count int) (*OrderItem, error) {
	if count <= 0 {
		return nil, ErrInvalidCount
	}
	if orderPrice < 0 {
		return nil, ErrInvalidPrice
	}
	if err := item.RemoveStock(count); err != nil {
		return nil, err
	}
	return &OrderItem{item: item, orderPrice: orderPrice, count: count}, nil
}

// RestoreOrderItem 从存储重建订单明细（仓储专用，不触碰库存）
func RestoreOrderItem(id uint, item *Item, orderPrice int64, count int) *OrderItem {
	return &OrderItem{ID: id, item: item, orderPrice: orderPrice, count: count}
}

func (oi *OrderItem) Item() *Item { return oi.item }
func (oi *OrderItem) Order() *Order { return oi.order }
func (oi *OrderItem) OrderPrice() int64 { return oi.orderPrice }
func (oi *OrderItem) Count() int { return oi.count }

// TotalPrice 明细金额
func (oi *OrderItem) TotalPrice() int64 {
	return oi.orderPrice * int64(oi.count)
}

// cancel 归还库存
func (oi *OrderItem) cancel() {
	oi.item.AddStock(oi.count)
}
