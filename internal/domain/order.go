package domain

import "time"

// OrderStatus 订单状态
// 状态机：ORDER(初始) → CANCEL(终态)
type OrderStatus string

const (
	OrderStatusOrder  OrderStatus = "ORDER"
	OrderStatusCancel OrderStatus = "CANCEL"
)

// Valid 是否为合法状态值
func (s OrderStatus) Valid() bool {
	return s == OrderStatusOrder || s == OrderStatusCancel
}

// Order 订单聚合根
// 拥有Delivery和OrderItems（级联创建）
// 关联字段只能通过本包的同步方法写入，保证双向引用一致
type Order struct {
	ID uint

	member     *Member
	delivery   *Delivery
	orderItems []*OrderItem
	orderDate  time.Time
	status     OrderStatus

	// itemsLoaded 标记读取路径是否加载了订单明细
	itemsLoaded bool
}

// CreateOrder 创建订单（工厂方法）
// 状态为ORDER，下单时间为当前时间
func CreateOrder(member *Member, delivery *Delivery, items ...*OrderItem) *Order {
	o := &Order{
		orderDate:   now(),
		status:      OrderStatusOrder,
		itemsLoaded: true,
	}
	o.setMember(member)
	o.setDelivery(delivery)
	for _, it := range items {
		o.addOrderItem(it)
	}
	return o
}

// RestoreOrder 从存储重建订单（仓储专用）
// member/delivery为nil表示该读取路径未加载对应关联；items为nil表示未加载明细
func RestoreOrder(id uint, member *Member, delivery *Delivery, items []*OrderItem, orderDate time.Time, status OrderStatus) *Order {
	o := &Order{ID: id, orderDate: orderDate, status: status}
	if member != nil {
		o.setMember(member)
	}
	if delivery != nil {
		o.setDelivery(delivery)
	}
	if items != nil {
		o.itemsLoaded = true
		for _, it := range items {
			o.addOrderItem(it)
		}
	}
	return o
}

func (o *Order) Member() *Member { return o.member }
func (o *Order) Delivery() *Delivery { return o.delivery }
func (o *Order) OrderDate() time.Time { return o.orderDate }
func (o *Order) Status() OrderStatus { return o.status }
func (o *Order) ItemsLoaded() bool { return o.itemsLoaded }

// OrderItems 订单明细（只读副本）
func (o *Order) OrderItems() []*OrderItem {
	out := make([]*OrderItem, len(o.orderItems))
	copy(out, o.orderItems)
	return out
}

// Cancel 取消订单
// 配送完成后不能取消；重复取消返回ErrAlreadyCanceled
// 成功时所有明细归还库存
func (o *Order) Cancel() error {
	if o.status == OrderStatusCancel {
		return ErrAlreadyCanceled
	}
	if o.delivery != nil && o.delivery.Status() == DeliveryComp {
		return ErrAlreadyDelivered
	}
	o.status = OrderStatusCancel
	for _, it := range o.orderItems {
		it.cancel()
	}
	return nil
}

// TotalPrice 订单总金额
func (o *Order) TotalPrice() int64 {
	var total int64
	for _, it := range o.orderItems {
		total += it.TotalPrice()
	}
	return total
}

// ===== 关联同步方法 =====

func (o *Order) setMember(m *Member) {
	o.member = m
	m.attachOrder(o)
}

func (o *Order) setDelivery(d *Delivery) {
	o.delivery = d
	d.order = o
}

func (o *Order) addOrderItem(it *OrderItem) {
	o.orderItems = append(o.orderItems, it)
	it.order = o
}

// now 下单时间截断到微秒，与MySQL DATETIME(6)精度一致
func now() time.Time {
	return time.Now().Truncate(time.Microsecond)
}
